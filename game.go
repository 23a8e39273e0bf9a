package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/arena/config"
	"github.com/milk9111/arena/input"
	"github.com/milk9111/arena/physics"
	"github.com/milk9111/arena/render"
	"github.com/milk9111/arena/sim"
)

type Game struct {
	frames int
	debug  bool
	start  time.Time

	width  float64
	height float64

	keys    *input.State
	pressed []ebiten.Key
	sim     *sim.Simulation
	last    sim.Frame

	scene   render.Scene
	palette render.Palette

	configPath string
	watcher    *config.Watcher
}

func NewGame(cfg *config.Config, configPath string, debug bool) (*Game, error) {
	b, err := bindings(cfg.Controls)
	if err != nil {
		return nil, err
	}
	palette, err := cfg.RenderPalette()
	if err != nil {
		return nil, err
	}
	world, err := physics.Bootstrap(cfg.PhysicsOptions(), cfg.Layout())
	if err != nil {
		return nil, err
	}

	tuning := sim.DefaultTuning(b)
	tuning.FixedStep = cfg.FixedStep()
	tuning.MaxSubSteps = cfg.Physics.MaxSubSteps
	tuning.StepX = cfg.Controls.StepX
	tuning.StepY = cfg.Controls.StepY

	return &Game{
		debug:      debug,
		start:      time.Now(),
		width:      float64(cfg.Window.Width),
		height:     float64(cfg.Window.Height),
		keys:       input.NewState(),
		sim:        sim.New(world, tuning),
		palette:    palette,
		configPath: configPath,
	}, nil
}

// Watch reloads the palette whenever the config file changes. Physics
// settings in the file only apply on the next start.
func (g *Game) Watch() error {
	if g.configPath == "" {
		return fmt.Errorf("watch: no config file given")
	}
	w, err := config.NewWatcher(g.configPath)
	if err != nil {
		return fmt.Errorf("watch %s: %w", g.configPath, err)
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) reloadPalette() {
	if g.watcher == nil {
		return
	}
	if _, ok := g.watcher.Poll(); !ok {
		return
	}
	cfg, err := config.Load(g.configPath)
	if err != nil {
		log.Printf("config: reload %s: %v", g.configPath, err)
		return
	}
	palette, err := cfg.RenderPalette()
	if err != nil {
		log.Printf("config: reload %s: %v", g.configPath, err)
		return
	}
	g.palette = palette
	log.Printf("config: reloaded palette from %s", g.configPath)
}

func (g *Game) Update() error {
	g.frames++

	g.reloadPalette()
	g.pressed = pollKeys(g.keys, g.pressed)
	g.last = g.sim.Frame(time.Since(g.start), g.keys)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	world := g.sim.World()
	render.Pass(&g.scene, world.Entities(), g.height, g.palette)
	g.scene.Draw(screen)

	if g.debug {
		render.DebugDraw(screen, world.Space(), g.height)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    dt: %.4f    steps: %d",
			g.frames, ebiten.ActualFPS(), g.last.Elapsed, g.last.SubSteps))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
