package config

import (
	"embed"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/physics"
	"github.com/milk9111/arena/render"
	"gopkg.in/yaml.v3"
)

//go:embed arena.yaml
var defaultFS embed.FS

const defaultFile = "arena.yaml"

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window   WindowSpec   `yaml:"window"`
	Physics  PhysicsSpec  `yaml:"physics"`
	Spawn    SpawnSpec    `yaml:"spawn"`
	Controls ControlsSpec `yaml:"controls"`
	Palette  PaletteSpec  `yaml:"palette"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VectorSpec) vec() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type PhysicsSpec struct {
	Gravity     VectorSpec `yaml:"gravity"`
	Friction    float64    `yaml:"friction"`
	Restitution float64    `yaml:"restitution"`
	TickRate    float64    `yaml:"tick_rate"`
	MaxSubSteps int        `yaml:"max_sub_steps"`
	Iterations  int        `yaml:"iterations"`
}

type SpawnSpec struct {
	Player    VectorSpec `yaml:"player"`
	Ground    VectorSpec `yaml:"ground"`
	WallInset float64    `yaml:"wall_inset"`
}

// ControlsSpec names keys the way ebiten.Key marshals them, e.g. "ArrowLeft".
type ControlsSpec struct {
	Left  string  `yaml:"left"`
	Right string  `yaml:"right"`
	Up    string  `yaml:"up"`
	StepX float64 `yaml:"step_x"`
	StepY float64 `yaml:"step_y"`
}

type StyleSpec struct {
	Fill        string  `yaml:"fill"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float32 `yaml:"stroke_width"`
}

type PaletteSpec struct {
	Player StyleSpec `yaml:"player"`
	Wall   StyleSpec `yaml:"wall"`
	Ground StyleSpec `yaml:"ground"`
}

// Default returns the embedded configuration.
func Default() *Config {
	cfg, err := decode(nil, "embedded "+defaultFile)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads path over the embedded defaults. An empty path returns the
// defaults. Only the keys present in the file override.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return decode(data, path)
}

func decode(override []byte, name string) (*Config, error) {
	base, err := defaultFS.ReadFile(defaultFile)
	if err != nil {
		return nil, fmt.Errorf("config: load embedded %s: %w", defaultFile, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(base, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal embedded %s: %w", defaultFile, err)
	}
	if override != nil {
		if err := yaml.Unmarshal(override, &cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal %s: %w", name, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case !finite(c.Physics.TickRate) || c.Physics.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %v", ErrInvalid, c.Physics.TickRate)
	case !finite(c.Physics.Gravity.X) || !finite(c.Physics.Gravity.Y):
		return fmt.Errorf("%w: gravity %v,%v", ErrInvalid, c.Physics.Gravity.X, c.Physics.Gravity.Y)
	case !finite(c.Controls.StepX) || c.Controls.StepX < 0:
		return fmt.Errorf("%w: step_x %v", ErrInvalid, c.Controls.StepX)
	case !finite(c.Controls.StepY) || c.Controls.StepY < 0:
		return fmt.Errorf("%w: step_y %v", ErrInvalid, c.Controls.StepY)
	case c.Physics.MaxSubSteps <= 0:
		return fmt.Errorf("%w: max_sub_steps %d", ErrInvalid, c.Physics.MaxSubSteps)
	case c.Physics.Friction < 0 || c.Physics.Friction > 1:
		return fmt.Errorf("%w: friction %v outside [0,1]", ErrInvalid, c.Physics.Friction)
	case c.Physics.Restitution < 0 || c.Physics.Restitution > 1:
		return fmt.Errorf("%w: restitution %v outside [0,1]", ErrInvalid, c.Physics.Restitution)
	}
	if _, err := c.RenderPalette(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FixedStep is the physics step length in seconds.
func (c *Config) FixedStep() float64 {
	return 1 / c.Physics.TickRate
}

func (c *Config) PhysicsOptions() physics.Options {
	return physics.Options{
		Gravity:    c.Physics.Gravity.vec(),
		Iterations: c.Physics.Iterations,
		Material: physics.Material{
			Friction:    c.Physics.Friction,
			Restitution: c.Physics.Restitution,
		},
	}
}

func (c *Config) Layout() physics.Layout {
	return physics.Layout{
		ViewportWidth: float64(c.Window.Width),
		PlayerSpawn:   c.Spawn.Player.vec(),
		GroundOrigin:  c.Spawn.Ground.vec(),
		WallInset:     c.Spawn.WallInset,
	}
}

func (c *Config) RenderPalette() (render.Palette, error) {
	out := render.Palette{}
	specs := map[physics.Kind]StyleSpec{
		physics.KindPlayer: c.Palette.Player,
		physics.KindWall:   c.Palette.Wall,
		physics.KindGround: c.Palette.Ground,
	}
	for kind, spec := range specs {
		style, err := spec.style()
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", kind, err)
		}
		out[kind] = style
	}
	return out, nil
}

func (s StyleSpec) style() (render.Style, error) {
	var style render.Style
	fill, err := render.ParseHexColor(s.Fill)
	if err != nil {
		return style, err
	}
	style.Fill = fill
	if s.Stroke != "" && s.StrokeWidth > 0 {
		stroke, err := render.ParseHexColor(s.Stroke)
		if err != nil {
			return style, err
		}
		style.Stroke = stroke
		style.StrokeWidth = s.StrokeWidth
	}
	return style, nil
}
