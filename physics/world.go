package physics

import (
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
)

// Material is the contact response used for every pair in the world.
type Material struct {
	Friction    float64
	Restitution float64
}

// Chipmunk multiplies the coefficients of the two shapes in contact, so each
// shape carries the square root to make every pair resolve with m's values.
func (m Material) apply(shape *cp.Shape) {
	shape.SetFriction(math.Sqrt(math.Max(m.Friction, 0)))
	shape.SetElasticity(math.Sqrt(math.Max(m.Restitution, 0)))
}

// Options configure the space before any entity is added.
type Options struct {
	Gravity    cp.Vector
	Iterations int
	Material   Material
}

func DefaultOptions() Options {
	return Options{
		Gravity:    cp.Vector{X: 0, Y: -1000},
		Iterations: 20,
		Material:   Material{Friction: 0.9, Restitution: 0.5},
	}
}

// Layout places the arena's entities. Coordinates are y-up.
type Layout struct {
	ViewportWidth float64
	PlayerSpawn   cp.Vector
	GroundOrigin  cp.Vector
	WallInset     float64
}

func DefaultLayout(viewportWidth float64) Layout {
	return Layout{
		ViewportWidth: viewportWidth,
		PlayerSpawn:   cp.Vector{X: 150, Y: 250},
		GroundOrigin:  cp.Vector{X: 0, Y: 0},
		WallInset:     30,
	}
}

// World owns the Chipmunk space and every entity in it. Entities are only
// added during bootstrap.
type World struct {
	space    *cp.Space
	material Material

	accumulator float64

	player *Entity
	ground *Entity
	walls  []*Entity
}

// NewWorld creates an empty world.
func NewWorld(opts Options) *World {
	space := cp.NewSpace()
	if opts.Iterations > 0 {
		space.Iterations = uint(opts.Iterations)
	}
	space.SetGravity(opts.Gravity)
	return &World{space: space, material: opts.Material}
}

// Bootstrap creates a world holding the ground, the player and one wall at
// each edge of the viewport.
func Bootstrap(opts Options, layout Layout) (*World, error) {
	w := NewWorld(opts)

	ground, err := NewEntity(KindGround, w, layout.GroundOrigin.X, layout.GroundOrigin.Y)
	if err != nil {
		return nil, fmt.Errorf("physics: bootstrap ground: %w", err)
	}
	player, err := NewEntity(KindPlayer, w, layout.PlayerSpawn.X, layout.PlayerSpawn.Y)
	if err != nil {
		return nil, fmt.Errorf("physics: bootstrap player: %w", err)
	}

	wallXs := []float64{layout.WallInset, layout.ViewportWidth - layout.WallInset}
	walls := make([]*Entity, 0, len(wallXs))
	for _, x := range wallXs {
		wall, err := NewEntity(KindWall, w, x, 0)
		if err != nil {
			return nil, fmt.Errorf("physics: bootstrap wall at x=%.0f: %w", x, err)
		}
		walls = append(walls, wall)
	}

	w.ground = ground
	w.player = player
	w.walls = walls

	log.Printf("physics: bootstrap gravity=(%.0f,%.0f) friction=%.2f restitution=%.2f player=(%.0f,%.0f) walls=%v",
		opts.Gravity.X, opts.Gravity.Y, opts.Material.Friction, opts.Material.Restitution,
		layout.PlayerSpawn.X, layout.PlayerSpawn.Y, wallXs)
	return w, nil
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

func (w *World) Player() *Entity {
	return w.player
}

func (w *World) Ground() *Entity {
	return w.ground
}

func (w *World) Walls() []*Entity {
	return w.walls
}

// Entities returns every entity in draw order: player, walls, ground.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.walls)+2)
	if w.player != nil {
		out = append(out, w.player)
	}
	out = append(out, w.walls...)
	if w.ground != nil {
		out = append(out, w.ground)
	}
	return out
}
