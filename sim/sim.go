package sim

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/input"
	"github.com/milk9111/arena/physics"
)

// Bindings maps movement directions to host key codes.
type Bindings struct {
	Left  input.Key
	Right input.Key
	Up    input.Key
}

// Tuning holds the fixed-step policy and the per-frame input nudges.
type Tuning struct {
	FixedStep   float64
	MaxSubSteps int
	StepX       float64
	StepY       float64
	Bindings    Bindings
}

func DefaultTuning(b Bindings) Tuning {
	return Tuning{
		FixedStep:   1.0 / 60.0,
		MaxSubSteps: 10,
		StepX:       1,
		StepY:       10,
		Bindings:    b,
	}
}

// Frame reports what one Frame call did.
type Frame struct {
	Elapsed  float64
	SubSteps int
}

// Simulation is the only writer of the world after bootstrap.
type Simulation struct {
	world  *physics.World
	tuning Tuning
	clock  Clock
}

func New(world *physics.World, tuning Tuning) *Simulation {
	return &Simulation{world: world, tuning: tuning}
}

func (s *Simulation) World() *physics.World {
	return s.world
}

// Frame runs one animation frame: resolve physics for the real time since the
// previous frame, then apply held keys to the player.
func (s *Simulation) Frame(now time.Duration, in *input.State) Frame {
	elapsed := s.clock.Tick(now)
	steps := s.Resolve(elapsed)
	s.ApplyInputIntent(in)
	return Frame{Elapsed: elapsed, SubSteps: steps}
}

// Resolve advances the world by whole fixed steps covering elapsed seconds.
func (s *Simulation) Resolve(elapsed float64) int {
	return s.world.Advance(s.tuning.FixedStep, elapsed, s.tuning.MaxSubSteps)
}

// ApplyInputIntent moves the player directly by the configured nudges. It
// runs after Resolve, so a nudge can leave the player overlapping a wall or
// the ground until the next Resolve pushes it back out.
func (s *Simulation) ApplyInputIntent(in *input.State) {
	player := s.world.Player()
	if player == nil || in == nil {
		return
	}

	var d cp.Vector
	b := s.tuning.Bindings
	if in.Held(b.Left) {
		d.X -= s.tuning.StepX
	}
	if in.Held(b.Right) {
		d.X += s.tuning.StepX
	}
	if in.Held(b.Up) {
		d.Y += s.tuning.StepY
	}
	if d.X == 0 && d.Y == 0 {
		return
	}
	player.SetPosition(player.Position().Add(d))
}
