package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Advance consumes elapsed seconds of real time in fixedStep increments and
// returns how many steps ran. Leftover time carries to the next call. At most
// maxSubSteps steps run per call; anything beyond that is dropped rather
// than queued, so a long stall costs one capped frame and then slow motion.
func (w *World) Advance(fixedStep, elapsed float64, maxSubSteps int) int {
	if w == nil || w.space == nil || fixedStep <= 0 || maxSubSteps <= 0 {
		return 0
	}
	if elapsed > 0 && !math.IsInf(elapsed, 1) {
		w.accumulator += elapsed
	}

	steps := 0
	for w.accumulator >= fixedStep && steps < maxSubSteps {
		w.space.Step(fixedStep)
		w.integratePositions(fixedStep)
		w.accumulator -= fixedStep
		steps++
	}
	if w.accumulator >= fixedStep {
		w.accumulator = math.Mod(w.accumulator, fixedStep)
	}
	return steps
}

// Pending reports the real time waiting for the next fixed step.
func (w *World) Pending() float64 {
	if w == nil {
		return 0
	}
	return w.accumulator
}

// Chipmunk moves bodies at the top of Step, before gravity and contacts touch
// their velocity, so a body at rest would not move on its first step.
// Dynamic bodies skip that pass (deferPosition) and move here instead, once
// the solver has settled their velocity: v += g*dt, solve, then p += v*dt.
func (w *World) integratePositions(dt float64) {
	w.space.EachBody(func(body *cp.Body) {
		if body.GetType() == cp.BODY_DYNAMIC && !body.IsSleeping() {
			cp.BodyUpdatePosition(body, dt)
		}
	})
}

func deferPosition(*cp.Body, float64) {}
