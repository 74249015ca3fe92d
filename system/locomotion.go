package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/input"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/vmath"
)

// LocomotionSystem moves the player from held keys through the collider
// Sole writer of PlayerState
type LocomotionSystem struct {
	speed   float32
	gravity float32
}

// NewLocomotionSystem creates a locomotion system with the given walk speed
func NewLocomotionSystem(speed float32) *LocomotionSystem {
	if speed <= 0 {
		speed = parameter.PlayerSpeed
	}
	return &LocomotionSystem{
		speed:   speed,
		gravity: parameter.GravityBias,
	}
}

// Name returns system's name
func (s *LocomotionSystem) Name() string {
	return "locomotion"
}

func (s *LocomotionSystem) Priority() int {
	return parameter.PriorityLocomotion
}

// Phases enables movement from the first intro line
func (s *LocomotionSystem) Phases() engine.PhaseMask {
	return engine.MaskOf(engine.PhaseIntro, engine.PhasePlaying)
}

func (s *LocomotionSystem) Update(w *engine.World, dt time.Duration) {
	p := w.Player

	var move mgl32.Vec3
	if !p.Frozen {
		forward, right := w.Camera.Basis()
		move = DesiredMove(w.Keys.Held(w.Now()), forward, right, s.speed*engine.Seconds(dt))
	}

	// Gravity alone still goes through the collider so ground contact is resolved every frame
	delta := move.Add(mgl32.Vec3{0, -s.gravity, 0})
	resolved := w.Collider.Move(p.Envelope, p.Position, delta)

	next := p.Position.Add(resolved)
	next[1] = parameter.GroundY

	step := vmath.Flatten(next.Sub(p.Position))
	dist := vmath.HorizontalLen(step)
	p.Position = next
	p.Walked += dist

	moving := move.LenSqr() > vmath.Epsilon
	if moving && dist > parameter.MinFacingDisplacement {
		p.Facing = step.Mul(1 / dist)
	}

	if moving != p.Moving {
		p.Moving = moving
		s.signalMoving(w, moving)
	}
}

func (s *LocomotionSystem) signalMoving(w *engine.World, moving bool) {
	if w.Motion != nil {
		w.Motion.SetMoving(moving)
	}

	var err error
	if moving {
		err = w.Cues.Loop(engine.CueFootsteps)
	} else {
		err = w.Cues.Stop(engine.CueFootsteps)
	}
	if err != nil {
		w.Logger.Warn("cue unavailable", "cue", engine.CueFootsteps, "error", err)
	}
}

// DesiredMove is the normalized sum of held camera-relative directions scaled by step
// Camera vectors are flattened and re-normalized; opposing keys cancel
func DesiredMove(held input.Keys, forward, right mgl32.Vec3, step float32) mgl32.Vec3 {
	forward = vmath.FlatNormalize(forward)
	right = vmath.FlatNormalize(right)

	var sum mgl32.Vec3
	if held.Has(input.KeyForward) {
		sum = sum.Add(forward)
	}
	if held.Has(input.KeyBack) {
		sum = sum.Sub(forward)
	}
	if held.Has(input.KeyRight) {
		sum = sum.Add(right)
	}
	if held.Has(input.KeyLeft) {
		sum = sum.Sub(right)
	}

	return vmath.SafeNormalize(sum).Mul(step)
}
