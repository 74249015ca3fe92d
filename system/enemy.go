package system

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/component"
	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
	"github.com/lixenwraith/dreadmaze/vmath"
)

// EnemyTuning holds pursuit thresholds
type EnemyTuning struct {
	FarThreshold    float32
	NearThreshold   float32
	RespawnMin      float32
	RespawnMax      float32
	SanitySpeedGain float32
	CaughtDelay     time.Duration
}

// DefaultEnemyTuning returns the stock pursuit tuning
func DefaultEnemyTuning() EnemyTuning {
	return EnemyTuning{
		FarThreshold:    parameter.EnemyFarThreshold,
		NearThreshold:   parameter.EnemyNearThreshold,
		RespawnMin:      parameter.EnemyRespawnMin,
		RespawnMax:      parameter.EnemyRespawnMax,
		SanitySpeedGain: parameter.EnemySanitySpeedGain,
		CaughtDelay:     parameter.EnemyCaughtDelay,
	}
}

// EnemySystem runs pursuit, teleport-recovery and contact for every enemy
type EnemySystem struct {
	tuning EnemyTuning

	caught bool
}

// NewEnemySystem creates an enemy system
func NewEnemySystem(tuning EnemyTuning) *EnemySystem {
	return &EnemySystem{tuning: tuning}
}

// Name returns system's name
func (s *EnemySystem) Name() string {
	return "enemy"
}

func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

func (s *EnemySystem) Phases() engine.PhaseMask {
	return engine.MaskOf(engine.PhasePlaying)
}

// Caught reports whether the caught event has fired
func (s *EnemySystem) Caught() bool {
	return s.caught
}

func (s *EnemySystem) Update(w *engine.World, dt time.Duration) {
	minDist := float32(math32.MaxFloat32)
	contact := false
	player := w.Player.Position
	speedScale := 1 + s.tuning.SanitySpeedGain*w.Sanity.Fraction()
	dtSec := engine.Seconds(dt)

	for _, e := range w.Enemies {
		d := vmath.HorizontalDistance(e.Position, player)

		switch {
		case d > s.tuning.FarThreshold:
			s.teleport(w, e)
			d = vmath.HorizontalDistance(e.Position, player)

		case d > s.tuning.NearThreshold:
			s.pursue(w, e, e.BaseSpeed*speedScale*dtSec, d)
			d = vmath.HorizontalDistance(e.Position, player)

		default:
			contact = true
		}

		e.Distance = d
		minDist = math32.Min(minDist, d)
	}

	w.Proximity = minDist
	if contact {
		s.catch(w)
	}
}

// pursue steps e toward the player without overshooting
func (s *EnemySystem) pursue(w *engine.World, e *component.EnemyState, step, dist float32) {
	dir := vmath.FlatNormalize(w.Player.Position.Sub(e.Position))
	if step > dist {
		step = dist
	}
	delta := dir.Mul(step)

	// Embedded solid enemies phase until clear of geometry
	if e.Solid && !w.Collider.Overlaps(e.Envelope, e.Position) {
		delta = w.Collider.Move(e.Envelope, e.Position, delta)
	}

	e.Position = e.Position.Add(delta)
	e.Position[1] = parameter.GroundY
	if dir.LenSqr() > 0 {
		e.Facing = dir
	}
}

// teleport relocates e onto the annulus [RespawnMin, RespawnMax] around the player
// Solid enemies retry for a spot clear of walls and keep the last sample if none is found
func (s *EnemySystem) teleport(w *engine.World, e *component.EnemyState) {
	attempts := 1
	if e.Solid {
		attempts = parameter.EnemyPlacementAttempts
	}

	from := e.Position
	var pos mgl32.Vec3
	for i := 0; i < attempts; i++ {
		pos = AnnulusPoint(w.Player.Position, s.tuning.RespawnMin, s.tuning.RespawnMax, w.Rng.Float32(), w.Rng.Float32())
		if !e.Solid || !w.Collider.Overlaps(e.Envelope, pos) {
			break
		}
	}

	e.Position = pos
	e.Facing = vmath.FlatNormalize(w.Player.Position.Sub(pos))
	e.Teleports++
	w.Stats.Teleports++

	w.Logger.Debug("enemy teleport recovery",
		"enemy", e.ID,
		"from", from,
		"to", pos,
		"distance", vmath.HorizontalDistance(pos, w.Player.Position),
	)
}

// catch fires the one-shot caught event and schedules the loss
func (s *EnemySystem) catch(w *engine.World) {
	if s.caught {
		return
	}
	s.caught = true
	w.Stats.Caught = true
	w.Player.Frozen = true

	w.Logger.Info("player caught", "proximity", w.Proximity, "elapsed", w.Elapsed)
	w.Cue(engine.CueCaught)

	w.Scheduler.After(s.tuning.CaughtDelay, func() {
		w.Phase.Lose("caught")
	})
}

// AnnulusPoint maps two uniform samples in [0, 1) to a ground point at angle 2πu and radius lerp(rMin, rMax, v) around center
func AnnulusPoint(center mgl32.Vec3, rMin, rMax, u, v float32) mgl32.Vec3 {
	theta := u * 2 * math32.Pi
	r := vmath.Lerp(rMin, rMax, v)
	p := center.Add(vmath.PolarOffset(theta, r))
	p[1] = parameter.GroundY
	return p
}
