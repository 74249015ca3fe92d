package engine

import (
	"io"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/component"
)

// World is one session's state, its collaborators and its systems
// Owned by the loop goroutine; nothing here is safe for concurrent use
type World struct {
	Player  *component.PlayerState
	Sanity  *component.SanityState
	Script  *component.DreadScript
	Enemies []*component.EnemyState
	Orbs    []*component.Orb
	Stats   component.SessionStats

	// Exit is the win point when HasExit is set
	Exit    mgl32.Vec3
	HasExit bool

	// Proximity is the minimum enemy distance this frame, MaxFloat32 with no enemies
	Proximity  float32
	Atmosphere component.AtmosphereParams

	Elapsed time.Duration
	Frame   uint64

	Keys     KeyState
	Camera   Camera
	Collider Collider
	Overlay  Overlay
	Cues     Cues
	Motion   MotionSink
	Clock    TimeProvider

	Scheduler *Scheduler
	Phase     *PhaseMachine
	Display   *DisplaySlot

	Rng    *rand.Rand
	Logger *slog.Logger

	systems []System
}

// Options supplies collaborators; nil fields get inert defaults
type Options struct {
	Keys     KeyState
	Camera   Camera
	Collider Collider
	Overlay  Overlay
	Cues     Cues
	Motion   MotionSink
	Clock    TimeProvider
	Rng      *rand.Rand
	Logger   *slog.Logger
}

// NewWorld creates a session world in Boot with full sanity
func NewWorld(player *component.PlayerState, script *component.DreadScript, opts Options) *World {
	if opts.Keys == nil {
		opts.Keys = noKeys{}
	}
	if opts.Camera == nil {
		opts.Camera = TopDownCamera
	}
	if opts.Collider == nil {
		opts.Collider = openSpace{}
	}
	if opts.Overlay == nil {
		opts.Overlay = nopOverlay{}
	}
	if opts.Cues == nil {
		opts.Cues = nopCues{}
	}
	if opts.Clock == nil {
		opts.Clock = NewMonotonicTimeProvider()
	}
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(1))
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if script == nil {
		script = component.NewDreadScript(nil, component.TriggerTime, 0, 0, 0)
	}

	sched := NewScheduler()
	w := &World{
		Player:    player,
		Sanity:    component.NewSanityState(),
		Script:    script,
		Proximity: math32.MaxFloat32,
		Keys:      opts.Keys,
		Camera:    opts.Camera,
		Collider:  opts.Collider,
		Overlay:   opts.Overlay,
		Cues:      opts.Cues,
		Motion:    opts.Motion,
		Clock:     opts.Clock,
		Scheduler: sched,
		Phase:     NewPhaseMachine(sched.Now),
		Display:   NewDisplaySlot(opts.Overlay, sched),
		Rng:       opts.Rng,
		Logger:    opts.Logger,
	}

	w.Phase.OnTransition(func(tr Transition) {
		w.Logger.Info("phase transition",
			"from", tr.From.String(),
			"to", tr.To.String(),
			"cause", tr.Cause,
			"at", tr.At,
		)
		if tr.To.Terminal() {
			w.Display.Clear()
			w.Scheduler.CancelAll()
		}
	})
	opts.Overlay.SetSanityDisplay(w.Sanity.Percent())

	return w
}

// AddSystem registers a system, keeping priority order
// Equal priorities keep registration order
func (w *World) AddSystem(s System) {
	if a, ok := s.(Attachable); ok {
		a.Attach(w)
	}
	w.systems = append(w.systems, s)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	return slices.Clone(w.systems)
}

// Tick runs one frame: due timers first, then every system active in the phase, in priority order
// The phase is sampled once after timers so all systems of a frame see the same gate
func (w *World) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	w.Scheduler.Advance(dt)
	w.Frame++

	phase := w.Phase.Current()
	if phase == PhaseBoot {
		return
	}
	w.Elapsed += dt

	for _, s := range w.systems {
		if s.Phases().Has(phase) {
			s.Update(w, dt)
		}
	}
}

// Cue plays a one-shot cue, logging failures
func (w *World) Cue(name string) {
	if err := w.Cues.Play(name); err != nil {
		w.Logger.Warn("cue unavailable", "cue", name, "error", err)
	}
}

// Now returns the time provider's current time, used for key hold queries
func (w *World) Now() time.Time {
	return w.Clock.Now()
}
