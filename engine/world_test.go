package engine

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/component"
	"github.com/lixenwraith/dreadmaze/physics"
)

type traceSystem struct {
	name     string
	priority int
	phases   PhaseMask
	trace    *[]string
}

func (s *traceSystem) Name() string      { return s.name }
func (s *traceSystem) Priority() int     { return s.priority }
func (s *traceSystem) Phases() PhaseMask { return s.phases }
func (s *traceSystem) Update(_ *World, _ time.Duration) {
	*s.trace = append(*s.trace, s.name)
}

func newTestWorld() *World {
	player := component.NewPlayerState(mgl32.Vec3{}, physics.Envelope{Radius: 0.25, Height: 1.7})
	return NewWorld(player, nil, Options{})
}

func TestWorldRunsSystemsInPriorityOrder(t *testing.T) {
	w := newTestWorld()
	var trace []string
	all := MaskOf(PhaseIntro, PhasePlaying)

	w.AddSystem(&traceSystem{"outcome", 50, all, &trace})
	w.AddSystem(&traceSystem{"locomotion", 10, all, &trace})
	w.AddSystem(&traceSystem{"atmosphere", 40, all, &trace})
	w.AddSystem(&traceSystem{"enemy", 20, all, &trace})
	w.AddSystem(&traceSystem{"narrative", 30, all, &trace})

	w.Phase.Acknowledge()
	w.Tick(33 * time.Millisecond)

	want := []string{"locomotion", "enemy", "narrative", "atmosphere", "outcome"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v", trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
}

func TestWorldPhaseGate(t *testing.T) {
	w := newTestWorld()
	var trace []string
	w.AddSystem(&traceSystem{"move", 10, MaskOf(PhaseIntro, PhasePlaying), &trace})
	w.AddSystem(&traceSystem{"enemy", 20, MaskOf(PhasePlaying), &trace})

	w.Tick(time.Millisecond)
	if len(trace) != 0 || w.Elapsed != 0 {
		t.Fatalf("systems ran in boot: %v", trace)
	}

	w.Phase.Acknowledge()
	w.Tick(time.Millisecond)
	if len(trace) != 1 || trace[0] != "move" {
		t.Fatalf("intro trace = %v", trace)
	}

	trace = trace[:0]
	w.Phase.BeginPlay()
	w.Tick(time.Millisecond)
	if len(trace) != 2 {
		t.Fatalf("playing trace = %v", trace)
	}
}

func TestWorldTimersRunBeforeSystems(t *testing.T) {
	w := newTestWorld()
	var trace []string
	w.AddSystem(&traceSystem{"enemy", 20, MaskOf(PhasePlaying), &trace})

	w.Phase.Acknowledge()
	w.Scheduler.After(10*time.Millisecond, func() {
		trace = append(trace, "timer")
		w.Phase.BeginPlay()
	})

	w.Tick(20 * time.Millisecond)
	if len(trace) != 2 || trace[0] != "timer" || trace[1] != "enemy" {
		t.Fatalf("trace = %v, want [timer enemy]", trace)
	}
}

func TestWorldDefaults(t *testing.T) {
	w := newTestWorld()
	if w.Sanity.Value() != 100 {
		t.Errorf("sanity = %v", w.Sanity.Value())
	}
	if w.Script.Len() != 0 {
		t.Errorf("nil script should become empty")
	}
	if d := w.Collider.Move(physics.Envelope{}, mgl32.Vec3{}, mgl32.Vec3{1, 2, 3}); d != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("open space move = %v", d)
	}
	w.Cue(CueOrb)
}

func TestLoopPostRunsBeforeFrame(t *testing.T) {
	w := newTestWorld()
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	l := NewLoop(w, mock, time.Millisecond, 100*time.Millisecond, 4)

	var order []string
	l.OnFrame(func(w *World) {
		order = append(order, "frame:"+w.Phase.Current().String())
	})

	l.Post(func(w *World) {
		order = append(order, "post")
		w.Phase.Acknowledge()
	})
	l.Step()

	if len(order) != 2 || order[0] != "post" || order[1] != "frame:intro" {
		t.Fatalf("order = %v", order)
	}
	if l.Frames() != 1 {
		t.Errorf("frames = %d", l.Frames())
	}
}

func TestLoopPostQueueFull(t *testing.T) {
	l := NewLoop(newTestWorld(), NewMockTimeProvider(time.Now()), time.Millisecond, 0, 1)
	if !l.Post(func(*World) {}) {
		t.Fatal("first post rejected")
	}
	if l.Post(func(*World) {}) {
		t.Fatal("post into full queue accepted")
	}
	if l.Dropped() != 1 {
		t.Errorf("dropped = %d", l.Dropped())
	}
}

func TestLoopRunStops(t *testing.T) {
	l := NewLoop(newTestWorld(), NewMonotonicTimeProvider(), time.Millisecond, 100*time.Millisecond, 4)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	l.Stop()
	l.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if l.Frames() == 0 {
		t.Error("no frames ran")
	}
}
