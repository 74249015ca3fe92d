package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/atmosphere"
	"github.com/lixenwraith/dreadmaze/component"
	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
)

func TestOutcomeLostFiresOnceOnSanity(t *testing.T) {
	script := uniformScript(16, 6.25, component.TriggerTime, time.Second, 0, 0)
	h := newHarness(script, nil)
	h.w.AddSystem(NewNarrativeSystem(parameter.DreadDrainDefault))
	h.w.AddSystem(NewOutcomeSystem(parameter.ExitRadius))
	h.play()

	lost := 0
	h.w.Phase.OnTransition(func(tr engine.Transition) {
		if tr.To == engine.PhaseLost {
			lost++
		}
	})

	h.run(200, 100*time.Millisecond)
	if h.w.Phase.Current() != engine.PhaseLost || h.w.Phase.Cause() != "sanity" {
		t.Fatalf("phase = %v cause = %q", h.w.Phase.Current(), h.w.Phase.Cause())
	}

	// Drive sanity to zero again; nothing may re-fire
	h.w.Sanity.Drain(50)
	h.run(20, 100*time.Millisecond)
	if lost != 1 {
		t.Errorf("lost fired %d times", lost)
	}
	if n := h.cues.count(engine.CueDeath); n != 1 {
		t.Errorf("death cue played %d times", n)
	}
}

func TestOutcomeWinAtExit(t *testing.T) {
	h := newHarness(nil, nil)
	h.w.AddSystem(NewOutcomeSystem(0.6))
	h.w.Exit = mgl32.Vec3{0, 0, 5}
	h.w.HasExit = true
	h.play()

	h.w.Tick(33 * time.Millisecond)
	if h.w.Phase.Current() != engine.PhasePlaying {
		t.Fatal("won away from exit")
	}

	h.w.Player.Position = mgl32.Vec3{0.3, 0, 4.6}
	h.w.Tick(33 * time.Millisecond)
	if h.w.Phase.Current() != engine.PhaseWon {
		t.Fatalf("phase = %v, want won", h.w.Phase.Current())
	}
	if h.cues.count(engine.CueEscape) != 1 {
		t.Error("escape cue not played")
	}
}

func TestOutcomeLoseBeforeWin(t *testing.T) {
	h := newHarness(nil, nil)
	h.w.AddSystem(NewOutcomeSystem(0.6))
	h.w.Exit = mgl32.Vec3{}
	h.w.HasExit = true
	h.play()

	h.w.Sanity.Drain(100)
	h.w.Tick(33 * time.Millisecond)
	if h.w.Phase.Current() != engine.PhaseLost {
		t.Errorf("phase = %v, want lost when both conditions hold", h.w.Phase.Current())
	}
}

func TestOutcomeNoExitNeverWins(t *testing.T) {
	h := newHarness(nil, nil)
	h.w.AddSystem(NewOutcomeSystem(0.6))
	h.play()

	h.run(10, 33*time.Millisecond)
	if h.w.Phase.Current() != engine.PhasePlaying {
		t.Errorf("phase = %v", h.w.Phase.Current())
	}
}

func TestIntroSequence(t *testing.T) {
	h := newHarness(nil, nil)
	IntroSequence{
		Lines:   []string{"one", "two", "three"},
		Spacing: time.Second,
		Delay:   4 * time.Second,
	}.Attach(h.w)

	h.w.Tick(33 * time.Millisecond)
	if len(h.overlay.shown) != 0 {
		t.Fatal("intro started before acknowledgement")
	}

	h.w.Phase.Acknowledge()
	h.run(35, 100*time.Millisecond)
	if len(h.overlay.shown) != 3 || h.overlay.shown[2] != "three" {
		t.Fatalf("shown = %v", h.overlay.shown)
	}
	if h.w.Phase.Current() != engine.PhaseIntro {
		t.Fatal("play began early")
	}

	h.run(10, 100*time.Millisecond)
	if h.w.Phase.Current() != engine.PhasePlaying {
		t.Fatalf("phase = %v after intro delay", h.w.Phase.Current())
	}
	if h.overlay.visible {
		t.Error("last intro line still visible after play began")
	}
}

func TestIntroLinesStopWhenPlayBegins(t *testing.T) {
	h := newHarness(nil, nil)
	IntroSequence{
		Lines:   []string{"one", "two", "three", "four"},
		Spacing: time.Second,
		Delay:   1500 * time.Millisecond,
	}.Attach(h.w)

	h.w.Phase.Acknowledge()
	h.run(16, 100*time.Millisecond)
	if h.w.Phase.Current() != engine.PhasePlaying {
		t.Fatalf("phase = %v, want playing", h.w.Phase.Current())
	}

	h.w.Display.Show("breathing", time.Minute)
	h.run(30, 100*time.Millisecond)

	want := []string{"one", "two", "breathing"}
	if len(h.overlay.shown) != len(want) {
		t.Fatalf("shown = %v, want %v", h.overlay.shown, want)
	}
	for i := range want {
		if h.overlay.shown[i] != want[i] {
			t.Fatalf("shown = %v, want %v", h.overlay.shown, want)
		}
	}
	if !h.overlay.visible {
		t.Error("late intro line hid the message shown during play")
	}
}

func TestAtmosphereSystem(t *testing.T) {
	h := newHarness(nil, nil)
	h.cues.missing[engine.CueDrone] = true
	h.w.AddSystem(NewAtmosphereSystem(atmosphere.DefaultLaws()))
	h.w.Phase.Acknowledge()

	h.w.Sanity.Drain(60)
	h.w.Proximity = 2
	h.run(5, 33*time.Millisecond)

	p := h.w.Atmosphere
	if !mgl32.FloatEqual(p.SanityFraction, 0.6) || !mgl32.FloatEqual(p.ProximityFactor, 0.8) {
		t.Errorf("inputs not applied: %+v", p)
	}
	if h.cues.levels[engine.CueHeartbeat] != p.Heartbeat {
		t.Errorf("heartbeat level = %v, want %v", h.cues.levels[engine.CueHeartbeat], p.Heartbeat)
	}
}

func TestSummaryOrder(t *testing.T) {
	h := newHarness(nil, nil)
	m := Summary(h.w)

	want := []string{"phase", "cause", "elapsed", "frames", "walked", "messages", "sanity", "orbs", "teleports", "caught"}
	i := 0
	for el := m.Front(); el != nil; el = el.Next() {
		if i >= len(want) || el.Key != want[i] {
			t.Fatalf("key %d = %q", i, el.Key)
		}
		i++
	}
	if i != len(want) {
		t.Errorf("summary has %d keys, want %d", i, len(want))
	}
}
