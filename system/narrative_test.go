package system

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/dreadmaze/component"
	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
)

func TestNarrativeDrainScenario(t *testing.T) {
	script := uniformScript(15, 6.25, component.TriggerTime, time.Second, 0, 0)
	h := newHarness(script, nil)
	sys := NewNarrativeSystem(parameter.DreadDrainDefault)
	h.w.AddSystem(sys)
	h.play()

	prevIndex := 0
	for i := 0; i < 250; i++ {
		h.w.Tick(100 * time.Millisecond)
		if v := h.w.Sanity.Value(); v < 0 || v > 100 {
			t.Fatalf("sanity %v out of range", v)
		}
		if sys.Index() < prevIndex || sys.Index() > script.Len() {
			t.Fatalf("index %d after %d", sys.Index(), prevIndex)
		}
		prevIndex = sys.Index()
	}

	// 100 - 15*6.25 leaves 6.25; the exhausted script drains no further
	if h.w.Sanity.Value() != 6.25 {
		t.Errorf("sanity = %v, want 6.25", h.w.Sanity.Value())
	}
	if h.w.Stats.MessagesShown != 15 || len(h.overlay.shown) != 15 {
		t.Errorf("messages = %d, want 15", h.w.Stats.MessagesShown)
	}
	if sys.State() != NarrativeExhausted {
		t.Errorf("state = %v, want exhausted", sys.State())
	}
	// Only hide timers may remain, and they have all fired by now
	if h.w.Scheduler.Pending() != 0 {
		t.Errorf("pending timers = %d after exhaustion", h.w.Scheduler.Pending())
	}
}

func TestNarrativeExhaustedDoesNotDrain(t *testing.T) {
	script := uniformScript(2, 10, component.TriggerTime, time.Second, 0, 0)
	h := newHarness(script, nil)
	sys := NewNarrativeSystem(parameter.DreadDrainDefault)
	h.w.AddSystem(sys)
	h.play()

	h.run(30, 100*time.Millisecond)
	if h.w.Sanity.Value() != 80 || sys.State() != NarrativeExhausted {
		t.Fatalf("sanity = %v state = %v", h.w.Sanity.Value(), sys.State())
	}

	h.run(300, 100*time.Millisecond)
	if h.w.Sanity.Value() != 80 || sys.Index() != 2 {
		t.Errorf("exhausted scheduler drained: sanity = %v index = %d", h.w.Sanity.Value(), sys.Index())
	}
}

func TestNarrativeInitialDelay(t *testing.T) {
	script := uniformScript(5, 5, component.TriggerTime, time.Second, 0, 8*time.Second)
	h := newHarness(script, nil)
	sys := NewNarrativeSystem(parameter.DreadDrainDefault)
	h.w.AddSystem(sys)

	h.w.Phase.Acknowledge()
	h.run(50, 100*time.Millisecond)
	if sys.State() != NarrativeIdle {
		t.Fatalf("armed during intro: %v", sys.State())
	}

	h.w.Phase.BeginPlay()
	h.run(80, 100*time.Millisecond)
	if sys.State() != NarrativeArmed || h.w.Stats.MessagesShown != 0 {
		t.Fatalf("state = %v shown = %d after 8s", sys.State(), h.w.Stats.MessagesShown)
	}

	h.run(10, 100*time.Millisecond)
	if h.w.Stats.MessagesShown != 1 {
		t.Errorf("shown = %d one interval after arming", h.w.Stats.MessagesShown)
	}
}

func TestNarrativeDistanceMode(t *testing.T) {
	script := uniformScript(3, 0, component.TriggerDistance, 0, 6, 0)
	h := newHarness(script, nil)
	sys := NewNarrativeSystem(5)
	h.w.AddSystem(sys)
	h.play()
	h.w.Tick(0)

	steps := []struct {
		walked float32
		shown  int
	}{
		{5.9, 0},
		{6.0, 1},
		{6.5, 1},
		// A large jump fires once per frame only
		{20, 2},
		{20, 3},
		{50, 3},
	}
	for i, st := range steps {
		h.w.Player.Walked = st.walked
		h.w.Tick(33 * time.Millisecond)
		if h.w.Stats.MessagesShown != st.shown {
			t.Fatalf("step %d walked %v: shown = %d, want %d", i, st.walked, h.w.Stats.MessagesShown, st.shown)
		}
	}
	if h.w.Sanity.Value() != 85 {
		t.Errorf("sanity = %v, want default drain applied 3 times", h.w.Sanity.Value())
	}
	if sys.State() != NarrativeExhausted {
		t.Errorf("state = %v", sys.State())
	}
}

func TestNarrativeEmptyScript(t *testing.T) {
	h := newHarness(component.NewDreadScript(nil, component.TriggerTime, time.Second, 0, 0), nil)
	sys := NewNarrativeSystem(parameter.DreadDrainDefault)
	h.w.AddSystem(sys)
	h.play()

	h.run(100, 100*time.Millisecond)
	if sys.State() != NarrativeExhausted || h.w.Sanity.Value() != 100 || len(h.overlay.shown) != 0 {
		t.Errorf("empty script fired: state=%v sanity=%v", sys.State(), h.w.Sanity.Value())
	}
}

func TestNarrativeOverlappingMessages(t *testing.T) {
	// Interval shorter than display time: each line replaces the last
	script := uniformScript(4, 1, component.TriggerTime, time.Second, 0, 0)
	h := newHarness(script, nil)
	h.w.AddSystem(NewNarrativeSystem(1))
	h.play()

	h.run(45, 100*time.Millisecond)
	if h.overlay.hides != 0 || !h.overlay.visible {
		t.Fatalf("older hide fired while newer line showing: hides=%d", h.overlay.hides)
	}

	h.run(100, 100*time.Millisecond)
	if h.overlay.hides != 1 || h.overlay.visible {
		t.Errorf("final hide: hides=%d visible=%v", h.overlay.hides, h.overlay.visible)
	}
}

func TestNarrativeCancelledWhenPlayEnds(t *testing.T) {
	script := uniformScript(10, 5, component.TriggerTime, time.Second, 0, 0)
	h := newHarness(script, nil)
	sys := NewNarrativeSystem(5)
	h.w.AddSystem(sys)
	h.play()

	h.run(15, 100*time.Millisecond)
	if h.w.Stats.MessagesShown != 1 || !h.overlay.visible {
		t.Fatalf("shown = %d", h.w.Stats.MessagesShown)
	}

	h.w.Phase.Win("exit")
	if h.overlay.visible {
		t.Error("overlay still visible after play ended")
	}
	if h.w.Scheduler.Pending() != 0 {
		t.Errorf("pending timers = %d after play ended", h.w.Scheduler.Pending())
	}

	h.run(100, 100*time.Millisecond)
	if h.w.Stats.MessagesShown != 1 || h.w.Sanity.Value() != 95 {
		t.Errorf("scheduler kept firing after play ended: shown=%d", h.w.Stats.MessagesShown)
	}
}

func TestNarrativeWhisperCue(t *testing.T) {
	script := uniformScript(2, 5, component.TriggerTime, time.Second, 0, 0)
	h := newHarness(script, nil)
	h.cues.missing[engine.CueWhisper] = true
	h.w.AddSystem(NewNarrativeSystem(5))
	h.play()

	// Missing cue is logged and ignored
	h.run(30, 100*time.Millisecond)
	if h.w.Stats.MessagesShown != 2 || h.w.Sanity.Value() != 90 {
		t.Errorf("missing cue disturbed narrative: shown=%d sanity=%v", h.w.Stats.MessagesShown, h.w.Sanity.Value())
	}
}

func TestDisplayDuration(t *testing.T) {
	tests := []struct {
		text string
		want time.Duration
	}{
		{"", 2 * time.Second},
		{"hello", 2*time.Second + 300*time.Millisecond},
		{"ééé", 2*time.Second + 180*time.Millisecond},
		{strings.Repeat("x", 500), 7 * time.Second},
	}
	for _, tt := range tests {
		if got := DisplayDuration(tt.text); got != tt.want {
			t.Errorf("DisplayDuration(%d runes) = %v, want %v", len([]rune(tt.text)), got, tt.want)
		}
	}
}
