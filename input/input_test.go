package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSnapshotInitialHold(t *testing.T) {
	s := NewSnapshotWithWindows(500*time.Millisecond, 100*time.Millisecond)
	s.Press(KeyForward, t0)

	tests := []struct {
		offset time.Duration
		held   bool
	}{
		{0, true},
		{499 * time.Millisecond, true},
		{500 * time.Millisecond, false},
		{time.Second, false},
	}
	for _, tt := range tests {
		if got := s.IsHeld(KeyForward, t0.Add(tt.offset)); got != tt.held {
			t.Errorf("IsHeld at +%v = %v, want %v", tt.offset, got, tt.held)
		}
	}
}

func TestSnapshotRepeatExtends(t *testing.T) {
	s := NewSnapshotWithWindows(500*time.Millisecond, 100*time.Millisecond)
	s.Press(KeyLeft, t0)

	// Auto-repeat stream after the initial delay
	at := t0.Add(450 * time.Millisecond)
	for i := 0; i < 10; i++ {
		s.Press(KeyLeft, at)
		at = at.Add(30 * time.Millisecond)
	}
	last := at.Add(-30 * time.Millisecond)

	if !s.IsHeld(KeyLeft, last.Add(99*time.Millisecond)) {
		t.Error("key should stay held within repeat window of last repeat")
	}
	if s.IsHeld(KeyLeft, last.Add(101*time.Millisecond)) {
		t.Error("key should be released after repeat window lapses")
	}
}

func TestSnapshotRepeatNeverShortens(t *testing.T) {
	s := NewSnapshotWithWindows(500*time.Millisecond, 100*time.Millisecond)
	s.Press(KeyRight, t0)
	s.Press(KeyRight, t0.Add(10*time.Millisecond))

	if !s.IsHeld(KeyRight, t0.Add(400*time.Millisecond)) {
		t.Error("early repeat must not cut the initial window short")
	}
}

func TestSnapshotOppositeReleases(t *testing.T) {
	s := NewSnapshot()
	s.Press(KeyForward, t0)
	s.Press(KeyLeft, t0)
	s.Press(KeyBack, t0.Add(time.Millisecond))

	now := t0.Add(2 * time.Millisecond)
	if s.IsHeld(KeyForward, now) {
		t.Error("forward should be released by back")
	}
	if !s.IsHeld(KeyBack, now) || !s.IsHeld(KeyLeft, now) {
		t.Error("back and left should be held")
	}
}

func TestSnapshotHeldSet(t *testing.T) {
	s := NewSnapshot()
	s.Press(KeyForward, t0)
	s.Press(KeyRight, t0)

	held := s.Held(t0)
	if !held.Has(KeyForward) || !held.Has(KeyRight) || held.Has(KeyBack) || held.Has(KeyLeft) {
		t.Errorf("held set = %08b", held)
	}

	s.Release(KeyRight)
	if s.Held(t0).Has(KeyRight) {
		t.Error("release did not drop key")
	}

	s.ReleaseAll()
	if s.Held(t0) != 0 {
		t.Error("release all left keys held")
	}
}

func TestSnapshotOutOfRangeKey(t *testing.T) {
	s := NewSnapshot()
	s.Press(Key(42), t0)
	if s.IsHeld(Key(42), t0) {
		t.Error("unknown key reported held")
	}
}

func TestMachineProcess(t *testing.T) {
	m := NewMachine()

	tests := []struct {
		name string
		ev   tcell.Event
		want *Intent
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), &Intent{IntentMove, KeyForward}},
		{"wasd s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), &Intent{IntentMove, KeyBack}},
		{"uppercase A", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), &Intent{IntentMove, KeyLeft}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), &Intent{Type: IntentAcknowledge}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), &Intent{Type: IntentQuit}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), &Intent{Type: IntentStop}},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), nil},
		{"resize", tcell.NewEventResize(80, 24), &Intent{Type: IntentResize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Process(tt.ev)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("got %+v, want nil", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeyOpposite(t *testing.T) {
	for k := Key(0); k < keyCount; k++ {
		if k.Opposite().Opposite() != k || k.Opposite() == k {
			t.Errorf("opposite of %s broken", k)
		}
	}
}
