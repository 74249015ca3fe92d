package system

import (
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/dreadmaze/component"
	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/parameter"
)

// NarrativeState is the dread scheduler's state
type NarrativeState uint8

const (
	NarrativeIdle NarrativeState = iota
	NarrativeArmed
	NarrativeFiring
	NarrativeExhausted
)

func (s NarrativeState) String() string {
	switch s {
	case NarrativeIdle:
		return "idle"
	case NarrativeArmed:
		return "armed"
	case NarrativeFiring:
		return "firing"
	case NarrativeExhausted:
		return "exhausted"
	}
	return "unknown"
}

// NarrativeSystem fires dread lines on a time or distance rhythm, draining sanity on each
// Idle until play begins, Armed after the initial delay, Exhausted once the script runs out
type NarrativeSystem struct {
	world  *engine.World
	cursor component.DreadCursor
	state  NarrativeState

	defaultDrain float32

	armTimer     engine.Timer
	triggerTimer engine.Timer

	// Distance mode: walked distance at which the next line fires
	nextAt float32
}

// NewNarrativeSystem creates a scheduler; lines without their own drain use defaultDrain
func NewNarrativeSystem(defaultDrain float32) *NarrativeSystem {
	return &NarrativeSystem{defaultDrain: defaultDrain}
}

// Name returns system's name
func (s *NarrativeSystem) Name() string {
	return "narrative"
}

func (s *NarrativeSystem) Priority() int {
	return parameter.PriorityNarrative
}

func (s *NarrativeSystem) Phases() engine.PhaseMask {
	return engine.MaskOf(engine.PhasePlaying)
}

// State returns the scheduler state
func (s *NarrativeSystem) State() NarrativeState {
	return s.state
}

// Index returns the next line index; never decreases and never exceeds the script length
func (s *NarrativeSystem) Index() int {
	return s.cursor.Next()
}

// Attach binds the scheduler to phase changes
func (s *NarrativeSystem) Attach(w *engine.World) {
	s.world = w

	if w.Script.Len() == 0 {
		s.state = NarrativeExhausted
		w.Logger.Warn("dread script is empty, narrative disabled")
	}

	w.Phase.OnTransition(func(tr engine.Transition) {
		switch {
		case tr.To == engine.PhasePlaying:
			s.arm()
		case tr.From == engine.PhasePlaying:
			s.halt()
		}
	})
}

func (s *NarrativeSystem) arm() {
	if s.state != NarrativeIdle {
		return
	}
	s.armTimer = s.world.Scheduler.After(s.world.Script.InitialDelay, s.enterArmed)
}

func (s *NarrativeSystem) enterArmed() {
	if s.state != NarrativeIdle {
		return
	}
	s.state = NarrativeArmed
	script := s.world.Script

	switch script.Mode {
	case component.TriggerTime:
		s.triggerTimer = s.world.Scheduler.Every(script.Interval, s.trigger)
	case component.TriggerDistance:
		s.nextAt = s.world.Player.Walked + script.Distance
	}

	s.world.Logger.Debug("narrative armed", "mode", script.Mode.String(), "lines", script.Len())
}

// Update checks the distance rhythm; at most one line fires per frame
func (s *NarrativeSystem) Update(w *engine.World, _ time.Duration) {
	if s.state != NarrativeArmed || w.Script.Mode != component.TriggerDistance {
		return
	}
	if w.Player.Walked >= s.nextAt {
		s.nextAt += w.Script.Distance
		s.trigger()
	}
}

// trigger fires the next line: show, advance, drain, schedule hide
func (s *NarrativeSystem) trigger() {
	if s.state != NarrativeArmed {
		return
	}
	w := s.world

	line, idx, ok := s.cursor.Take(w.Script)
	if !ok {
		s.exhaust()
		return
	}
	s.state = NarrativeFiring

	drain := line.Drain
	if drain <= 0 {
		drain = s.defaultDrain
	}

	w.Display.Show(line.Text, DisplayDuration(line.Text))
	after := w.Sanity.Drain(drain)
	w.Overlay.SetSanityDisplay(w.Sanity.Percent())
	w.Stats.MessagesShown++
	w.Cue(engine.CueWhisper)

	w.Logger.Info("dread trigger",
		"index", idx,
		"drain", drain,
		"sanity", after,
		"walked", w.Player.Walked,
	)

	s.state = NarrativeArmed
	if s.cursor.Exhausted(w.Script) {
		s.exhaust()
	}
}

func (s *NarrativeSystem) exhaust() {
	s.state = NarrativeExhausted
	s.armTimer.Cancel()
	s.triggerTimer.Cancel()
	s.world.Logger.Debug("narrative exhausted", "shown", s.cursor.Next())
}

// halt stops scheduling when play ends
func (s *NarrativeSystem) halt() {
	s.armTimer.Cancel()
	s.triggerTimer.Cancel()
	if s.state != NarrativeExhausted {
		s.state = NarrativeIdle
	}
	s.world.Display.Clear()
}

// DisplayDuration is how long a line stays up: base plus per-rune time, capped
func DisplayDuration(text string) time.Duration {
	d := parameter.DisplayBaseDuration + time.Duration(utf8.RuneCountInString(text))*parameter.DisplayPerRuneDuration
	return min(d, parameter.DisplayMaxDuration)
}
