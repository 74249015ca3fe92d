package engine

import "time"

// DisplaySlot is the single owner of the overlay message
// Each Show bumps a generation; a hide scheduled by an older Show is a no-op
type DisplaySlot struct {
	overlay Overlay
	sched   *Scheduler

	gen     uint64
	hide    Timer
	text    string
	visible bool
}

// NewDisplaySlot binds a slot to an overlay and the scheduler that runs its hide timers
func NewDisplaySlot(overlay Overlay, sched *Scheduler) *DisplaySlot {
	if overlay == nil {
		overlay = nopOverlay{}
	}
	return &DisplaySlot{overlay: overlay, sched: sched}
}

// Show displays text for d, replacing any current message and its pending hide
func (s *DisplaySlot) Show(text string, d time.Duration) {
	s.gen++
	gen := s.gen
	s.hide.Cancel()

	s.text = text
	s.visible = true
	s.overlay.ShowMessage(text)

	s.hide = s.sched.After(d, func() {
		if s.gen != gen {
			return
		}
		s.visible = false
		s.text = ""
		s.overlay.HideMessage()
	})
}

// Clear hides the current message now and invalidates its pending hide
func (s *DisplaySlot) Clear() {
	s.gen++
	s.hide.Cancel()
	if s.visible {
		s.visible = false
		s.text = ""
		s.overlay.HideMessage()
	}
}

// Visible reports whether a message is showing
func (s *DisplaySlot) Visible() bool {
	return s.visible
}

// Text returns the showing message, empty when hidden
func (s *DisplaySlot) Text() string {
	return s.text
}

// Generation returns the number of Show and Clear calls so far
func (s *DisplaySlot) Generation() uint64 {
	return s.gen
}
