package system

import (
	"time"

	"github.com/lixenwraith/dreadmaze/engine"
)

// IntroSequence shows the intro lines through the display slot and starts play after delay
type IntroSequence struct {
	Lines   []string
	Spacing time.Duration
	Delay   time.Duration
}

// Attach schedules the sequence to start when the world enters Intro
func (q IntroSequence) Attach(w *engine.World) {
	w.Phase.OnTransition(func(tr engine.Transition) {
		if tr.To != engine.PhaseIntro {
			return
		}

		for i, line := range q.Lines {
			w.Scheduler.After(time.Duration(i)*q.Spacing, func() {
				// Lines due after play began would replace dread messages
				if w.Phase.Current() != engine.PhaseIntro {
					return
				}
				w.Display.Show(line, q.lineDuration(i))
			})
		}
		w.Scheduler.After(q.Delay, func() {
			w.Phase.BeginPlay()
		})
	})
}

// lineDuration keeps each line up until the next one, the last until play begins
func (q IntroSequence) lineDuration(i int) time.Duration {
	if i < len(q.Lines)-1 {
		return q.Spacing
	}
	if rest := q.Delay - time.Duration(i)*q.Spacing; rest > 0 {
		return rest
	}
	return q.Spacing
}
