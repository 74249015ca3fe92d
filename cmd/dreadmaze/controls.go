package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/input"
)

// controls turns intents into loop commands; it runs on the input goroutine
type controls struct {
	post   func(func(*engine.World)) bool
	stop   func()
	keys   *input.Snapshot
	mute   func() bool
	muted  func(bool)
	resize func(w, h int)
	now    func() time.Time
}

// pump reads screen events until the screen is finalized
func (c *controls) pump(screen tcell.Screen) {
	machine := input.NewMachine()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if intent := machine.Process(ev); intent != nil {
			c.handle(intent, ev)
		}
	}
}

// handle applies one intent; world changes go through post
func (c *controls) handle(intent *input.Intent, ev tcell.Event) {
	switch intent.Type {
	case input.IntentQuit:
		c.stop()

	case input.IntentToggleMute:
		c.muted(c.mute())

	case input.IntentResize:
		if rs, ok := ev.(*tcell.EventResize); ok {
			w, h := rs.Size()
			c.post(func(*engine.World) { c.resize(w, h) })
		}

	case input.IntentAcknowledge:
		c.post(func(w *engine.World) {
			if w.Phase.Current().Terminal() {
				c.stop()
				return
			}
			w.Phase.Acknowledge()
		})

	case input.IntentMove:
		c.keys.Press(intent.Key, c.now())

	case input.IntentStop:
		c.keys.ReleaseAll()
	}
}
