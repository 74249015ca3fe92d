package system

import (
	"errors"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/dreadmaze/component"
	"github.com/lixenwraith/dreadmaze/engine"
	"github.com/lixenwraith/dreadmaze/input"
	"github.com/lixenwraith/dreadmaze/physics"
)

var testEnv = physics.Envelope{Radius: 0.25, Height: 1.7}

type fixedKeys struct {
	keys input.Keys
}

func (k *fixedKeys) Held(time.Time) input.Keys { return k.keys }

type recordingOverlay struct {
	shown   []string
	hides   int
	visible bool
	sanity  []float32
}

func (o *recordingOverlay) ShowMessage(text string) {
	o.shown = append(o.shown, text)
	o.visible = true
}

func (o *recordingOverlay) HideMessage() {
	o.hides++
	o.visible = false
}

func (o *recordingOverlay) SetSanityDisplay(p float32) {
	o.sanity = append(o.sanity, p)
}

type recordingCues struct {
	played  []string
	looping map[string]bool
	levels  map[string]float32
	missing map[string]bool
}

func newRecordingCues() *recordingCues {
	return &recordingCues{
		looping: make(map[string]bool),
		levels:  make(map[string]float32),
		missing: make(map[string]bool),
	}
}

var errMissingCue = errors.New("missing cue")

func (c *recordingCues) Play(name string) error {
	if c.missing[name] {
		return errMissingCue
	}
	c.played = append(c.played, name)
	return nil
}

func (c *recordingCues) Loop(name string) error {
	c.looping[name] = true
	return nil
}

func (c *recordingCues) Stop(name string) error {
	c.looping[name] = false
	return nil
}

func (c *recordingCues) SetLevel(name string, level float32) error {
	if c.missing[name] {
		return errMissingCue
	}
	c.levels[name] = level
	return nil
}

func (c *recordingCues) count(name string) int {
	n := 0
	for _, p := range c.played {
		if p == name {
			n++
		}
	}
	return n
}

type harness struct {
	w       *engine.World
	keys    *fixedKeys
	overlay *recordingOverlay
	cues    *recordingCues
}

func newHarness(script *component.DreadScript, collider engine.Collider) *harness {
	h := &harness{
		keys:    &fixedKeys{},
		overlay: &recordingOverlay{},
		cues:    newRecordingCues(),
	}
	player := component.NewPlayerState(mgl32.Vec3{}, testEnv)
	h.w = engine.NewWorld(player, script, engine.Options{
		Keys:     h.keys,
		Collider: collider,
		Overlay:  h.overlay,
		Cues:     h.cues,
		Clock:    engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		Rng:      rand.New(rand.NewSource(7)),
	})
	return h
}

// play moves the world straight into Playing
func (h *harness) play() {
	h.w.Phase.Acknowledge()
	h.w.Phase.BeginPlay()
}

// run ticks n frames of dt
func (h *harness) run(n int, dt time.Duration) {
	for i := 0; i < n; i++ {
		h.w.Tick(dt)
	}
}

func uniformScript(n int, drain float32, mode component.TriggerMode, interval time.Duration, distance float32, delay time.Duration) *component.DreadScript {
	lines := make([]component.DreadLine, n)
	for i := range lines {
		lines[i] = component.DreadLine{Text: "line", Drain: drain}
	}
	return component.NewDreadScript(lines, mode, interval, distance, delay)
}
