package audio

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/dreadmaze/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// voice is the live state of one continuous cue
type voice struct {
	cue    Cue
	ctrl   *beep.Ctrl
	vol    *effects.Volume
	level  float32
	active bool
}

// Player mixes the cue bank onto the speaker and implements engine.Cues
// Without a device it runs silent: names and state are still tracked
type Player struct {
	mu     sync.Mutex
	bank   *Bank
	logger *slog.Logger

	mixer  *beep.Mixer
	master *effects.Volume
	voices map[string]*voice

	started bool
	silent  bool
	muted   bool
}

// NewPlayer creates a player over bank; volume is the master exponent, 0 is unity
func NewPlayer(bank *Bank, volume float64, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	mixer := &beep.Mixer{}
	p := &Player{
		bank:   bank,
		logger: logger,
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2, Volume: volume},
		voices: make(map[string]*voice),
		silent: true,
	}
	for _, name := range bank.Names() {
		cue, _ := bank.Lookup(name)
		if cue.Kind.Continuous() {
			// Layers start silent until the first SetLevel
			v := &voice{cue: cue, level: 1, active: cue.Kind == KindLayer}
			if cue.Kind == KindLayer {
				v.level = 0
			}
			p.voices[name] = v
		}
	}
	return p
}

// Start opens the speaker; on failure the player stays silent and the error is returned for logging
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		p.logger.Warn("audio unavailable, running silent", "error", err)
		return fmt.Errorf("speaker init: %w", err)
	}

	for _, name := range p.bank.Names() {
		v, ok := p.voices[name]
		if !ok {
			continue
		}
		v.ctrl = &beep.Ctrl{Streamer: v.cue.Build(sampleRate), Paused: !v.active}
		v.vol = &effects.Volume{Streamer: v.ctrl, Base: 2}
		applyLevel(v)
		p.mixer.Add(v.vol)
	}
	p.master.Silent = p.muted

	speaker.Play(p.master)
	p.started = true
	p.silent = false
	p.logger.Info("audio started", "rate", int(sampleRate), "cues", p.bank.Len())
	return nil
}

// Close stops all sound and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.started = false
	p.silent = true
}

// withStream runs fn under the speaker lock when the device is live
func (p *Player) withStream(fn func()) {
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// Play starts a one-shot cue
func (p *Player) Play(name string) error {
	cue, err := p.bank.Lookup(name)
	if err != nil {
		return err
	}
	if cue.Kind != KindOneShot {
		return fmt.Errorf("%w: play %s (%s)", ErrWrongCueKind, name, cue.Kind)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.muted {
		return nil
	}
	s := &effects.Volume{Streamer: cue.Build(sampleRate), Base: 2, Volume: cue.Volume}
	p.withStream(func() { p.mixer.Add(s) })
	return nil
}

// Loop resumes a continuous cue
func (p *Player) Loop(name string) error {
	return p.setActive(name, true)
}

// Stop pauses a continuous cue
func (p *Player) Stop(name string) error {
	return p.setActive(name, false)
}

func (p *Player) setActive(name string, active bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, err := p.voice(name)
	if err != nil {
		return err
	}
	if v.active == active {
		return nil
	}
	v.active = active
	p.withStream(func() {
		if v.ctrl != nil {
			v.ctrl.Paused = !active
		}
	})
	return nil
}

// SetLevel scales a continuous cue; level is clamped to [0, 1]
func (p *Player) SetLevel(name string, level float32) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, err := p.voice(name)
	if err != nil {
		return err
	}
	v.level = min(max(level, 0), 1)
	p.withStream(func() { applyLevel(v) })
	return nil
}

func (p *Player) voice(name string) (*voice, error) {
	v, ok := p.voices[name]
	if !ok {
		if _, err := p.bank.Lookup(name); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s is a one-shot", ErrWrongCueKind, name)
	}
	return v, nil
}

// applyLevel maps a linear level onto the cue's volume exponent
func applyLevel(v *voice) {
	if v.vol == nil {
		return
	}
	if v.level < parameter.MixSilentBelow {
		v.vol.Silent = true
		return
	}
	v.vol.Silent = false
	v.vol.Volume = v.cue.Volume + math.Log2(float64(v.level))
}

// ToggleMute flips the master mute, returns true if now muted
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	muted := p.muted
	p.withStream(func() { p.master.Silent = muted })
	return muted
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// IsSilent reports whether no device is driving output
func (p *Player) IsSilent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.silent
}

// Level returns the last level set on a continuous cue
func (p *Player) Level(name string) float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.voices[name]; ok {
		return v.level
	}
	return 0
}

// Active reports whether a continuous cue is running
func (p *Player) Active(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.voices[name]; ok {
		return v.active
	}
	return false
}
