package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave; a negative duration runs forever
type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch drifts linearly by sweep Hz per second
func NewSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	n := -1
	if duration >= 0 {
		n = rate.N(duration)
	}
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: n,
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration >= 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		f := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		if f < 1 {
			f = 1
		}
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping and a gain to a finite stream
type envelope struct {
	streamer       beep.Streamer
	gain           float64
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s into a duration-long sound with linear attack and release
func NewEnvelope(s beep.Streamer, gain float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		gain:           gain,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if rest := e.totalSamples - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := e.gain
		if e.position < e.attackSamples {
			vol *= float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol *= float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// pulse repeats a finite pattern forever, rebuilding it every period
type pulse struct {
	build   func() beep.Streamer
	period  int
	pos     int
	current beep.Streamer
}

// NewPulse plays build() at the start of every period and silence in between
func NewPulse(period time.Duration, rate beep.SampleRate, build func() beep.Streamer) beep.Streamer {
	return &pulse{build: build, period: max(rate.N(period), 1)}
}

func (p *pulse) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if p.pos%p.period == 0 {
			p.current = p.build()
		}
		samples[i] = [2]float64{}
		if p.current != nil {
			var one [1][2]float64
			if k, live := p.current.Stream(one[:]); k == 1 {
				samples[i] = one[0]
			} else if !live {
				p.current = nil
			}
		}
		p.pos++
	}
	return len(samples), true
}

func (p *pulse) Err() error { return nil }

// Sound builders

func footfall(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	thud := NewEnvelope(NewSweep(70, -200, d, WaveSine, rate), 0.5, d, 5*time.Millisecond, 60*time.Millisecond, rate)
	scuff := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), 0.08, d, 2*time.Millisecond, 70*time.Millisecond, rate)
	return beep.Mix(thud, scuff)
}

func heartbeat(rate beep.SampleRate) beep.Streamer {
	beat := func(gain float64) beep.Streamer {
		d := 120 * time.Millisecond
		return NewEnvelope(NewSweep(55, -60, d, WaveSine, rate), gain, d, 8*time.Millisecond, 90*time.Millisecond, rate)
	}
	return beep.Seq(beat(0.8), beep.Silence(rate.N(110*time.Millisecond)), beat(0.55))
}

// droneStream is an endless low beating chord
func droneStream(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		&effects.Gain{Streamer: NewOscillator(41.2, -1, WaveSine, rate), Gain: -0.75},
		&effects.Gain{Streamer: NewOscillator(41.9, -1, WaveSine, rate), Gain: -0.75},
		&effects.Gain{Streamer: NewOscillator(82.0, -1, WaveSaw, rate), Gain: -0.96},
	)
}

func whisper(rate beep.SampleRate, d time.Duration) beep.Streamer {
	hiss := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), 0.12, d, d/3, d/2, rate)
	breath := NewEnvelope(NewSweep(180, -40, d, WaveSine, rate), 0.05, d, d/4, d/2, rate)
	return beep.Mix(hiss, breath)
}

func sting(rate beep.SampleRate, from, sweep float64, wave WaveType, gain float64, d time.Duration) beep.Streamer {
	return NewEnvelope(NewSweep(from, sweep, d, wave, rate), gain, d, 10*time.Millisecond, d/2, rate)
}
