package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// Tone describes one synthesized blip
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Release  time.Duration
}

type oscillator struct {
	freq  float64
	phase float64
	left  int
	wave  Wave
	rate  beep.SampleRate
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.left <= 0 {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.left--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// release fades the last samples of a fixed-length stream to zero
type release struct {
	s       beep.Streamer
	pos     int
	total   int
	release int
}

func (r *release) Stream(samples [][2]float64) (int, bool) {
	n, ok := r.s.Stream(samples)
	start := r.total - r.release
	for i := 0; i < n; i++ {
		if r.pos >= start && r.release > 0 {
			g := float64(r.total-r.pos) / float64(r.release)
			samples[i][0] *= max(g, 0)
			samples[i][1] *= max(g, 0)
		}
		r.pos++
	}
	return n, ok
}

func (r *release) Err() error { return r.s.Err() }

// Synth returns a finite streamer for t at rate, scaled by volume in [0, 1].
// Sine tones come from beep's generator, the rest from a local oscillator.
func Synth(t Tone, rate beep.SampleRate, volume float64) beep.Streamer {
	total := rate.N(t.Duration)

	var src beep.Streamer
	if t.Wave == WaveSine {
		if sine, err := generators.SineTone(rate, t.Freq); err == nil {
			src = beep.Take(total, sine)
		}
	}
	if src == nil {
		src = &oscillator{freq: t.Freq, left: total, wave: t.Wave, rate: rate}
	}

	rel := min(rate.N(t.Release), total)
	return withVolume(&release{s: src, total: total, release: rel}, volume)
}

// math.Log2(0) is -Inf, so zero volume is silent instead
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(vol, 1))}
}
