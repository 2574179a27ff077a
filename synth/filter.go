package synth

import (
	"math"

	"github.com/gopxl/beep"
)

// FilterType selects the biquad response
type FilterType int

const (
	Lowpass FilterType = iota
	Highpass
)

// biquad is a second-order IIR filter (RBJ cookbook), one state per channel
type biquad struct {
	streamer           beep.Streamer
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     [2]float64
}

// NewFilter wraps s in a low- or high-pass biquad. q is the resonance in dB.
func NewFilter(s beep.Streamer, kind FilterType, cutoff, q float64, rate beep.SampleRate) beep.Streamer {
	w0 := 2 * math.Pi * cutoff / float64(rate)
	cosW := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * math.Pow(10, q/20))

	var b0, b1, b2 float64
	switch kind {
	case Highpass:
		b0 = (1 + cosW) / 2
		b1 = -(1 + cosW)
		b2 = (1 + cosW) / 2
	default:
		b0 = (1 - cosW) / 2
		b1 = 1 - cosW
		b2 = (1 - cosW) / 2
	}
	a0 := 1 + alpha

	return &biquad{
		streamer: s,
		b0:       b0 / a0,
		b1:       b1 / a0,
		b2:       b2 / a0,
		a1:       -2 * cosW / a0,
		a2:       (1 - alpha) / a0,
	}
}

func (f *biquad) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			x := samples[i][c]
			y := f.b0*x + f.b1*f.x1[c] + f.b2*f.x2[c] - f.a1*f.y1[c] - f.a2*f.y2[c]
			f.x2[c], f.x1[c] = f.x1[c], x
			f.y2[c], f.y1[c] = f.y1[c], y
			samples[i][c] = y
		}
	}
	return n, ok
}

func (f *biquad) Err() error { return f.streamer.Err() }
