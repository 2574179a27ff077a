package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// sweep is a sine oscillator whose frequency moves exponentially from
// startFreq to endFreq over its duration, then stops
type sweep struct {
	startFreq, endFreq float64
	phase              float64
	duration           int
	position           int
	rate               beep.SampleRate
}

// NewSweep creates a sine streamer sweeping exponentially between two frequencies
func NewSweep(startFreq, endFreq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		rate:      rate,
	}
}

// Frequency returns the instantaneous frequency at sample i
func (s *sweep) Frequency(i int) float64 {
	if s.duration <= 0 {
		return s.startFreq
	}
	return expInterp(s.startFreq, s.endFreq, float64(i)/float64(s.duration))
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.Frequency(s.position) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise streams independent uniform white noise on each channel
type noise struct {
	rng       *rand.Rand
	remaining int
}

// NewNoise creates a white noise streamer of the given length
func NewNoise(rng *rand.Rand, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &noise{rng: rng, remaining: rate.N(duration)}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.remaining <= 0 {
			return i, i > 0
		}
		samples[i][0] = n.rng.Float64()*2 - 1
		samples[i][1] = n.rng.Float64()*2 - 1
		n.remaining--
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// NewNoiseBuffer renders a noise burst into a buffer so several layers can
// play the same samples
func NewNoiseBuffer(rng *rand.Rand, duration time.Duration, rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(NewNoise(rng, duration, rate))
	return buf
}

// expInterp interpolates exponentially from a to b, f in [0, 1]
func expInterp(a, b, f float64) float64 {
	return a * math.Pow(b/a, f)
}
