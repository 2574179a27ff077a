// Package synth builds the impact sound from beep streamers: a swept sine
// thud, a band-passed noise shatter and a delayed low-passed rumble.
package synth

import (
	"math"
	"math/rand"

	"github.com/automoto/glasspane/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Impact is one scheduled impact: the mixed layers and their total length
type Impact struct {
	Streamer beep.Streamer
	Samples  int
}

// NewImpact assembles the three layers. The shatter and rumble share one
// noise burst.
func NewImpact(rng *rand.Rand, rate beep.SampleRate, c config.ImpactConfig) Impact {
	noiseBuf := NewNoiseBuffer(rng, c.NoiseDuration, rate)
	noiseLen := noiseBuf.Len()

	thud := NewRamp(
		NewSweep(c.ThudStartFreq, c.ThudEndFreq, c.ThudDuration, rate),
		c.ThudGain, 0, rate,
	)

	shatter := NewRamp(
		NewFilter(
			NewFilter(noiseBuf.Streamer(0, noiseLen), Highpass, c.ShatterHighpass, c.FilterQ, rate),
			Lowpass, c.ShatterLowpass, c.FilterQ, rate,
		),
		c.ShatterGain, 0, rate,
	)

	delay := rate.N(c.RumbleDelay)
	rumble := beep.Seq(
		beep.Silence(delay),
		NewRamp(
			NewFilter(noiseBuf.Streamer(0, noiseLen), Lowpass, c.RumbleLowpass, c.FilterQ, rate),
			c.RumbleGain, c.RumbleDelay, rate,
		),
	)

	total := max(rate.N(c.ThudDuration), noiseLen, delay+noiseLen)
	return Impact{
		Streamer: beep.Mix(thud, shatter, rumble),
		Samples:  total,
	}
}

// WithVolume scales s by vol; zero or less is silent
func WithVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
