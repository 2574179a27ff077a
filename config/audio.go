package config

import "time"

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// RampConfig describes an exponential gain ramp, relative to the impact clock.
// The gain holds Start until From, then ramps to End at To and holds End.
type RampConfig struct {
	Start, End float64
	From, To   time.Duration
}

// ImpactConfig describes the three layers of the impact sound
type ImpactConfig struct {
	// Thud: swept sine
	ThudStartFreq float64
	ThudEndFreq   float64
	ThudDuration  time.Duration
	ThudGain      RampConfig

	// Shatter: band-limited noise burst
	NoiseDuration   time.Duration
	ShatterHighpass float64
	ShatterLowpass  float64
	ShatterGain     RampConfig

	// Rumble: low-passed noise tail
	RumbleDelay   time.Duration
	RumbleLowpass float64
	RumbleGain    RampConfig

	// FilterQ is the biquad resonance in dB
	FilterQ float64
}

var Audio AudioConfig
var Impact ImpactConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Impact = ImpactConfig{
		ThudStartFreq: 100,
		ThudEndFreq:   30,
		ThudDuration:  200 * time.Millisecond,
		ThudGain: RampConfig{
			Start: 2.0, End: 0.01,
			From: 0, To: 200 * time.Millisecond,
		},

		NoiseDuration:   500 * time.Millisecond,
		ShatterHighpass: 600,
		ShatterLowpass:  7500,
		ShatterGain: RampConfig{
			Start: 1.5, End: 0.01,
			From: 0, To: 450 * time.Millisecond,
		},

		RumbleDelay:   50 * time.Millisecond,
		RumbleLowpass: 250,
		RumbleGain: RampConfig{
			Start: 1.0, End: 0.01,
			From: 50 * time.Millisecond, To: 600 * time.Millisecond,
		},

		FilterQ: 1,
	}
}
