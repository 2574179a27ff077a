package synth

import (
	"time"

	"github.com/automoto/glasspane/config"
	"github.com/gopxl/beep"
)

// ramp applies an exponential gain ramp. Times are measured on the impact
// clock, so a layer that starts late passes its start offset.
type ramp struct {
	streamer beep.Streamer
	cfg      config.RampConfig
	offset   time.Duration
	position int
	rate     beep.SampleRate
}

// NewRamp wraps s in the gain ramp r; s starts playing at offset
func NewRamp(s beep.Streamer, r config.RampConfig, offset time.Duration, rate beep.SampleRate) beep.Streamer {
	return &ramp{streamer: s, cfg: r, offset: offset, rate: rate}
}

// GainAt returns the ramp gain at impact time t
func GainAt(r config.RampConfig, t time.Duration) float64 {
	switch {
	case t < r.From:
		return r.Start
	case t >= r.To:
		return r.End
	}
	f := float64(t-r.From) / float64(r.To-r.From)
	return expInterp(r.Start, r.End, f)
}

func (e *ramp) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := e.offset + e.rate.D(e.position)
		g := GainAt(e.cfg, t)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *ramp) Err() error { return e.streamer.Err() }
