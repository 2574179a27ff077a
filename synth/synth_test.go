package synth

import (
	"bytes"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/glasspane/config"
	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func rms(samples [][2]float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s[0] * s[0]
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// TestSweepLength verifies the sweep stops after its duration
func TestSweepLength(t *testing.T) {
	s := NewSweep(100, 30, 200*time.Millisecond, testRate)

	out := drain(s)
	if len(out) != 8820 {
		t.Errorf("Expected 8820 samples, got %d", len(out))
	}

	n, ok := s.Stream(make([][2]float64, 10))
	if n != 0 || ok {
		t.Errorf("Expected exhausted sweep, got n=%d ok=%v", n, ok)
	}
}

// TestSweepFrequency verifies the exponential frequency path
func TestSweepFrequency(t *testing.T) {
	s := NewSweep(100, 30, 200*time.Millisecond, testRate).(*sweep)

	if f := s.Frequency(0); f != 100 {
		t.Errorf("Expected 100 Hz at start, got %f", f)
	}
	mid := s.Frequency(4410)
	want := 100 * math.Sqrt(0.3)
	if math.Abs(mid-want) > 1e-9 {
		t.Errorf("Expected %f Hz at midpoint, got %f", want, mid)
	}
	if end := s.Frequency(8820); math.Abs(end-30) > 1e-9 {
		t.Errorf("Expected 30 Hz at end, got %f", end)
	}
}

// TestGainAt checks the ramp shapes of each layer
func TestGainAt(t *testing.T) {
	c := config.Impact
	tests := []struct {
		name string
		ramp config.RampConfig
		at   time.Duration
		want float64
	}{
		{"thud start", c.ThudGain, 0, 2.0},
		{"thud mid", c.ThudGain, 100 * time.Millisecond, 2.0 * math.Sqrt(0.005)},
		{"thud end", c.ThudGain, 200 * time.Millisecond, 0.01},
		{"shatter end", c.ShatterGain, 450 * time.Millisecond, 0.01},
		{"shatter held", c.ShatterGain, 500 * time.Millisecond, 0.01},
		{"rumble before ramp", c.RumbleGain, 20 * time.Millisecond, 1.0},
		{"rumble ramp start", c.RumbleGain, 50 * time.Millisecond, 1.0},
		{"rumble end", c.RumbleGain, 600 * time.Millisecond, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GainAt(tt.ramp, tt.at)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected gain %f, got %f", tt.want, got)
			}
		})
	}
}

// TestRampOffset verifies a delayed layer reads the ramp from its start offset
func TestRampOffset(t *testing.T) {
	r := config.RampConfig{Start: 1, End: 0.01, From: 0, To: 100 * time.Millisecond}
	out := drain(NewRamp(constant(1, 441), r, 100*time.Millisecond, testRate))
	for i, s := range out {
		if math.Abs(s[0]-0.01) > 1e-9 {
			t.Fatalf("Expected held end gain at sample %d, got %f", i, s[0])
		}
	}
}

func constant(v float64, n int) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if n <= 0 {
			return 0, false
		}
		c := min(n, len(samples))
		for i := 0; i < c; i++ {
			samples[i][0], samples[i][1] = v, v
		}
		n -= c
		return c, true
	})
}

// TestFilterResponse checks pass and stop bands of both filter types
func TestFilterResponse(t *testing.T) {
	tests := []struct {
		name    string
		kind    FilterType
		cutoff  float64
		tone    float64
		passing bool
	}{
		{"lowpass stops high tone", Lowpass, 250, 5000, false},
		{"lowpass passes low tone", Lowpass, 7500, 200, true},
		{"highpass stops low tone", Highpass, 600, 50, false},
		{"highpass passes high tone", Highpass, 600, 6000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tone := NewSweep(tt.tone, tt.tone, 500*time.Millisecond, testRate)
			out := drain(NewFilter(tone, tt.kind, tt.cutoff, config.Impact.FilterQ, testRate))

			level := rms(out[4000:])
			if tt.passing && level < 0.6 {
				t.Errorf("Expected tone to pass, rms %f", level)
			}
			if !tt.passing && level > 0.05 {
				t.Errorf("Expected tone to be attenuated, rms %f", level)
			}
		})
	}
}

// TestNoiseBuffer verifies the shared burst length and range
func TestNoiseBuffer(t *testing.T) {
	buf := NewNoiseBuffer(rand.New(rand.NewSource(1)), 500*time.Millisecond, testRate)

	if buf.Len() != 22050 {
		t.Fatalf("Expected 22050 samples, got %d", buf.Len())
	}
	for i, s := range drain(buf.Streamer(0, buf.Len())) {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("Sample %d out of range: %v", i, s)
		}
	}
}

// TestImpactLength verifies the impact covers the delayed rumble tail
func TestImpactLength(t *testing.T) {
	imp := NewImpact(rand.New(rand.NewSource(1)), testRate, config.Impact)

	want := testRate.N(50*time.Millisecond) + testRate.N(500*time.Millisecond)
	if imp.Samples != want {
		t.Errorf("Expected %d samples, got %d", want, imp.Samples)
	}

	pcm := Render(imp.Streamer, imp.Samples)
	if len(pcm) != want*4 {
		t.Errorf("Expected %d bytes, got %d", want*4, len(pcm))
	}
	if bytes.Count(pcm, []byte{0}) == len(pcm) {
		t.Error("Expected audible impact, got silence")
	}
}

// TestImpactDeterministic verifies a seeded source reproduces the impact
func TestImpactDeterministic(t *testing.T) {
	a := NewImpact(rand.New(rand.NewSource(7)), testRate, config.Impact)
	b := NewImpact(rand.New(rand.NewSource(7)), testRate, config.Impact)

	if !bytes.Equal(Render(a.Streamer, a.Samples), Render(b.Streamer, b.Samples)) {
		t.Error("Expected identical renders for the same seed")
	}
}

// TestWithVolumeSilent verifies zero volume renders silence
func TestWithVolumeSilent(t *testing.T) {
	imp := NewImpact(rand.New(rand.NewSource(1)), testRate, config.Impact)

	pcm := Render(WithVolume(imp.Streamer, 0), imp.Samples)
	for i, b := range pcm {
		if b != 0 {
			t.Fatalf("Expected silence, byte %d is %d", i, b)
		}
	}
}

// TestRenderPadsShortStreamer verifies an early end leaves trailing silence
func TestRenderPadsShortStreamer(t *testing.T) {
	pcm := Render(constant(0.5, 100), 300)

	if len(pcm) != 1200 {
		t.Fatalf("Expected 1200 bytes, got %d", len(pcm))
	}
	if pcm[0] == 0 && pcm[1] == 0 {
		t.Error("Expected signal in first frame")
	}
	for i := 400; i < len(pcm); i++ {
		if pcm[i] != 0 {
			t.Fatalf("Expected padding at byte %d, got %d", i, pcm[i])
		}
	}
}

// TestToInt16Clips verifies out of range samples clip
func TestToInt16Clips(t *testing.T) {
	if v := toInt16(2.0); v != 32767 {
		t.Errorf("Expected 32767, got %d", v)
	}
	if v := toInt16(-2.0); v != -32767 {
		t.Errorf("Expected -32767, got %d", v)
	}
}
