package systems

import (
	"errors"
	"math/rand"
	"testing"

	cfg "github.com/automoto/glasspane/config"
	"github.com/gopxl/beep"
)

// recordingOutput keeps every clip it is asked to play
type recordingOutput struct {
	clips [][]byte
}

func (o *recordingOutput) Play(pcm []byte, volume float64) error {
	o.clips = append(o.clips, pcm)
	return nil
}

func TestImpactEngineConstructsOnce(t *testing.T) {
	out := &recordingOutput{}
	calls := 0
	engine := NewImpactEngine(func() (AudioOutput, error) {
		calls++
		return out, nil
	}, rand.New(rand.NewSource(1)))

	if engine.Constructed() != 0 {
		t.Fatalf("Expected no output before first use, got %d", engine.Constructed())
	}

	engine.PlayImpactSound(1)
	engine.PlayImpactSound(1)
	engine.PlayImpactSound(1)

	if calls != 1 || engine.Constructed() != 1 {
		t.Errorf("Expected one construction, got calls=%d constructed=%d", calls, engine.Constructed())
	}
	if len(out.clips) != 3 {
		t.Fatalf("Expected 3 clips, got %d", len(out.clips))
	}

	rate := beep.SampleRate(cfg.Audio.SampleRate)
	frames := rate.N(cfg.Impact.RumbleDelay) + rate.N(cfg.Impact.NoiseDuration)
	if len(out.clips[0]) != frames*4 {
		t.Errorf("Expected %d bytes per clip, got %d", frames*4, len(out.clips[0]))
	}
}

func TestImpactEngineRetriesFailedConstruction(t *testing.T) {
	out := &recordingOutput{}
	fail := true
	engine := NewImpactEngine(func() (AudioOutput, error) {
		if fail {
			return nil, errors.New("no audio device")
		}
		return out, nil
	}, rand.New(rand.NewSource(1)))

	engine.PlayImpactSound(1)
	if engine.Constructed() != 0 || len(out.clips) != 0 {
		t.Fatalf("Expected the sound to be dropped, got constructed=%d clips=%d", engine.Constructed(), len(out.clips))
	}

	fail = false
	engine.PlayImpactSound(1)
	if engine.Constructed() != 1 || len(out.clips) != 1 {
		t.Errorf("Expected a retry to succeed, got constructed=%d clips=%d", engine.Constructed(), len(out.clips))
	}
}

func TestImpactEngineSilentAtZeroVolume(t *testing.T) {
	out := &recordingOutput{}
	engine := NewImpactEngine(func() (AudioOutput, error) { return out, nil }, rand.New(rand.NewSource(1)))

	engine.PlayImpactSound(0)

	for i, b := range out.clips[0] {
		if b != 0 {
			t.Fatalf("Expected silence, byte %d is %d", i, b)
		}
	}
}

func TestAudioFailureLeavesVisualsIntact(t *testing.T) {
	s := newTestSession(t)
	engine := NewImpactEngine(func() (AudioOutput, error) {
		return nil, errors.New("no audio device")
	}, rand.New(rand.NewSource(1)))
	SetAudioEngine(s.world, engine)
	Activate(s.world)

	DispatchPointerDown(s.world, 10, 10, 0)

	if s.surface.strokes == 0 || CountShards(s.world) == 0 {
		t.Errorf("Expected cracks and shards despite audio failure, got strokes=%d shards=%d",
			s.surface.strokes, CountShards(s.world))
	}
	if AudioConstructed(s.world) != 0 {
		t.Errorf("Expected no audio output, got %d", AudioConstructed(s.world))
	}
}
