package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/automoto/glasspane/synth"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioOutput plays a rendered clip of interleaved stereo int16 LE samples
type AudioOutput interface {
	Play(pcm []byte, volume float64) error
}

// ContextFactory creates the audio output. It may fail, for example when no
// audio device is available.
type ContextFactory func() (AudioOutput, error)

// ImpactEngine synthesizes impact sounds. The output is created on first use
// and reused afterwards; a failed creation is retried on the next call.
type ImpactEngine struct {
	factory     ContextFactory
	output      AudioOutput
	rng         *rand.Rand
	constructed int
}

// NewImpactEngine creates an engine without touching the audio device
func NewImpactEngine(factory ContextFactory, rng *rand.Rand) *ImpactEngine {
	return &ImpactEngine{factory: factory, rng: rng}
}

// Constructed reports how many outputs have been created (0 or 1)
func (a *ImpactEngine) Constructed() int {
	return a.constructed
}

// PlayImpactSound renders a fresh impact and starts it immediately.
// Failures are logged and the sound is dropped.
func (a *ImpactEngine) PlayImpactSound(volume float64) {
	if a.output == nil {
		out, err := a.factory()
		if err != nil {
			log.Printf("Warning: Could not create audio output: %v", err)
			return
		}
		a.output = out
		a.constructed++
	}

	rate := beep.SampleRate(cfg.Audio.SampleRate)
	impact := synth.NewImpact(a.rng, rate, cfg.Impact)
	pcm := synth.Render(synth.WithVolume(impact.Streamer, volume), impact.Samples)

	if err := a.output.Play(pcm, 1.0); err != nil {
		log.Printf("Warning: Could not play impact sound: %v", err)
	}
}

// ebitenOutput plays clips through the shared ebiten audio context
type ebitenOutput struct {
	ctx *audio.Context
}

// NewEbitenOutput returns an output on the process-wide audio context,
// creating the context if needed
func NewEbitenOutput() (out AudioOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("create audio context: %v", r)
		}
	}()

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.Audio.SampleRate)
	}
	return &ebitenOutput{ctx: ctx}, nil
}

func (o *ebitenOutput) Play(pcm []byte, volume float64) error {
	player := o.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
	return nil
}

// PlayImpactSound plays one impact at the session's SFX volume
func PlayImpactSound(w donburi.World) {
	data := GetOrCreateAudio(w)
	data.Engine.PlayImpactSound(sfxVolume(w))
}

// AudioConstructed reports how many audio outputs the session engine created
func AudioConstructed(w donburi.World) int {
	entry, ok := components.Audio.First(w)
	if !ok {
		return 0
	}
	engine := components.Audio.Get(entry).Engine
	if engine == nil {
		return 0
	}
	return engine.Constructed()
}

// SetAudioEngine installs the engine used by PlayImpactSound
func SetAudioEngine(w donburi.World, engine components.ImpactSounder) {
	GetOrCreateAudio(w).Engine = engine
}

// GetOrCreateAudio returns the singleton Audio component, creating it with an
// ebiten-backed engine if needed
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
	}
	data := components.Audio.Get(entry)
	if data.Engine == nil {
		data.Engine = NewImpactEngine(NewEbitenOutput, GetOrCreateRand(w))
	}
	return data
}

func sfxVolume(w donburi.World) float64 {
	return GetOrCreateSettings(w).EffectiveSFXVolume()
}
