package systems

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// fakeSurface records drawing calls instead of touching the GPU
type fakeSurface struct {
	width, height int
	resizes       int
	strokes       int
	clears        int
	onStroke      func()
}

func (s *fakeSurface) Resize(width, height int) {
	s.width, s.height = width, height
	s.resizes++
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }

func (s *fakeSurface) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	s.strokes++
	if s.onStroke != nil {
		s.onStroke()
	}
}

// Clear erases the surface; the stroke count tracks what is still visible
func (s *fakeSurface) Clear() {
	s.clears++
	s.strokes = 0
}

func (s *fakeSurface) Draw(screen *ebiten.Image) {}

// fakeSounder counts impact sounds
type fakeSounder struct {
	plays   int
	volumes []float64
	onPlay  func()
}

func (s *fakeSounder) PlayImpactSound(volume float64) {
	s.plays++
	s.volumes = append(s.volumes, volume)
	if s.onPlay != nil {
		s.onPlay()
	}
}

func (s *fakeSounder) Constructed() int {
	if s.plays > 0 {
		return 1
	}
	return 0
}

// fakeTrigger keeps the activation callback so tests can click it
type fakeTrigger struct {
	onActivate func()
}

func (t *fakeTrigger) OnActivate(fn func()) { t.onActivate = fn }

func (t *fakeTrigger) Click() {
	if t.onActivate != nil {
		t.onActivate()
	}
}

type fakeFinder map[string]*fakeTrigger

func (f fakeFinder) Trigger(id string) (Trigger, bool) {
	t, ok := f[id]
	if !ok {
		return nil, false
	}
	return t, true
}

type testSession struct {
	world   donburi.World
	surface *fakeSurface
	sounder *fakeSounder
	trigger *fakeTrigger
	cursor  []ebiten.CursorModeType
}

// newTestSession builds an initialized, inactive session with fakes for
// every device
func newTestSession(t *testing.T) *testSession {
	t.Helper()

	s := &testSession{
		world:   donburi.NewWorld(),
		surface: &fakeSurface{},
		sounder: &fakeSounder{},
		trigger: &fakeTrigger{},
	}

	orig := setCursorMode
	setCursorMode = func(mode ebiten.CursorModeType) {
		s.cursor = append(s.cursor, mode)
	}
	t.Cleanup(func() { setCursorMode = orig })

	SetRandSource(s.world, rand.New(rand.NewSource(42)))
	SetSurface(s.world, s.surface)
	SetAudioEngine(s.world, s.sounder)
	SetViewport(s.world, 800, 500)

	finder := fakeFinder{"activate-destruction-btn": s.trigger}
	if err := InitDestructionMode(s.world, finder, "activate-destruction-btn"); err != nil {
		t.Fatalf("Expected init to succeed, got %v", err)
	}
	return s
}

// advance moves the clock forward n ticks
func (s *testSession) advance(n int) {
	for i := 0; i < n; i++ {
		AdvanceClock(s.world)
	}
}
