package systems

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/yohamta/donburi"
)

// CrackSegment is one fracture line radiating from an impact point
type CrackSegment struct {
	OriginX, OriginY float64
	Angle            float64 // radians
	Length           float64
	StrokeAlpha      float64
	StrokeWidth      float64
}

// End returns the far endpoint of the segment
func (s CrackSegment) End() (float64, float64) {
	return s.OriginX + math.Cos(s.Angle)*s.Length,
		s.OriginY + math.Sin(s.Angle)*s.Length
}

// GenerateCracks builds the segments for one impact at (x, y)
func GenerateCracks(rng *rand.Rand, x, y float64) []CrackSegment {
	c := cfg.Crack
	n := randCount(rng, c.MinCount, c.MaxCount)
	segments := make([]CrackSegment, n)
	for i := range segments {
		segments[i] = CrackSegment{
			OriginX:     x,
			OriginY:     y,
			Angle:       rng.Float64() * 2 * math.Pi,
			Length:      randRange(rng, c.MinLength, c.MaxLength),
			StrokeAlpha: randRange(rng, c.MinAlpha, c.MaxAlpha),
			StrokeWidth: randRange(rng, c.MinWidth, c.MaxWidth),
		}
	}
	return segments
}

// DrawShatter strokes a fresh set of cracks onto the glass pane. The segments
// are not retained; the surface pixels are the only record.
func DrawShatter(w donburi.World, x, y float64) int {
	surface := GetOrCreatePane(w).Surface
	segments := GenerateCracks(GetOrCreateRand(w), x, y)
	for _, s := range segments {
		ex, ey := s.End()
		surface.StrokeLine(
			float32(s.OriginX), float32(s.OriginY),
			float32(ex), float32(ey),
			float32(s.StrokeWidth),
			withAlpha(cfg.Crack.Color, s.StrokeAlpha),
		)
	}
	return len(segments)
}

// withAlpha returns base with a non-premultiplied alpha in [0, 1]
func withAlpha(base color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(math.Round(alpha * 255))}
}

// randRange returns a uniform value in [lo, hi)
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randCount returns a uniform integer in [lo, hi]
func randCount(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// SetRandSource replaces the random source, e.g. with a seeded one in tests
func SetRandSource(w donburi.World, rng *rand.Rand) {
	GetOrCreateRand(w)
	entry, _ := components.Random.First(w)
	components.Random.Get(entry).Rand = rng
}

// GetOrCreateRand returns the world's random source, creating it if needed
func GetOrCreateRand(w donburi.World) *rand.Rand {
	entry, ok := components.Random.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Random))
		components.Random.SetValue(entry, components.RandomData{
			Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		})
	}
	return components.Random.Get(entry).Rand
}
