package systems

import (
	"math"
	"math/rand"
	"testing"

	cfg "github.com/automoto/glasspane/config"
)

func TestGenerateCracksRanges(t *testing.T) {
	c := cfg.Crack
	counts := map[int]bool{}

	for seed := int64(0); seed < 200; seed++ {
		segments := GenerateCracks(rand.New(rand.NewSource(seed)), 320, 240)
		counts[len(segments)] = true

		if len(segments) < c.MinCount || len(segments) > c.MaxCount {
			t.Fatalf("seed %d: expected %d-%d segments, got %d", seed, c.MinCount, c.MaxCount, len(segments))
		}
		for i, s := range segments {
			if s.OriginX != 320 || s.OriginY != 240 {
				t.Errorf("seed %d segment %d: expected origin (320, 240), got (%v, %v)", seed, i, s.OriginX, s.OriginY)
			}
			if s.Angle < 0 || s.Angle >= 2*math.Pi {
				t.Errorf("seed %d segment %d: angle %v out of range", seed, i, s.Angle)
			}
			if s.Length < c.MinLength || s.Length > c.MaxLength {
				t.Errorf("seed %d segment %d: length %v out of range", seed, i, s.Length)
			}
			if s.StrokeAlpha < c.MinAlpha || s.StrokeAlpha > c.MaxAlpha {
				t.Errorf("seed %d segment %d: alpha %v out of range", seed, i, s.StrokeAlpha)
			}
			if s.StrokeWidth < c.MinWidth || s.StrokeWidth > c.MaxWidth {
				t.Errorf("seed %d segment %d: width %v out of range", seed, i, s.StrokeWidth)
			}
		}
	}

	if !counts[c.MinCount] || !counts[c.MaxCount] {
		t.Errorf("Expected both count bounds to occur over 200 seeds, got %v", counts)
	}
}

func TestCrackSegmentEnd(t *testing.T) {
	tests := []struct {
		name  string
		seg   CrackSegment
		wantX float64
		wantY float64
	}{
		{"right", CrackSegment{OriginX: 10, OriginY: 10, Angle: 0, Length: 50}, 60, 10},
		{"down", CrackSegment{OriginX: 10, OriginY: 10, Angle: math.Pi / 2, Length: 50}, 10, 60},
		{"left", CrackSegment{OriginX: 10, OriginY: 10, Angle: math.Pi, Length: 50}, -40, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.seg.End()
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	clr := withAlpha(cfg.Crack.Color, 0.5)
	if clr.R != 226 || clr.G != 232 || clr.B != 240 {
		t.Errorf("Expected rgb(226,232,240), got %v", clr)
	}
	if clr.A != 128 {
		t.Errorf("Expected alpha 128, got %d", clr.A)
	}
}

func TestDrawShatterStrokesEverySegment(t *testing.T) {
	s := newTestSession(t)

	n := DrawShatter(s.world, 50, 50)
	if n != s.surface.strokes {
		t.Errorf("Expected %d strokes, got %d", n, s.surface.strokes)
	}
}
