package factory

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/automoto/glasspane/archetypes"
	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ShardParticle describes one falling shard before it is spawned
type ShardParticle struct {
	OriginX, OriginY float64 // center of the shard
	Size             float64
	ColorAlpha       float64
	DriftX           float64 // static horizontal offset
	AnimDuration     time.Duration
	Lifetime         time.Duration
}

// GenerateShards builds the particles for one impact at (x, y)
func GenerateShards(rng *rand.Rand, x, y float64) []ShardParticle {
	c := cfg.Shard
	n := c.MinCount + rng.Intn(c.MaxCount-c.MinCount+1)
	shards := make([]ShardParticle, n)
	for i := range shards {
		shards[i] = ShardParticle{
			OriginX:      x,
			OriginY:      y,
			Size:         c.MinSize + rng.Float64()*(c.MaxSize-c.MinSize),
			ColorAlpha:   c.MinAlpha + rng.Float64()*(c.MaxAlpha-c.MinAlpha),
			DriftX:       (rng.Float64()*2 - 1) * c.MaxDrift,
			AnimDuration: c.MinAnim + time.Duration(rng.Float64()*float64(c.MaxAnim-c.MinAnim)),
			Lifetime:     c.Lifetime,
		}
	}
	return shards
}

// SpawnShard adds a shard entity that expires Lifetime after now
func SpawnShard(w donburi.World, p ShardParticle, now time.Duration) *donburi.Entry {
	entry := archetypes.Shard.Spawn(w)

	base := cfg.Shard.Color
	clr := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(p.ColorAlpha * 255)}

	components.Shard.SetValue(entry, components.ShardData{
		OriginX: p.OriginX,
		OriginY: p.OriginY,
		Size:    p.Size,
		Color:   clr,
		DriftX:  p.DriftX,
		Fall:    gween.New(0, 1, float32(p.AnimDuration.Seconds()), ease.InQuad),
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		CreatedAt: now,
		ExpiresAt: now + p.Lifetime,
	})

	return entry
}
