package systems

import (
	"image"
	"image/color"

	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/automoto/glasspane/systems/factory"
	"github.com/automoto/glasspane/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	shardVertices = make([]ebiten.Vertex, 0, 3*32)
	shardIndices  = make([]uint16, 0, 3*32)
)

// CreateFallingShards spawns one burst of shards at (x, y). Every shard
// removes itself Lifetime after now, whatever the mode is by then.
func CreateFallingShards(w donburi.World, x, y float64) int {
	now := Now(w)
	shards := factory.GenerateShards(GetOrCreateRand(w), x, y)
	for _, p := range shards {
		factory.SpawnShard(w, p, now)
	}
	return len(shards)
}

// UpdateShards advances each shard's fall tween
func UpdateShards(e *ecs.ECS) {
	dt := float32(GetOrCreateClock(e.World).Tick.Seconds())
	components.Shard.Each(e.World, func(entry *donburi.Entry) {
		shard := components.Shard.Get(entry)
		if shard.Fall == nil {
			return
		}
		progress, done := shard.Fall.Update(dt)
		shard.Progress = progress
		if done {
			shard.Fall = nil
			shard.Progress = 1
		}
	})
}

// CountShards returns the number of live shards
func CountShards(w donburi.World) int {
	n := 0
	tags.Shard.Each(w, func(*donburi.Entry) {
		n++
	})
	return n
}

// shardTriangle returns the apex and base corners of a shard as drawn:
// an upward triangle filling the size x size box centred on the origin,
// offset by the drift and by how far it has fallen.
func shardTriangle(s *components.ShardData) (ax, ay, lx, ly, rx, ry float32) {
	half := s.Size / 2
	left := s.OriginX - half + s.DriftX
	top := s.OriginY - half + float64(s.Progress)*cfg.Shard.FallDistance
	return float32(left + half), float32(top),
		float32(left), float32(top + s.Size),
		float32(left + s.Size), float32(top + s.Size)
}

// DrawShards renders every live shard, fading it out as it falls
func DrawShards(e *ecs.ECS, screen *ebiten.Image) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	shardVertices = shardVertices[:0]
	shardIndices = shardIndices[:0]

	components.Shard.Each(e.World, func(entry *donburi.Entry) {
		s := components.Shard.Get(entry)
		alpha := float32(s.Color.A) / 255 * (1 - s.Progress)
		if alpha <= 0 {
			return
		}
		r := float32(s.Color.R) / 255
		g := float32(s.Color.G) / 255
		b := float32(s.Color.B) / 255

		ax, ay, lx, ly, rx, ry := shardTriangle(s)
		base := uint16(len(shardVertices))
		for _, p := range [3][2]float32{{ax, ay}, {lx, ly}, {rx, ry}} {
			shardVertices = append(shardVertices, ebiten.Vertex{
				DstX: p[0], DstY: p[1],
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: alpha,
			})
		}
		shardIndices = append(shardIndices, base, base+1, base+2)
	})

	if len(shardIndices) == 0 {
		return
	}
	screen.DrawTriangles(shardVertices, shardIndices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
