package components

import (
	"image/color"
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ShardData is a falling debris particle. Position and drift never change;
// the tween only drives the fall/fade presentation.
type ShardData struct {
	OriginX, OriginY float64
	Size             float64
	Color            color.NRGBA
	DriftX           float64
	Fall             *gween.Tween
	Progress         float32 // 0..1, last tween value
}

var Shard = donburi.NewComponentType[ShardData]()

// AutoDestroyData marks entities that are removed once the session clock
// reaches ExpiresAt, independent of any other state
type AutoDestroyData struct {
	CreatedAt time.Duration
	ExpiresAt time.Duration
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// DeferredData is a one-shot task run when the clock reaches Due.
// There is no cancellation handle.
type DeferredData struct {
	Due time.Duration
	Run func()
}

var Deferred = donburi.NewComponentType[DeferredData]()

// ClockData is the session clock, advanced by a fixed tick per update
type ClockData struct {
	Elapsed time.Duration
	Tick    time.Duration
}

var Clock = donburi.NewComponentType[ClockData]()
