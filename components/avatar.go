package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AvatarData is the pointer-following axe. Only the latest sample is kept.
type AvatarData struct {
	X, Y  float64
	Swing *gween.Tween // nil when idle
	Angle float32
}

var Avatar = donburi.NewComponentType[AvatarData]()
