package systems

import (
	"math"

	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	axeImage     *ebiten.Image
	avatarDrawOp = &ebiten.DrawImageOptions{}
)

// MoveAvatar stores the latest pointer sample
func MoveAvatar(w donburi.World, x, y float64) {
	avatar, ok := getAvatar(w)
	if !ok {
		return
	}
	avatar.X = x
	avatar.Y = y
}

// SwingAvatar restarts the swing animation
func SwingAvatar(w donburi.World) {
	avatar, ok := getAvatar(w)
	if !ok {
		return
	}
	avatar.Swing = gween.New(0, cfg.Avatar.SwingAngle, cfg.Avatar.SwingDuration, swingEase)
	avatar.Angle = 0
}

// swingEase goes out to b+c and back to b over the duration
func swingEase(t, b, c, d float32) float32 {
	return b + c*float32(math.Sin(math.Pi*float64(t/d)))
}

// UpdateAvatar advances the swing tween
func UpdateAvatar(e *ecs.ECS) {
	avatar, ok := getAvatar(e.World)
	if !ok || avatar.Swing == nil {
		return
	}
	angle, done := avatar.Swing.Update(float32(GetOrCreateClock(e.World).Tick.Seconds()))
	avatar.Angle = angle
	if done {
		avatar.Swing = nil
		avatar.Angle = 0
	}
}

// DrawAvatar draws the axe with its top-left corner at the pointer, rotated
// about the bottom of the handle. Only drawn while the mode is active.
func DrawAvatar(e *ecs.ECS, screen *ebiten.Image) {
	if !IsActive(e.World) {
		return
	}
	avatar, ok := getAvatar(e.World)
	if !ok {
		return
	}

	if axeImage == nil {
		axeImage = newAxeImage()
	}

	pivotX := float64(cfg.Avatar.Width) / 2
	pivotY := float64(cfg.Avatar.Height)

	avatarDrawOp.GeoM.Reset()
	avatarDrawOp.GeoM.Translate(-pivotX, -pivotY)
	avatarDrawOp.GeoM.Rotate(float64(avatar.Angle))
	avatarDrawOp.GeoM.Translate(avatar.X+pivotX, avatar.Y+pivotY)
	screen.DrawImage(axeImage, avatarDrawOp)
}

func newAxeImage() *ebiten.Image {
	a := cfg.Avatar
	img := ebiten.NewImage(int(a.Width), int(a.Height))

	// Handle
	vector.FillRect(img, a.Width/2-2, 0, 4, a.Height, a.HandleColor, false)
	// Blade
	vector.FillRect(img, 0, 2, a.Width/2-2, a.Height/3, a.BladeColor, true)
	vector.FillRect(img, 0, 2, 2, a.Height/3, cfg.White, false)

	return img
}

func getAvatar(w donburi.World) (*components.AvatarData, bool) {
	entry, ok := components.Avatar.First(w)
	if !ok {
		return nil, false
	}
	return components.Avatar.Get(entry), true
}
