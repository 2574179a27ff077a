package systems

import (
	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/automoto/glasspane/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for hint rendering (lazy initialized)
var hintFontFace font.Face

// ShowHint makes the instructional hint visible
func ShowHint(w donburi.World) {
	if hint, ok := getHint(w); ok {
		hint.Visible = true
	}
}

// HideHint hides the instructional hint; hiding a hidden hint is harmless
func HideHint(w donburi.World) {
	if hint, ok := getHint(w); ok {
		hint.Visible = false
	}
}

// IsHintVisible reports whether the hint is showing
func IsHintVisible(w donburi.World) bool {
	hint, ok := getHint(w)
	return ok && hint.Visible
}

// DrawHint renders the visible hint at the top center of the screen
func DrawHint(e *ecs.ECS, screen *ebiten.Image) {
	hint, ok := getHint(e.World)
	if !ok || !hint.Visible || hint.Text == "" {
		return
	}

	// Lazy initialize cached font face
	if hintFontFace == nil {
		hintFontFace = fonts.Hint.Get()
	}

	// Measure text
	bounds := text.BoundString(hintFontFace, hint.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	// Calculate box dimensions
	padding := cfg.Hint.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	// Position at top center
	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Hint.TopMargin)

	vector.FillRect(
		screen,
		boxX, boxY,
		boxWidth, boxHeight,
		cfg.Hint.BoxColor,
		false,
	)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, hint.Text, hintFontFace, textX, textY, cfg.Hint.TextColor)
}

func getHint(w donburi.World) (*components.HintData, bool) {
	entry, ok := components.Hint.First(w)
	if !ok {
		return nil, false
	}
	return components.Hint.Get(entry), true
}
