package systems

import (
	"fmt"

	cfg "github.com/automoto/glasspane/config"
	"github.com/automoto/glasspane/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DebugLines returns the overlay text: mode, shards, audio and clock
func DebugLines(w donburi.World) []string {
	state := "none"
	if mode, ok := GetMode(w); ok {
		state = mode.State.String()
	}
	settings := GetOrCreateSettings(w)
	vw, vh := Viewport(w)

	return []string{
		fmt.Sprintf("mode: %s", state),
		fmt.Sprintf("shards: %d", CountShards(w)),
		fmt.Sprintf("audio contexts: %d", AudioConstructed(w)),
		fmt.Sprintf("sfx: %.2f muted: %t", settings.SFXVolume, settings.Muted || settings.RunMuted),
		fmt.Sprintf("viewport: %dx%d", vw, vh),
		fmt.Sprintf("clock: %s", Now(w)),
		fmt.Sprintf("tps: %.1f", ebiten.ActualTPS()),
	}
}

// DrawDebug renders the overlay in the bottom-left corner when enabled
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e.World)
	if !settings.Debug {
		return
	}

	face := fonts.Small.Get()
	lines := DebugLines(e.World)
	lineHeight := face.Metrics().Height.Ceil()

	height := float32(lineHeight*len(lines)) + 8
	top := float32(screen.Bounds().Dy()) - height
	vector.FillRect(screen, 0, top, 220, height, cfg.BlackOverlay, false)

	for i, line := range lines {
		y := int(top) + 4 + lineHeight*(i+1) - 2
		text.Draw(screen, line, face, 6, y, cfg.LightBlue)
	}
}
