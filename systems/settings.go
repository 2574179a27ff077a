package systems

import (
	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// setFullscreen is replaced in tests, where no window exists
var setFullscreen = ebiten.SetFullscreen

// UpdateSettings handles the volume, mute, fullscreen and debug shortcuts.
// Changes other than the debug overlay are saved immediately.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e.World)
	changed := true

	switch {
	case actionJustPressed(cfg.ActionVolumeUp):
		settings.SFXVolume = adjustVolumeStep(settings.SFXVolume, +1)
	case actionJustPressed(cfg.ActionVolumeDown):
		settings.SFXVolume = adjustVolumeStep(settings.SFXVolume, -1)
	case actionJustPressed(cfg.ActionToggleMute):
		toggleMute(settings)
	case actionJustPressed(cfg.ActionToggleFullscreen):
		toggleFullscreen(settings)
	case actionJustPressed(cfg.ActionToggleDebug):
		settings.Debug = !settings.Debug
		changed = false
	default:
		changed = false
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

func actionJustPressed(action cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[action].Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.Settings.VolumeSteps
	newIdx := findClosestStepIndex(current, steps) + direction
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(steps) {
		newIdx = len(steps) - 1
	}
	return steps[newIdx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// toggleMute toggles the mute state; the volume is kept for unmuting.
// A run-only mute is lifted first and leaves the saved state alone.
func toggleMute(s *components.SettingsData) {
	if s.RunMuted {
		s.RunMuted = false
		return
	}
	s.Muted = !s.Muted
}

// toggleFullscreen toggles fullscreen mode
func toggleFullscreen(s *components.SettingsData) {
	s.Fullscreen = !s.Fullscreen
	setFullscreen(s.Fullscreen)
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the configured defaults if needed
func GetOrCreateSettings(w donburi.World) *components.SettingsData {
	entry, ok := components.Settings.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			SFXVolume: cfg.Audio.DefaultSFXVol,
			Debug:     cfg.Debug.Overlay,
			RunMuted:  cfg.Debug.Mute,
		})
	}
	return components.Settings.Get(entry)
}
