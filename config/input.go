package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionSmash
	ActionCancel
	ActionToggleFullscreen
	ActionToggleMute
	ActionVolumeUp
	ActionVolumeDown
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionSmash: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionCancel: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
			ActionToggleMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionVolumeUp: {
				Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd},
			},
			ActionVolumeDown: {
				Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
