package components

import "github.com/yohamta/donburi"

// ModeState is the destruction mode activation state
type ModeState int

const (
	ModeInactive ModeState = iota
	ModeActive
)

func (s ModeState) String() string {
	switch s {
	case ModeActive:
		return "active"
	default:
		return "inactive"
	}
}

// ModeData is the singleton owned by the mode controller. Input listeners
// live on the world's event bus while the mode is active.
type ModeData struct {
	State ModeState
}

var Mode = donburi.NewComponentType[ModeData]()
