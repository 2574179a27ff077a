package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the user settings applied to the session
type SettingsData struct {
	SFXVolume  float64 // 0.0, 0.25, 0.50, 0.75, 1.0
	Muted      bool
	Fullscreen bool
	Debug      bool
	RunMuted   bool // -mute flag, never saved
}

// EffectiveSFXVolume is the volume after mute is applied
func (s *SettingsData) EffectiveSFXVolume() float64 {
	if s.Muted || s.RunMuted {
		return 0
	}
	return s.SFXVolume
}

var Settings = donburi.NewComponentType[SettingsData]()
