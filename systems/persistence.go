package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/glasspane/components"
	cfg "github.com/automoto/glasspane/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the session's settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(savedFrom(s))
}

// savedFrom picks the persisted fields; run-only state stays out
func savedFrom(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		SFXVolume:  s.SFXVolume,
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
	}
}

// ApplySavedSettings copies loaded settings into the session and applies
// the window mode
func ApplySavedSettings(w donburi.World, saved *SavedSettings) {
	if saved == nil {
		return
	}

	settings := GetOrCreateSettings(w)
	settings.SFXVolume = saved.SFXVolume
	settings.Muted = saved.Muted
	settings.Fullscreen = saved.Fullscreen

	setFullscreen(saved.Fullscreen)
}
