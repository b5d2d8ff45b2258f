package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/logger"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// SettingsStore is the backing storage for saved settings. gdata.Manager
// satisfies it; tests can use an in-memory map.
type SettingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore SettingsStore

// InitPersistence opens the per-user data directory used for settings.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	settingsStore = m
	return nil
}

// UseSettingsStore replaces the storage backend. Passing nil disables persistence.
func UseSettingsStore(s SettingsStore) {
	settingsStore = s
}

// LoadSettings reads saved settings. It returns nil with no error when
// persistence is unavailable, unreadable or nothing has been saved yet.
// Unparseable data is returned as an error.
func LoadSettings() (*components.SettingsData, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(cfg.Settings.SettingsKey)
	if err != nil {
		logger.Warningf("could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings components.SettingsData
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes settings to storage.
func SaveSettings(s *components.SettingsData) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := settingsStore.SaveItem(cfg.Settings.SettingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ApplySavedSettings copies loaded settings onto the match singleton. The
// remembered player count preselects the start menu entry.
func ApplySavedSettings(w donburi.World, saved *components.SettingsData) {
	if saved == nil {
		return
	}
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}

	settings := components.Settings.Get(matchEntry)
	settings.MusicEnabled = saved.MusicEnabled

	menu := components.Menu.Get(matchEntry)
	for i, n := range menu.Options {
		if n == saved.LastPlayerCount {
			settings.LastPlayerCount = n
			menu.SelectedIndex = i
		}
	}
}

// SaveCurrentSettings persists the match singleton's settings. Failures are
// logged and otherwise ignored.
func SaveCurrentSettings(w donburi.World) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}
	if err := SaveSettings(components.Settings.Get(matchEntry)); err != nil {
		logger.Warningf("could not save settings: %v", err)
	}
}

// ToggleMusic flips the music preference and persists it. It returns the new state.
func ToggleMusic(w donburi.World) bool {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return false
	}
	settings := components.Settings.Get(matchEntry)
	settings.MusicEnabled = !settings.MusicEnabled
	SaveCurrentSettings(w)
	return settings.MusicEnabled
}

// RememberPlayerCount stores the player count picked on the start menu.
func RememberPlayerCount(w donburi.World, n int) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}
	components.Settings.Get(matchEntry).LastPlayerCount = n
	SaveCurrentSettings(w)
}
