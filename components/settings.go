package components

import "github.com/yohamta/donburi"

// SettingsData holds user preferences that survive restarts. Scores are never saved.
type SettingsData struct {
	MusicEnabled    bool `json:"music_enabled"`
	LastPlayerCount int  `json:"last_player_count"`
}

var Settings = donburi.NewComponentType[SettingsData]()
