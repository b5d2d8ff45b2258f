package config

// SettingsConfig contains persisted-settings defaults and the start menu options
type SettingsConfig struct {
	AppName            string // gdata application namespace
	SettingsKey        string
	PlayerCountOptions []int
	DefaultPlayerCount int
	DefaultMusicOn     bool
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:            "dreamrunner",
		SettingsKey:        "settings",
		PlayerCountOptions: []int{2, 3},
		DefaultPlayerCount: 2,
		DefaultMusicOn:     true,
	}
}
