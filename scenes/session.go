package scenes

import (
	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/logger"
	"github.com/automoto/dreamrunner/sound"
	"github.com/automoto/dreamrunner/systems"
	"github.com/automoto/dreamrunner/systems/factory"
	"github.com/yohamta/donburi"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is the world shared by the menu and stage scenes. Win tallies
// live on its match singleton and survive scene changes.
type Session struct {
	World   donburi.World
	Config  *cfg.Config
	NumBots int
}

// NewSession creates the match singleton and applies saved settings.
func NewSession(c *cfg.Config, numBots int, saved *components.SettingsData) *Session {
	w := donburi.NewWorld()
	factory.CreateMatch(w, c)
	systems.ApplySavedSettings(w, saved)

	s := &Session{World: w, Config: c, NumBots: numBots}
	sound.SetMusicEnabled(s.Settings().MusicEnabled)
	return s
}

// Settings returns the live preferences on the match singleton.
func (s *Session) Settings() *components.SettingsData {
	matchEntry, _ := components.Match.First(s.World)
	return components.Settings.Get(matchEntry)
}

// Start begins a new game with numPlayers, resetting tallies.
func (s *Session) Start(numPlayers int) error {
	return systems.StartGame(s.World, s.Config, numPlayers, s.NumBots)
}

// toggleMusic flips and persists the music preference, then applies it.
func toggleMusic(w donburi.World) {
	enabled := systems.ToggleMusic(w)
	sound.SetMusicEnabled(enabled)
	logger.Infof("music enabled: %t", enabled)
}
