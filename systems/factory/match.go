package factory

import (
	"time"

	"github.com/automoto/dreamrunner/archetypes"
	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateMatch spawns the session singleton in the start menu state, along
// with the collision space every round reuses.
func CreateMatch(w donburi.World, c *cfg.Config) *donburi.Entry {
	CreateSpace(w, c.Stage.Width, c.Stage.Height, spaceCellSize, spaceCellSize)

	match := archetypes.Match.Spawn(w)
	components.Match.SetValue(match, components.MatchData{
		State:       cfg.MatchStateStartMenu,
		NumPlayers:  cfg.Settings.DefaultPlayerCount,
		BotLevel:    cfg.BotDifficultyNormal,
		WinnerIndex: cfg.WinnerPending,
		Rand:        gamemath.NewRand(seedFor(c)),
	})
	components.Menu.SetValue(match, components.MenuData{
		Options: cfg.Settings.PlayerCountOptions,
	})
	components.Settings.SetValue(match, components.SettingsData{
		MusicEnabled:    cfg.Settings.DefaultMusicOn,
		LastPlayerCount: cfg.Settings.DefaultPlayerCount,
	})
	return match
}

const spaceCellSize = 20

func seedFor(c *cfg.Config) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
