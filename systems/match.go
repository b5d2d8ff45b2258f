package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/logger"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/automoto/dreamrunner/systems/factory"
	"github.com/yohamta/donburi"
)

var (
	ErrNoMatch            = errors.New("no match in world")
	ErrInvalidPlayerCount = errors.New("invalid player count")
)

// UpdateMatch handles round state transitions and timers. Each Playing tick
// advances the terrain, then every player in roster order, then checks
// whether the round is over.
func UpdateMatch(w donburi.World, c *cfg.Config) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	switch match.State {
	case cfg.MatchStateStartMenu:
		// Waiting for a player count from the menu
		return

	case cfg.MatchStatePlaying:
		updatePlaying(w, c, match)

	case cfg.MatchStateRoundOver:
		match.RoundEndTimer++
		if match.RoundEndTimer >= c.Round.RoundEndDuration {
			if err := NextRound(w, c); err != nil {
				logger.Criticalf("could not start next round: %v", err)
			}
		}
	}
}

func updatePlaying(w donburi.World, c *cfg.Config, match *components.MatchData) {
	terrain := components.Terrain.Get(w.Entry(match.Terrain))
	UpdateTerrain(c, terrain, match.Score)

	alive := UpdatePlayers(c, terrain, Roster(w, match))

	if len(alive) <= 1 {
		endRound(match, alive)
	}

	if len(alive) > 0 {
		match.Score++
	}
}

func endRound(match *components.MatchData, alive []int) {
	if len(alive) == 1 {
		match.WinnerIndex = alive[0]
		match.PlayerScores[alive[0]]++
		logger.Infof("round %d over: player %d wins (tally %v)", match.Round, alive[0]+1, match.PlayerScores)
	} else {
		match.WinnerIndex = cfg.WinnerTie
		logger.Infof("round %d over: tie (tally %v)", match.Round, match.PlayerScores)
	}
	match.State = cfg.MatchStateRoundOver
	match.RoundEndTimer = 0
}

// Roster returns the match's player entries in update order.
func Roster(w donburi.World, match *components.MatchData) []*donburi.Entry {
	roster := make([]*donburi.Entry, 0, len(match.Roster))
	for _, entity := range match.Roster {
		if w.Valid(entity) {
			roster = append(roster, w.Entry(entity))
		}
	}
	return roster
}

// CurrentTerrain returns the live round's terrain, if a round has been started.
func CurrentTerrain(w donburi.World) (*components.TerrainData, bool) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return nil, false
	}
	match := components.Match.Get(matchEntry)
	if !w.Valid(match.Terrain) {
		return nil, false
	}
	return components.Terrain.Get(w.Entry(match.Terrain)), true
}

// StartGame begins a fresh session with numPlayers, of which the last
// numBots are CPU controlled. Win tallies are reset.
func StartGame(w donburi.World, c *cfg.Config, numPlayers, numBots int) error {
	if numPlayers < c.Round.MinPlayers || numPlayers > c.Round.MaxPlayers {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerCount, numPlayers)
	}
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return ErrNoMatch
	}
	match := components.Match.Get(matchEntry)
	match.NumBots = min(max(numBots, 0), numPlayers)
	return initRound(w, c, match, numPlayers, true)
}

// ChangePlayerCount switches to a new player count, keeping the bot count,
// and resets tallies.
func ChangePlayerCount(w donburi.World, c *cfg.Config, numPlayers int) error {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return ErrNoMatch
	}
	return StartGame(w, c, numPlayers, components.Match.Get(matchEntry).NumBots)
}

// RestartRound starts a new round immediately, keeping tallies.
func RestartRound(w donburi.World, c *cfg.Config) error {
	return NextRound(w, c)
}

// NextRound starts the next round with the same player count, keeping tallies.
func NextRound(w donburi.World, c *cfg.Config) error {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return ErrNoMatch
	}
	match := components.Match.Get(matchEntry)
	return initRound(w, c, match, match.NumPlayers, false)
}

// ReturnToMenu discards the current round and goes back to the start menu.
// Tallies are kept until a new game is started.
func ReturnToMenu(w donburi.World) error {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return ErrNoMatch
	}
	match := components.Match.Get(matchEntry)
	clearRound(w, match)
	match.State = cfg.MatchStateStartMenu
	match.WinnerIndex = cfg.WinnerPending
	match.RoundEndTimer = 0
	return nil
}

// SecondsUntilNextRound is the whole-second countdown shown after a round ends.
func SecondsUntilNextRound(c *cfg.Config, match *components.MatchData) int {
	tps := max(c.Stage.TickRate, 1)
	return (c.Round.RoundEndDuration-match.RoundEndTimer)/tps + 1
}

// DifficultyLevel is the 1-based difficulty shown on the HUD for the current round.
func DifficultyLevel(c *cfg.Config, match *components.MatchData) int {
	return gamemath.DifficultyLevel(match.Score, c.Terrain.DifficultyStep, c.Terrain.MaxDifficulty)
}

func initRound(w donburi.World, c *cfg.Config, match *components.MatchData, numPlayers int, resetScores bool) error {
	if numPlayers < c.Round.MinPlayers || numPlayers > c.Round.MaxPlayers {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerCount, numPlayers)
	}

	if resetScores || len(match.PlayerScores) != numPlayers {
		match.PlayerScores = make([]int, numPlayers)
		match.Round = 0
	}
	match.NumPlayers = numPlayers
	match.NumBots = min(match.NumBots, numPlayers)

	clearRound(w, match)

	spawnXs := c.SpawnPositions(numPlayers)
	spawnY := c.SpawnY()
	firstBot := numPlayers - match.NumBots
	for i := range numPlayers {
		var e *donburi.Entry
		if i >= firstBot {
			e = factory.CreateBotPlayer(w, c, i, spawnXs[i], spawnY, match.BotLevel)
		} else {
			e = factory.CreatePlayer(w, c, i, spawnXs[i], spawnY)
		}
		match.Roster = append(match.Roster, e.Entity())
	}

	terrainEntry := factory.CreateTerrain(w, c, gamemath.NewRand(match.Rand.Uint64()))
	GenerateInitialTerrain(c, components.Terrain.Get(terrainEntry), spawnXs[:numPlayers])
	match.Terrain = terrainEntry.Entity()

	match.State = cfg.MatchStatePlaying
	match.Score = 0
	match.Round++
	match.WinnerIndex = cfg.WinnerPending
	match.RoundEndTimer = 0

	logger.Infof("round %d started: %d players (%d cpu)", match.Round, numPlayers, match.NumBots)
	return nil
}

// clearRound removes the round's players and terrain from the world and the space.
func clearRound(w donburi.World, match *components.MatchData) {
	var space *components.SpaceData
	if spaceEntry, ok := components.Space.First(w); ok {
		space = components.Space.Get(spaceEntry)
	}

	for _, entity := range match.Roster {
		if !w.Valid(entity) {
			continue
		}
		if space != nil {
			space.Remove(components.Object.Get(w.Entry(entity)).Object)
		}
		w.Remove(entity)
	}
	match.Roster = match.Roster[:0]

	if w.Valid(match.Terrain) {
		t := components.Terrain.Get(w.Entry(match.Terrain))
		if t.Space != nil {
			t.Space.Remove(t.Holes...)
			t.Space.Remove(t.Platforms...)
		}
		w.Remove(match.Terrain)
	}
}
