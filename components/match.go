package components

import (
	"math/rand/v2"

	cfg "github.com/automoto/dreamrunner/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the session and the current round.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State      cfg.MatchStateID
	NumPlayers int
	NumBots    int // The last NumBots roster slots are CPU controlled
	BotLevel   cfg.BotDifficulty

	Roster  []donburi.Entity // Update order is roster order
	Terrain donburi.Entity

	Score         int   // Ticks survived this round, drives the difficulty ramp
	Round         int   // 1-based round number within the session
	PlayerScores  []int // Cross-round win tally, indexed by roster position
	WinnerIndex   int   // Roster index of the round winner, cfg.WinnerPending or cfg.WinnerTie
	RoundEndTimer int

	Rand *rand.Rand // Seeds each round's terrain
}

// RoundWinner returns the winner's roster index and whether the round had one.
func (m *MatchData) RoundWinner() (int, bool) {
	return m.WinnerIndex, m.WinnerIndex >= 0
}

// GetLeader returns the roster index with the most round wins (-1 for tie, -2 for no wins)
func (m *MatchData) GetLeader() int {
	leader := -2
	best := 0
	tied := false
	for i, wins := range m.PlayerScores {
		switch {
		case wins > best:
			best = wins
			leader = i
			tied = false
		case wins == best && wins > 0:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return leader
}

var Match = donburi.NewComponentType[MatchData]()
