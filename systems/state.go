package systems

import (
	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/yohamta/donburi"
)

// Step runs one simulation tick: CPU controls first, then the match.
// Human controls must already be written for the tick.
func Step(w donburi.World, c *cfg.Config) {
	UpdateBots(w, c)
	UpdateMatch(w, c)
}

// GetMatch returns the match singleton.
func GetMatch(w donburi.World) (*components.MatchData, bool) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return nil, false
	}
	return components.Match.Get(matchEntry), true
}

// IsMatchState reports whether the match exists and is in state s.
func IsMatchState(w donburi.World, s cfg.MatchStateID) bool {
	match, ok := GetMatch(w)
	return ok && match.State == s
}

func IsPlaying(w donburi.World) bool {
	return IsMatchState(w, cfg.MatchStatePlaying)
}

func IsRoundOver(w donburi.World) bool {
	return IsMatchState(w, cfg.MatchStateRoundOver)
}
