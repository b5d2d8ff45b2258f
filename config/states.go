package config

// MatchStateID is the session-level round state
type MatchStateID int

const (
	MatchStateStartMenu MatchStateID = iota
	MatchStatePlaying
	MatchStateRoundOver
)

func (s MatchStateID) String() string {
	switch s {
	case MatchStateStartMenu:
		return "start_menu"
	case MatchStatePlaying:
		return "playing"
	case MatchStateRoundOver:
		return "round_over"
	}
	return "unknown"
}

// ConditionID is the mutually exclusive life state of a player
type ConditionID int

const (
	ConditionNormal ConditionID = iota
	ConditionStunned
	ConditionDead       // Falling out the death animation
	ConditionEliminated // Death animation finished, no further physics
)

func (c ConditionID) String() string {
	switch c {
	case ConditionNormal:
		return "normal"
	case ConditionStunned:
		return "stunned"
	case ConditionDead:
		return "dead"
	case ConditionEliminated:
		return "eliminated"
	}
	return "unknown"
}

// Round result sentinels stored in MatchData.WinnerIndex
const (
	WinnerPending = -1
	WinnerTie     = -2
)
