package components

import (
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/yohamta/donburi"
)

// BotAIState is the CPU player's current intent
type BotAIState int

const (
	BotStateIdle BotAIState = iota
	BotStateChase
	BotStateAttack
)

// BotData marks a roster slot as CPU controlled
type BotData struct {
	Difficulty    cfg.BotDifficulty
	AIState       BotAIState
	DecisionTimer int // Ticks until the next decision
	TargetIndex   int // Roster index of the current target, -1 for none
	Decision      [cfg.ActionCount]bool
}

var Bot = donburi.NewComponentType[BotData]()
