package components

import (
	"image/color"

	cfg "github.com/automoto/dreamrunner/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index     int // Roster position, also selects the spawn point and key bindings
	Color     color.RGBA
	Condition cfg.ConditionID

	DeathTimer int // Counts up while dead
	StunTimer  int // Counts up while stunned

	TagCooldown   int
	PunchCooldown int
	ThrowCooldown int
}

// IsDead is true for both the settling death animation and full elimination.
func (p *PlayerData) IsDead() bool {
	return p.Condition == cfg.ConditionDead || p.Condition == cfg.ConditionEliminated
}

func (p *PlayerData) IsStunned() bool {
	return p.Condition == cfg.ConditionStunned
}

func (p *PlayerData) IsAlive() bool {
	return !p.IsDead()
}

var Player = donburi.NewComponentType[PlayerData]()
