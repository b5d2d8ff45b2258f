package systems

import (
	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePlayer advances one player by a tick against the terrain and the
// full roster. Interactions are resolved before the player moves, so a hit
// lands on players later in the roster before their own update runs.
// It reports whether the player has finished dying.
func UpdatePlayer(c *cfg.Config, e *donburi.Entry, t *components.TerrainData, roster []*donburi.Entry) bool {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	switch player.Condition {
	case cfg.ConditionEliminated:
		return true
	case cfg.ConditionDead:
		player.DeathTimer++
		physics.SpeedY += c.Player.Gravity * c.Player.DeathGravity
		obj.Y += physics.SpeedY
		components.Sync(obj.Object)
		if player.DeathTimer >= c.Player.DeathDuration {
			player.Condition = cfg.ConditionEliminated
			return true
		}
		return false
	}

	if player.IsStunned() {
		player.StunTimer++
		if player.StunTimer >= c.Player.StunDuration {
			player.Condition = cfg.ConditionNormal
			player.StunTimer = 0
		}
	}

	tickCooldowns(player)

	if !t.IsMorphing && !player.IsStunned() {
		controls := components.Controls.Get(e)
		handleActions(c, e, player, controls, roster)
		handleMovement(c, physics, controls)
	} else {
		physics.SpeedX = gamemath.Decay(physics.SpeedX, c.Player.LockFriction)
	}

	physics.SpeedY += c.Player.Gravity
	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY
	obj.X = gamemath.Clamp(obj.X, 0, float64(c.Stage.Width)-obj.W)

	CheckTerrainCollision(c, e, t)
	components.Sync(obj.Object)
	return false
}

func tickCooldowns(player *components.PlayerData) {
	if player.TagCooldown > 0 {
		player.TagCooldown--
	}
	if player.PunchCooldown > 0 {
		player.PunchCooldown--
	}
	if player.ThrowCooldown > 0 {
		player.ThrowCooldown--
	}
}

// handleActions fires every held interaction whose cooldown is ready against
// each other player in roster order. The cooldown is read once per action,
// so one press can land on several targets in the same tick.
func handleActions(c *cfg.Config, e *donburi.Entry, player *components.PlayerData, controls *components.ControlsData, roster []*donburi.Entry) {
	type action struct {
		id    cfg.ActionID
		ready bool
		try   func(*cfg.Config, *donburi.Entry, *donburi.Entry) bool
	}
	actions := [...]action{
		{cfg.ActionTag, player.TagCooldown == 0, TryTag},
		{cfg.ActionPunch, player.PunchCooldown == 0, TryPunch},
		{cfg.ActionThrow, player.ThrowCooldown == 0, TryThrow},
	}

	for _, a := range actions {
		if !controls.Pressed(a.id) || !a.ready {
			continue
		}
		for _, other := range roster {
			if other.Entity() == e.Entity() {
				continue
			}
			a.try(c, e, other)
		}
	}
}

func handleMovement(c *cfg.Config, physics *components.PhysicsData, controls *components.ControlsData) {
	switch {
	case controls.Pressed(cfg.ActionMoveLeft):
		physics.SpeedX = -c.Player.Speed
	case controls.Pressed(cfg.ActionMoveRight):
		physics.SpeedX = c.Player.Speed
	default:
		physics.SpeedX = gamemath.Decay(physics.SpeedX, c.Player.IdleFriction)
	}

	if controls.Pressed(cfg.ActionJump) && physics.OnGround {
		physics.SpeedY = -c.Player.JumpSpeed
		physics.OnGround = false
	}
}

// UpdatePlayers advances the roster in order and returns the roster indexes
// still alive afterwards.
func UpdatePlayers(c *cfg.Config, t *components.TerrainData, roster []*donburi.Entry) []int {
	for _, e := range roster {
		UpdatePlayer(c, e, t, roster)
	}

	alive := make([]int, 0, len(roster))
	for i, e := range roster {
		if components.Player.Get(e).IsAlive() {
			alive = append(alive, i)
		}
	}
	return alive
}
