package systems

import (
	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Interactions measure distance between the top-left corners of the two boxes.
func separation(actor, target *donburi.Entry) float64 {
	a := components.Object.Get(actor)
	b := components.Object.Get(target)
	return gamemath.Distance(a.X, a.Y, b.X, b.Y)
}

// TryTag stuns a target in range that is neither dead nor already stunned.
func TryTag(c *cfg.Config, actor, target *donburi.Entry) bool {
	other := components.Player.Get(target)
	if separation(actor, target) > c.Combat.TagRange || other.IsDead() || other.IsStunned() {
		return false
	}

	other.Condition = cfg.ConditionStunned
	other.StunTimer = 0
	components.Player.Get(actor).TagCooldown = c.Combat.TagCooldown
	return true
}

// TryPunch knocks a living target away from the actor. Knockback is added
// to the target's velocity and always carries a small upward component.
func TryPunch(c *cfg.Config, actor, target *donburi.Entry) bool {
	other := components.Player.Get(target)
	if separation(actor, target) > c.Combat.PunchRange || other.IsDead() {
		return false
	}

	a := components.Object.Get(actor)
	b := components.Object.Get(target)
	dirX, dirY := gamemath.UnitVector(a.X, a.Y, b.X, b.Y)
	kx, ky := gamemath.LaunchVelocity(dirX, dirY, c.Combat.PunchForce, c.Combat.PunchLift)

	physics := components.Physics.Get(target)
	physics.SpeedX += kx
	physics.SpeedY += ky

	components.Player.Get(actor).PunchCooldown = c.Combat.PunchCooldown
	return true
}

// TryThrow launches a living target toward the stage center. The launch
// replaces the target's velocity and lifts it off the ground.
func TryThrow(c *cfg.Config, actor, target *donburi.Entry) bool {
	other := components.Player.Get(target)
	if separation(actor, target) > c.Combat.ThrowRange || other.IsDead() {
		return false
	}

	b := components.Object.Get(target)
	cx, cy := c.StageCenter()
	dirX, dirY := gamemath.UnitVector(b.X, b.Y, cx, cy)
	vx, vy := gamemath.LaunchVelocity(dirX, dirY, c.Combat.ThrowForce, c.Combat.ThrowLift)

	physics := components.Physics.Get(target)
	physics.SpeedX = vx
	physics.SpeedY = vy
	physics.OnGround = false

	components.Player.Get(actor).ThrowCooldown = c.Combat.ThrowCooldown
	return true
}
