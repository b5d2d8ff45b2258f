package systems

import (
	"math/rand/v2"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CheckTerrainCollision resolves a player's box against the terrain after
// it has moved. Touching a hole from above kills the player and skips the
// platform pass. Platforms block vertically only.
func CheckTerrainCollision(c *cfg.Config, e *donburi.Entry, t *components.TerrainData) {
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	physics.OnGround = false
	box := obj.Rect()

	for _, hole := range t.Holes {
		hr := components.RectOf(hole)
		if box.Overlaps(hr) && box.Bottom() >= hr.Y {
			Die(c, e, t.Rand)
			return
		}
	}

	for _, platform := range t.Platforms {
		pr := components.RectOf(platform)
		if !box.Overlaps(pr) {
			continue
		}
		if standsOverCut(box, pr, t.Holes) {
			continue
		}

		if physics.SpeedY > 0 {
			obj.Y = pr.Y - obj.H
			physics.SpeedY = 0
			physics.OnGround = true
		} else if physics.SpeedY < 0 {
			obj.Y = pr.Bottom()
			physics.SpeedY = 0
		}
	}

	if obj.Y > float64(c.Stage.Height) {
		Die(c, e, t.Rand)
	}
}

// standsOverCut reports whether the platform is cut by a hole at its own
// level and the box is horizontally inside that hole.
func standsOverCut(box, platform gamemath.Rect, holes []*resolv.Object) bool {
	for _, hole := range holes {
		hr := components.RectOf(hole)
		if hr.Y != platform.Y || !hr.OverlapsX(platform) {
			continue
		}
		if box.OverlapsX(hr) {
			return true
		}
	}
	return false
}

// Die starts the death animation: a small random sideways drift and an
// upward pop. Calling it on a dead player does nothing.
func Die(c *cfg.Config, e *donburi.Entry, rng *rand.Rand) {
	player := components.Player.Get(e)
	if player.IsDead() {
		return
	}
	physics := components.Physics.Get(e)

	player.Condition = cfg.ConditionDead
	player.DeathTimer = 0
	player.StunTimer = 0
	physics.SpeedX = float64(gamemath.RandInt(rng, -c.Player.DeathDriftMax, c.Player.DeathDriftMax))
	physics.SpeedY = -c.Player.DeathPopSpeed
	physics.OnGround = false
}
