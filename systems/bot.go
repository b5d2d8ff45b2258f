package systems

import (
	"math"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/automoto/dreamrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateBots writes this tick's controls for every CPU player.
// Must run BEFORE UpdateMatch so the player update sees the new controls.
func UpdateBots(w donburi.World, c *cfg.Config) {
	matchEntry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStatePlaying {
		return
	}
	terrain, ok := CurrentTerrain(w)
	if !ok {
		return
	}

	roster := Roster(w, match)
	for _, e := range roster {
		if e.HasComponent(components.Bot) {
			updateBotAI(c, e, roster, terrain)
		}
	}
}

func updateBotAI(c *cfg.Config, e *donburi.Entry, roster []*donburi.Entry, t *components.TerrainData) {
	bot := components.Bot.Get(e)
	controls := components.Controls.Get(e)
	player := components.Player.Get(e)

	if player.IsDead() {
		bot.AIState = components.BotStateIdle
		controls.Clear()
		return
	}

	if bot.DecisionTimer > 0 {
		bot.DecisionTimer--
	} else {
		difficulty := c.Bot.Difficulties[bot.Difficulty]
		bot.DecisionTimer = difficulty.ReactionDelay
		decide(c, e, bot, player, roster, difficulty)
	}

	controls.Held = bot.Decision

	// Hole avoidance is a reflex and skips the reaction delay
	physics := components.Physics.Get(e)
	if physics.OnGround {
		dir := 0.0
		if controls.Held[cfg.ActionMoveLeft] {
			dir = -1
		} else if controls.Held[cfg.ActionMoveRight] {
			dir = 1
		}
		if dir != 0 && holeAhead(c, components.Object.Get(e).Object, dir, t) {
			controls.Held[cfg.ActionJump] = true
		}
	}
}

func decide(c *cfg.Config, e *donburi.Entry, bot *components.BotData, player *components.PlayerData, roster []*donburi.Entry, difficulty cfg.BotDifficultyConfig) {
	bot.Decision = [cfg.ActionCount]bool{}

	target, dist := nearestTarget(e, roster)
	if target == nil {
		bot.AIState = components.BotStateIdle
		bot.TargetIndex = -1
		return
	}
	other := components.Player.Get(target)
	bot.TargetIndex = other.Index

	self := components.Object.Get(e)
	them := components.Object.Get(target)
	dx := them.X - self.X
	dy := them.Y - self.Y

	if dx > c.Bot.ChaseDeadband {
		bot.Decision[cfg.ActionMoveRight] = true
	} else if dx < -c.Bot.ChaseDeadband {
		bot.Decision[cfg.ActionMoveLeft] = true
	}
	if dy < -c.Bot.ClimbHeight {
		bot.Decision[cfg.ActionJump] = true
	}

	bot.AIState = components.BotStateChase
	reach := difficulty.EngageRange
	switch {
	case !other.IsStunned() && dist <= c.Combat.TagRange*reach && player.TagCooldown == 0:
		bot.Decision[cfg.ActionTag] = true
		bot.AIState = components.BotStateAttack
	case other.IsStunned() && dist <= c.Combat.PunchRange*reach && player.PunchCooldown == 0:
		bot.Decision[cfg.ActionPunch] = true
		bot.AIState = components.BotStateAttack
	case other.IsStunned() && dist <= c.Combat.ThrowRange*reach && player.ThrowCooldown == 0:
		bot.Decision[cfg.ActionThrow] = true
		bot.AIState = components.BotStateAttack
	}
}

// nearestTarget returns the closest living opponent and its distance.
func nearestTarget(e *donburi.Entry, roster []*donburi.Entry) (*donburi.Entry, float64) {
	self := components.Object.Get(e)

	var nearest *donburi.Entry
	nearestDist := math.MaxFloat64
	for _, other := range roster {
		if other.Entity() == e.Entity() || components.Player.Get(other).IsDead() {
			continue
		}
		obj := components.Object.Get(other)
		dist := gamemath.Distance(self.X, self.Y, obj.X, obj.Y)
		if dist < nearestDist {
			nearestDist = dist
			nearest = other
		}
	}
	return nearest, nearestDist
}

// holeAhead probes LookAhead pixels in the walking direction, just below the feet.
func holeAhead(c *cfg.Config, obj *resolv.Object, dir float64, t *components.TerrainData) bool {
	dx := dir * c.Bot.LookAhead
	probe := gamemath.Rect{X: obj.X + dx, Y: obj.Y + 1, W: obj.W, H: obj.H}

	candidates := t.Holes
	if obj.Space != nil {
		check := obj.Check(dx, 1, tags.ResolvHole)
		if check == nil {
			return false
		}
		candidates = check.ObjectsByTags(tags.ResolvHole)
	}

	for _, hole := range candidates {
		if probe.Overlaps(components.RectOf(hole)) {
			return true
		}
	}
	return false
}
