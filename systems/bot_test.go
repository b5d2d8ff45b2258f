package systems

import (
	"testing"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// newBotRound starts a 2 player round where slot 1 is a CPU player on flat ground.
func newBotRound(t *testing.T) (donburi.World, *cfg.Config, *components.TerrainData, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	c := cfg.Default()
	c.Seed = 11
	w := donburi.NewWorld()
	factory.CreateMatch(w, c)
	require.NoError(t, StartGame(w, c, 2, 1))

	terrain := flatTerrain(t, w)
	players := roster(t, w)
	require.True(t, players[1].HasComponent(components.Bot))
	return w, c, terrain, players[0], players[1]
}

func TestBotsIdleOutsidePlay(t *testing.T) {
	c := cfg.Default()
	w := donburi.NewWorld()
	factory.CreateMatch(w, c)
	assert.NotPanics(t, func() { UpdateBots(w, c) })
}

func TestBotChasesNearestPlayer(t *testing.T) {
	w, c, _, human, bot := newBotRound(t)
	standOnGround(c, human, 100)
	standOnGround(c, bot, 700)

	UpdateBots(w, c)

	data := components.Bot.Get(bot)
	controls := components.Controls.Get(bot)
	assert.Equal(t, components.BotStateChase, data.AIState)
	assert.Equal(t, 0, data.TargetIndex)
	assert.True(t, controls.Pressed(cfg.ActionMoveLeft))
	assert.False(t, controls.Pressed(cfg.ActionMoveRight))
	assert.False(t, controls.Pressed(cfg.ActionTag))
	assert.Equal(t, c.Bot.Difficulties[cfg.BotDifficultyNormal].ReactionDelay, data.DecisionTimer)
}

func TestBotKeepsDecisionDuringReactionDelay(t *testing.T) {
	w, c, _, human, bot := newBotRound(t)
	standOnGround(c, human, 100)
	standOnGround(c, bot, 700)
	UpdateBots(w, c)

	// Target moved behind the bot, but it has not reacted yet
	standOnGround(c, human, 1000)
	UpdateBots(w, c)
	assert.True(t, components.Controls.Get(bot).Pressed(cfg.ActionMoveLeft))
}

func TestBotTagsThenPunchesStunnedTarget(t *testing.T) {
	w, c, _, human, bot := newBotRound(t)
	standOnGround(c, human, 500)
	standOnGround(c, bot, 530)

	UpdateBots(w, c)
	controls := components.Controls.Get(bot)
	assert.Equal(t, components.BotStateAttack, components.Bot.Get(bot).AIState)
	assert.True(t, controls.Pressed(cfg.ActionTag))

	components.Player.Get(human).Condition = cfg.ConditionStunned
	components.Bot.Get(bot).DecisionTimer = 0
	UpdateBots(w, c)
	assert.False(t, controls.Pressed(cfg.ActionTag))
	assert.True(t, controls.Pressed(cfg.ActionPunch))
}

func TestBotJumpsOverHole(t *testing.T) {
	w, c, terrain, human, bot := newBotRound(t)
	standOnGround(c, human, 1000)
	standOnGround(c, bot, 300)
	addHole(terrain, factory.NewHole(350, c.GroundY(), 80, c.Stage.GroundHeight))

	UpdateBots(w, c)

	controls := components.Controls.Get(bot)
	assert.True(t, controls.Pressed(cfg.ActionMoveRight))
	assert.True(t, controls.Pressed(cfg.ActionJump))
}

func TestHoleAheadWithoutSpace(t *testing.T) {
	c := cfg.Default()
	terrain := newTerrain(c, 1)
	addHole(terrain, factory.NewHole(350, c.GroundY(), 80, c.Stage.GroundHeight))
	obj := factory.NewPlatform(300, c.GroundY()-c.Player.Height, c.Player.Width, c.Player.Height)

	assert.True(t, holeAhead(c, obj, 1, terrain))
	assert.False(t, holeAhead(c, obj, -1, terrain))
}

func TestDeadBotReleasesControls(t *testing.T) {
	w, c, terrain, human, bot := newBotRound(t)
	standOnGround(c, human, 100)
	standOnGround(c, bot, 700)
	UpdateBots(w, c)
	require.True(t, components.Controls.Get(bot).Pressed(cfg.ActionMoveLeft))

	Die(c, bot, terrain.Rand)
	UpdateBots(w, c)
	assert.Equal(t, components.ControlsData{}, *components.Controls.Get(bot))
	assert.Equal(t, components.BotStateIdle, components.Bot.Get(bot).AIState)
}
