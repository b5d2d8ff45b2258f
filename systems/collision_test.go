package systems

import (
	"testing"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/automoto/dreamrunner/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallIntoHoleEndsRound(t *testing.T) {
	w, c := newRound(t, 2)
	terrain := flatTerrain(t, w)
	addHole(terrain, factory.NewHole(380, 740, 100, 60))

	players := roster(t, w)
	p1, p2 := players[0], players[1]
	place(p1, 400, 600)
	standOnGround(c, p2, 900)

	match, _ := GetMatch(w)
	for tick := 0; tick < 120 && match.State == cfg.MatchStatePlaying; tick++ {
		UpdateMatch(w, c)
		if components.Player.Get(p1).IsDead() {
			break
		}
	}

	require.True(t, components.Player.Get(p1).IsDead())
	assert.True(t, components.Player.Get(p2).IsAlive())
	assert.Equal(t, cfg.MatchStateRoundOver, match.State, "round ends on the tick P1 dies")
	assert.Equal(t, 1, match.WinnerIndex)
	assert.Equal(t, []int{0, 1}, match.PlayerScores)
}

func TestLandOnPlatform(t *testing.T) {
	w, c := newRound(t, 2)
	terrain := flatTerrain(t, w)
	addPlatform(terrain, factory.NewPlatform(0, 500, 200, 20))
	p1 := roster(t, w)[0]

	place(p1, 50, 465)
	components.Physics.Get(p1).SpeedY = 5
	CheckTerrainCollision(c, p1, terrain)

	physics := components.Physics.Get(p1)
	assert.Equal(t, 460.0, components.Object.Get(p1).Y)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.True(t, physics.OnGround)
}

func TestBumpPlatformUnderside(t *testing.T) {
	w, c := newRound(t, 2)
	terrain := flatTerrain(t, w)
	addPlatform(terrain, factory.NewPlatform(0, 500, 200, 20))
	p1 := roster(t, w)[0]

	place(p1, 50, 515)
	components.Physics.Get(p1).SpeedY = -6
	CheckTerrainCollision(c, p1, terrain)

	physics := components.Physics.Get(p1)
	assert.Equal(t, 520.0, components.Object.Get(p1).Y)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.False(t, physics.OnGround)
}

func TestPlatformsDoNotBlockSideways(t *testing.T) {
	w, c := newRound(t, 2)
	terrain := flatTerrain(t, w)
	addPlatform(terrain, factory.NewPlatform(100, 500, 200, 20))
	p1 := roster(t, w)[0]

	place(p1, 85, 490)
	physics := components.Physics.Get(p1)
	physics.SpeedX, physics.SpeedY = 8, 0
	CheckTerrainCollision(c, p1, terrain)

	assert.Equal(t, 85.0, components.Object.Get(p1).X)
	assert.Equal(t, 490.0, components.Object.Get(p1).Y)
	assert.False(t, physics.OnGround)
}

func TestHoleRequiresBottomPastTop(t *testing.T) {
	w, c := newRound(t, 2)
	terrain := flatTerrain(t, w)
	addHole(terrain, factory.NewHole(380, 740, 100, 60))
	p1 := roster(t, w)[0]

	// Resting exactly on the hole's top edge does not overlap it
	place(p1, 400, 700)
	CheckTerrainCollision(c, p1, terrain)
	assert.True(t, components.Player.Get(p1).IsAlive())

	place(p1, 400, 701)
	components.Physics.Get(p1).SpeedY = 1
	CheckTerrainCollision(c, p1, terrain)
	assert.True(t, components.Player.Get(p1).IsDead())
}

func TestFallingOffStageKills(t *testing.T) {
	w, c := newRound(t, 2)
	terrain := flatTerrain(t, w)
	terrain.Platforms = terrain.Platforms[:1]
	p1 := roster(t, w)[0]

	place(p1, 400, float64(c.Stage.Height)+1)
	CheckTerrainCollision(c, p1, terrain)
	assert.True(t, components.Player.Get(p1).IsDead())
}

func TestStandsOverCut(t *testing.T) {
	platform := gamemath.Rect{X: 100, Y: 740, W: 300, H: 60}
	hole := factory.NewHole(150, 740, 80, 60)
	other := factory.NewHole(150, 600, 80, 60)

	assert.True(t, standsOverCut(gamemath.Rect{X: 160, Y: 701, W: 30, H: 40}, platform, []*resolv.Object{hole}))
	assert.False(t, standsOverCut(gamemath.Rect{X: 300, Y: 701, W: 30, H: 40}, platform, []*resolv.Object{hole}))
	assert.False(t, standsOverCut(gamemath.Rect{X: 160, Y: 701, W: 30, H: 40}, platform, []*resolv.Object{other}))
}

func TestDie(t *testing.T) {
	w, c := newRound(t, 2)
	terrain := flatTerrain(t, w)
	p1 := roster(t, w)[0]
	standOnGround(c, p1, 100)

	player := components.Player.Get(p1)
	player.Condition = cfg.ConditionStunned
	player.StunTimer = 40

	Die(c, p1, terrain.Rand)
	physics := components.Physics.Get(p1)
	assert.Equal(t, cfg.ConditionDead, player.Condition)
	assert.Equal(t, 0, player.DeathTimer)
	assert.Equal(t, 0, player.StunTimer)
	assert.Equal(t, -c.Player.DeathPopSpeed, physics.SpeedY)
	assert.GreaterOrEqual(t, physics.SpeedX, -5.0)
	assert.LessOrEqual(t, physics.SpeedX, 5.0)
	assert.False(t, physics.OnGround)

	player.DeathTimer = 12
	physics.SpeedY = 3
	Die(c, p1, terrain.Rand)
	assert.Equal(t, 12, player.DeathTimer, "dying twice is a no-op")
	assert.Equal(t, 3.0, physics.SpeedY)
}
