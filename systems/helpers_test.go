package systems

import (
	"testing"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// newRound returns a world with a started round of numPlayers humans.
func newRound(t *testing.T, numPlayers int) (donburi.World, *cfg.Config) {
	t.Helper()
	c := cfg.Default()
	c.Seed = 1
	w := donburi.NewWorld()
	factory.CreateMatch(w, c)
	require.NoError(t, StartGame(w, c, numPlayers, 0))
	return w, c
}

// flatTerrain strips the round's terrain down to the bare ground.
func flatTerrain(t *testing.T, w donburi.World) *components.TerrainData {
	t.Helper()
	terrain, ok := CurrentTerrain(w)
	require.True(t, ok)
	clearLayout(terrain)
	return terrain
}

func roster(t *testing.T, w donburi.World) []*donburi.Entry {
	t.Helper()
	match, ok := GetMatch(w)
	require.True(t, ok)
	return Roster(w, match)
}

func place(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X = x
	obj.Y = y
	components.Sync(obj.Object)
}

// standOnGround puts a player at rest on the ground strip.
func standOnGround(c *cfg.Config, e *donburi.Entry, x float64) {
	place(e, x, c.GroundY()-c.Player.Height)
	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.OnGround = true
}

func hold(e *donburi.Entry, actions ...cfg.ActionID) {
	controls := components.Controls.Get(e)
	controls.Clear()
	for _, a := range actions {
		controls.Held[a] = true
	}
}
