package factory

import (
	"github.com/automoto/dreamrunner/archetypes"
	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns a human-controlled player at (x, y). Players start
// airborne and land on the first collision pass.
func CreatePlayer(w donburi.World, c *cfg.Config, index int, x, y float64) *donburi.Entry {
	return spawnPlayer(w, archetypes.Player.Spawn(w), c, index, x, y)
}

// CreateBotPlayer spawns a CPU-controlled player.
func CreateBotPlayer(w donburi.World, c *cfg.Config, index int, x, y float64, difficulty cfg.BotDifficulty) *donburi.Entry {
	player := spawnPlayer(w, archetypes.Bot.Spawn(w), c, index, x, y)
	components.Bot.SetValue(player, components.BotData{
		Difficulty:  difficulty,
		AIState:     components.BotStateIdle,
		TargetIndex: -1,
	})
	return player
}

func spawnPlayer(w donburi.World, player *donburi.Entry, c *cfg.Config, index int, x, y float64) *donburi.Entry {
	obj := resolv.NewObject(x, y, c.Player.Width, c.Player.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, c.Player.Width, c.Player.Height))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Index:     index,
		Color:     cfg.PlayerColor(index),
		Condition: cfg.ConditionNormal,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Controls.SetValue(player, components.ControlsData{})

	if space, ok := components.Space.First(w); ok {
		components.Space.Get(space).Add(obj)
	}
	return player
}
