package archetypes

import (
	"github.com/automoto/dreamrunner/components"
	"github.com/automoto/dreamrunner/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Controls,
	)
	Bot = newArchetype(
		tags.Player,
		tags.Bot,
		components.Player,
		components.Object,
		components.Physics,
		components.Controls,
		components.Bot,
	)
	Terrain = newArchetype(
		tags.Terrain,
		components.Terrain,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
		components.Menu,
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	n := len(a.components)
	return w.Entry(w.Create(append(a.components[:n:n], cs...)...))
}
