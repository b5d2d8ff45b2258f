package factory

import (
	"math/rand/v2"

	"github.com/automoto/dreamrunner/archetypes"
	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// NewGround builds the full-width ground strip for a stage.
func NewGround(c *cfg.Config) *resolv.Object {
	obj := NewPlatform(0, c.GroundY(), float64(c.Stage.Width), c.Stage.GroundHeight)
	obj.AddTags(tags.ResolvGround)
	return obj
}

func NewPlatform(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

func NewHole(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvHole)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// CreateTerrain spawns a terrain holding only the ground. Holes and elevated
// platforms are laid out by the terrain system.
func CreateTerrain(w donburi.World, c *cfg.Config, rng *rand.Rand) *donburi.Entry {
	terrain := archetypes.Terrain.Spawn(w)
	ground := NewGround(c)
	ground.Data = terrain
	components.Terrain.SetValue(terrain, components.TerrainData{
		Platforms:     []*resolv.Object{ground},
		MorphInterval: c.Terrain.BaseMorphInterval,
		Rand:          rng,
	})
	if space, ok := components.Space.First(w); ok {
		t := components.Terrain.Get(terrain)
		t.Space = components.Space.Get(space).Space
		t.Space.Add(ground)
	}
	return terrain
}
