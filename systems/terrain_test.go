package systems

import (
	"testing"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/automoto/dreamrunner/systems/factory"
	"github.com/google/go-cmp/cmp"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTerrain(c *cfg.Config, seed uint64) *components.TerrainData {
	return &components.TerrainData{
		Platforms:     []*resolv.Object{factory.NewGround(c)},
		MorphInterval: c.Terrain.BaseMorphInterval,
		Rand:          gamemath.NewRand(seed),
	}
}

func rects(objs []*resolv.Object) []gamemath.Rect {
	out := make([]gamemath.Rect, 0, len(objs))
	for _, o := range objs {
		out = append(out, components.RectOf(o))
	}
	return out
}

func TestInitialTerrainLayout(t *testing.T) {
	c := cfg.Default()
	for _, n := range []int{2, 3} {
		spawns := c.SpawnPositions(n)
		for seed := uint64(1); seed <= 300; seed++ {
			terrain := newTerrain(c, seed)
			ground := terrain.Ground()
			GenerateInitialTerrain(c, terrain, spawns)

			require.Same(t, ground, terrain.Platforms[0])
			assert.LessOrEqual(t, len(terrain.Holes), c.Terrain.InitialHoles)
			assert.Len(t, terrain.Platforms, 1+c.Terrain.InitialPlatforms)

			for _, h := range rects(terrain.Holes) {
				assert.Equal(t, c.GroundY(), h.Y)
				assert.Equal(t, c.Stage.GroundHeight, h.H)
				assert.GreaterOrEqual(t, h.W, 60.0)
				assert.LessOrEqual(t, h.W, 120.0)
				assert.GreaterOrEqual(t, h.X, 100.0)
				assert.LessOrEqual(t, h.X, float64(c.Stage.Width-200))
				for _, px := range spawns {
					overlaps := h.X < px+c.Terrain.SafeZone && h.Right() > px-c.Terrain.SafeZone
					assert.False(t, overlaps, "seed %d: hole %+v inside safe zone of %v", seed, h, px)
				}
			}

			for _, p := range rects(terrain.Platforms[1:]) {
				assert.Equal(t, 20.0, p.H)
				assert.GreaterOrEqual(t, p.W, 80.0)
				assert.LessOrEqual(t, p.W, 200.0)
				assert.GreaterOrEqual(t, p.X, 100.0)
				assert.LessOrEqual(t, p.X, float64(c.Stage.Width-200))
				assert.GreaterOrEqual(t, p.Y, 200.0)
				assert.LessOrEqual(t, p.Y, float64(c.Stage.Height-150))
			}
		}
	}
}

func TestInitialTerrainDropsUnplaceableHoles(t *testing.T) {
	c := cfg.Default()
	// Safe zones covering every legal hole position
	c.Terrain.SafeZone = float64(c.Stage.Width)

	terrain := newTerrain(c, 9)
	GenerateInitialTerrain(c, terrain, c.SpawnPositions(2))

	assert.Empty(t, terrain.Holes)
	assert.Len(t, terrain.Platforms, 1+c.Terrain.InitialPlatforms)
}

func TestMorphTerrainLayout(t *testing.T) {
	c := cfg.Default()
	for seed := uint64(1); seed <= 300; seed++ {
		terrain := newTerrain(c, seed)
		ground := terrain.Ground()
		GenerateInitialTerrain(c, terrain, c.SpawnPositions(2))
		MorphTerrain(c, terrain)

		require.Same(t, ground, terrain.Platforms[0])
		assert.Equal(t, gamemath.Rect{X: 0, Y: c.GroundY(), W: float64(c.Stage.Width), H: c.Stage.GroundHeight},
			components.RectOf(ground))
		assert.Equal(t, 1, terrain.Morphs)

		assert.GreaterOrEqual(t, len(terrain.Holes), 2)
		assert.LessOrEqual(t, len(terrain.Holes), 5)
		for _, h := range rects(terrain.Holes) {
			assert.Equal(t, c.GroundY(), h.Y)
			assert.GreaterOrEqual(t, h.W, 60.0)
			assert.LessOrEqual(t, h.W, 150.0)
			assert.GreaterOrEqual(t, h.X, 100.0)
			assert.LessOrEqual(t, h.X, float64(c.Stage.Width-200))
		}

		assert.LessOrEqual(t, len(terrain.Platforms)-1, 8)
		for _, p := range rects(terrain.Platforms[1:]) {
			assert.GreaterOrEqual(t, p.W, 30.0)
			assert.LessOrEqual(t, p.W, 250.0)
			assert.GreaterOrEqual(t, p.H, 15.0)
			assert.LessOrEqual(t, p.H, 25.0)
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.LessOrEqual(t, p.X, float64(c.Stage.Width-150))
			assert.GreaterOrEqual(t, p.Y, 150.0)
			assert.LessOrEqual(t, p.Y, float64(c.Stage.Height-150))
		}
	}
}

func TestMorphTerrainSkipsAndShrinksPlatforms(t *testing.T) {
	c := cfg.Default()
	const seeds = 300

	survived, shrunk := 0, 0
	for seed := uint64(1); seed <= seeds; seed++ {
		terrain := newTerrain(c, seed)
		MorphTerrain(c, terrain)

		platforms := rects(terrain.Platforms[1:])
		survived += len(platforms)
		for _, p := range platforms {
			// Freshly generated platforms are at least 60 wide
			if p.W < float64(c.Terrain.MorphPlatformMinWidth) {
				shrunk++
			}
		}
	}

	// 4-8 candidates per morph with one in five skipped averages 4.8 survivors
	mean := float64(survived) / seeds
	assert.InDelta(t, 4.8, mean, 0.4, "mean surviving platforms per morph")
	assert.Positive(t, shrunk, "some platforms are narrowed below the generated minimum")
	assert.Less(t, shrunk, survived/10, "shrinking is rare")
}

func TestTerrainReproducibleFromSeed(t *testing.T) {
	c := cfg.Default()
	a, b := newTerrain(c, 42), newTerrain(c, 42)
	for _, terrain := range []*components.TerrainData{a, b} {
		GenerateInitialTerrain(c, terrain, c.SpawnPositions(3))
		MorphTerrain(c, terrain)
		MorphTerrain(c, terrain)
	}

	if diff := cmp.Diff(rects(a.Holes), rects(b.Holes)); diff != "" {
		t.Errorf("holes differ (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(rects(a.Platforms), rects(b.Platforms)); diff != "" {
		t.Errorf("platforms differ (-a +b):\n%s", diff)
	}
}

func TestUpdateTerrainInterval(t *testing.T) {
	c := cfg.Default()
	cases := []struct {
		score int
		want  int
	}{
		{0, 180},
		{500, 160},
		{2500, 80},
		{3000, 60},
		{50000, 60},
	}
	for _, tc := range cases {
		terrain := newTerrain(c, 1)
		UpdateTerrain(c, terrain, tc.score)
		assert.Equal(t, tc.want, terrain.MorphInterval, "score %d", tc.score)
		assert.Equal(t, 1, terrain.MorphTimer)
	}
}

func TestUpdateTerrainTriggersMorph(t *testing.T) {
	c := cfg.Default()
	terrain := newTerrain(c, 3)
	terrain.MorphTimer = c.Terrain.BaseMorphInterval - 1

	UpdateTerrain(c, terrain, 0)

	assert.True(t, terrain.IsMorphing)
	assert.Equal(t, 0, terrain.MorphTimer)
	assert.Equal(t, 0, terrain.MorphProgress)
	assert.Equal(t, 1, terrain.Morphs)
	assert.NotEmpty(t, terrain.Holes)
}

func TestUpdateTerrainWhileMorphingOnlyAdvancesTransition(t *testing.T) {
	c := cfg.Default()
	terrain := newTerrain(c, 3)
	terrain.IsMorphing = true
	terrain.MorphProgress = 3
	// Timer past the interval would trigger a morph if it were consulted
	terrain.MorphTimer = 500

	UpdateTerrain(c, terrain, 0)

	assert.True(t, terrain.IsMorphing)
	assert.Equal(t, 4, terrain.MorphProgress)
	assert.Equal(t, 500, terrain.MorphTimer)
	assert.Equal(t, 0, terrain.Morphs)

	terrain.MorphProgress = c.Terrain.MorphDuration - 1
	UpdateTerrain(c, terrain, 0)

	assert.False(t, terrain.IsMorphing)
	assert.Equal(t, 0, terrain.MorphProgress)
	assert.Equal(t, 500, terrain.MorphTimer)
	assert.Equal(t, 0, terrain.Morphs)
}

func TestMorphWarningWindow(t *testing.T) {
	c := cfg.Default()
	terrain := newTerrain(c, 1)
	terrain.MorphTimer = 120
	assert.False(t, terrain.MorphWarning(c.Terrain.MorphWarning))
	assert.Equal(t, 60, terrain.TicksUntilMorph())

	terrain.MorphTimer = 121
	assert.True(t, terrain.MorphWarning(c.Terrain.MorphWarning))

	terrain.IsMorphing = true
	assert.False(t, terrain.MorphWarning(c.Terrain.MorphWarning))
	assert.Equal(t, 0, terrain.TicksUntilMorph())
}
