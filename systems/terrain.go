package systems

import (
	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/logger"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/automoto/dreamrunner/systems/factory"
	"github.com/solarlune/resolv"
)

// GenerateInitialTerrain resets the layout to the ground plus the round-start
// holes and platforms. Holes never land within the safe zone of a spawn x.
// A hole that cannot be placed within the attempt budget is dropped.
func GenerateInitialTerrain(c *cfg.Config, t *components.TerrainData, spawnXs []float64) {
	tc := &c.Terrain
	clearLayout(t)

	groundY := c.GroundY()
	for range tc.InitialHoles {
		for attempt := 0; attempt < tc.HolePlacementAttempts; attempt++ {
			x := float64(gamemath.RandInt(t.Rand, tc.HoleMinX, c.Stage.Width-tc.HoleMaxXInset))
			w := float64(gamemath.RandInt(t.Rand, tc.InitialHoleMinWidth, tc.InitialHoleMaxWidth))

			if overlapsSafeZone(x, w, spawnXs, tc.SafeZone) {
				continue
			}
			addHole(t, factory.NewHole(x, groundY, w, c.Stage.GroundHeight))
			break
		}
	}

	for range tc.InitialPlatforms {
		x := gamemath.RandInt(t.Rand, tc.InitialPlatformMinX, c.Stage.Width-tc.InitialPlatformMaxXInset)
		y := gamemath.RandInt(t.Rand, tc.InitialPlatformMinY, c.Stage.Height-tc.InitialPlatformMaxYInset)
		w := gamemath.RandInt(t.Rand, tc.InitialPlatformMinWidth, tc.InitialPlatformMaxWidth)
		addPlatform(t, factory.NewPlatform(float64(x), float64(y), float64(w), float64(tc.InitialPlatformHeight)))
	}

	logger.Debugf("terrain generated: %d holes, %d platforms", len(t.Holes), len(t.Platforms)-1)
}

func overlapsSafeZone(x, w float64, spawnXs []float64, zone float64) bool {
	for _, px := range spawnXs {
		if x < px+zone && x+w > px-zone {
			return true
		}
	}
	return false
}

// UpdateTerrain advances the morph schedule by one tick. While a morph is in
// progress only the transition advances; the schedule itself is paused.
func UpdateTerrain(c *cfg.Config, t *components.TerrainData, score int) {
	tc := &c.Terrain
	if t.IsMorphing {
		t.MorphProgress++
		if t.MorphProgress >= tc.MorphDuration {
			t.IsMorphing = false
			t.MorphProgress = 0
		}
		return
	}

	t.MorphTimer++
	t.MorphInterval = gamemath.MorphInterval(score, tc.BaseMorphInterval, tc.DifficultyCut,
		tc.DifficultyStep, tc.MaxDifficulty, tc.MinMorphInterval)

	if t.MorphTimer >= t.MorphInterval {
		StartMorph(c, t)
		t.MorphTimer = 0
	}
}

// StartMorph freezes player input for the transition window and regenerates the layout.
func StartMorph(c *cfg.Config, t *components.TerrainData) {
	t.IsMorphing = true
	t.MorphProgress = 0
	MorphTerrain(c, t)
}

// MorphTerrain regenerates holes and elevated platforms around the kept
// ground. Player positions are not consulted.
func MorphTerrain(c *cfg.Config, t *components.TerrainData) {
	tc := &c.Terrain
	clearLayout(t)

	groundY := c.GroundY()
	numHoles := gamemath.RandInt(t.Rand, tc.MorphMinHoles, tc.MorphMaxHoles)
	for range numHoles {
		x := gamemath.RandInt(t.Rand, tc.HoleMinX, c.Stage.Width-tc.HoleMaxXInset)
		w := gamemath.RandInt(t.Rand, tc.MorphHoleMinWidth, tc.MorphHoleMaxWidth)
		addHole(t, factory.NewHole(float64(x), groundY, float64(w), c.Stage.GroundHeight))
	}

	numPlatforms := gamemath.RandInt(t.Rand, tc.MorphMinPlatforms, tc.MorphMaxPlatforms)
	for range numPlatforms {
		x := gamemath.RandInt(t.Rand, 0, c.Stage.Width-tc.MorphPlatformMaxXInset)
		y := gamemath.RandInt(t.Rand, tc.MorphPlatformMinY, c.Stage.Height-tc.MorphPlatformMaxYInset)
		w := gamemath.RandInt(t.Rand, tc.MorphPlatformMinWidth, tc.MorphPlatformMaxWidth)
		h := gamemath.RandInt(t.Rand, tc.MorphPlatformMinHeight, tc.MorphPlatformMaxHeight)

		if gamemath.Chance(t.Rand, tc.PlatformSkipChance) {
			continue
		}
		addPlatform(t, factory.NewPlatform(float64(x), float64(y), float64(w), float64(h)))
	}

	for _, p := range t.Platforms[1:] {
		if gamemath.Chance(t.Rand, tc.PlatformShrinkChance) {
			shrink := gamemath.RandInt(t.Rand, tc.PlatformShrinkMin, tc.PlatformShrinkMax)
			resizeWidth(p, max(p.W-float64(shrink), float64(tc.PlatformMinWidth)))
		}
	}

	t.Morphs++
	logger.Debugf("terrain morph %d: %d holes, %d platforms", t.Morphs, len(t.Holes), len(t.Platforms)-1)
}

// clearLayout drops everything but the ground.
func clearLayout(t *components.TerrainData) {
	if t.Space != nil {
		t.Space.Remove(t.Holes...)
		t.Space.Remove(t.Platforms[1:]...)
	}
	t.Platforms = []*resolv.Object{t.Ground()}
	t.Holes = nil
}

func addHole(t *components.TerrainData, hole *resolv.Object) {
	t.Holes = append(t.Holes, hole)
	if t.Space != nil {
		t.Space.Add(hole)
	}
}

func addPlatform(t *components.TerrainData, platform *resolv.Object) {
	t.Platforms = append(t.Platforms, platform)
	if t.Space != nil {
		t.Space.Add(platform)
	}
}

func resizeWidth(obj *resolv.Object, w float64) {
	obj.W = w
	obj.SetShape(resolv.NewRectangle(0, 0, w, obj.H))
	components.Sync(obj)
}
