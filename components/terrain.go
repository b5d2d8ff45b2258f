package components

import (
	"math/rand/v2"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TerrainData is the stage layout for one round.
type TerrainData struct {
	Platforms []*resolv.Object // Platforms[0] is always the ground
	Holes     []*resolv.Object // Always inside the ground strip

	MorphTimer    int // Ticks since the last morph or round start
	MorphInterval int
	IsMorphing    bool
	MorphProgress int
	Morphs        int // Completed regenerations this round

	Rand  *rand.Rand    // Owned by this terrain so a fixed seed reproduces the layout
	Space *resolv.Space // Optional broadphase the layout is mirrored into
}

// Ground returns the full-width ground platform.
func (t *TerrainData) Ground() *resolv.Object {
	return t.Platforms[0]
}

// TicksUntilMorph returns how long until the next regeneration, 0 while one is in progress.
func (t *TerrainData) TicksUntilMorph() int {
	if t.IsMorphing {
		return 0
	}
	return max(t.MorphInterval-t.MorphTimer, 0)
}

// MorphWarning reports whether the morph is close enough to warn players.
func (t *TerrainData) MorphWarning(window int) bool {
	return !t.IsMorphing && t.MorphTimer > t.MorphInterval-window
}

// ShakeLevel counts the ticks spent inside the pre-morph shake window, 0
// outside it and while morphing.
func (t *TerrainData) ShakeLevel(window int) int {
	if t.IsMorphing {
		return 0
	}
	return max(window-t.TicksUntilMorph(), 0)
}

var Terrain = donburi.NewComponentType[TerrainData]()
