package render

import (
	"math/rand/v2"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/tanema/gween"
)

// Renderer draws a session's world with that session's config. Each scene
// owns one, along with its transition state.
type Renderer struct {
	config *cfg.Config

	// Visual jitter only, never the simulation's generator
	jitter *rand.Rand

	morphFade    *gween.Tween
	fadeTerrain  *components.TerrainData
	fadeMorphs   int
	platformFade float32

	overlayFade  *gween.Tween
	overlayRound int
	overlayAlpha float32
}

func New(c *cfg.Config) *Renderer {
	return &Renderer{
		config:       c,
		jitter:       gamemath.NewRand(7),
		platformFade: 1,
	}
}

func (r *Renderer) frameDelta() float32 {
	return 1 / float32(max(r.config.Stage.TickRate, 1))
}
