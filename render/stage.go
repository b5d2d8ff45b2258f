package render

import (
	"image/color"
	"math"
	"time"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/automoto/dreamrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// updateMorphFade restarts the platform fade-in whenever the layout regenerates.
func (r *Renderer) updateMorphFade(t *components.TerrainData) {
	if t != r.fadeTerrain || t.Morphs != r.fadeMorphs {
		r.fadeTerrain = t
		r.fadeMorphs = t.Morphs
		r.morphFade = gween.New(0, 1, cfg.Animation.MorphFadeSecs, ease.OutQuad)
	}
	if r.morphFade == nil {
		r.platformFade = 1
		return
	}
	current, finished := r.morphFade.Update(r.frameDelta())
	r.platformFade = current
	if finished {
		r.morphFade = nil
		r.platformFade = 1
	}
}

// shakeIntensity grows as the next morph approaches.
func (r *Renderer) shakeIntensity(t *components.TerrainData) float64 {
	return float64(t.ShakeLevel(r.config.Terrain.ShakeWindow)) * cfg.Animation.ShakeScale
}

func (r *Renderer) shakeOffset(intensity float64) (float64, float64) {
	if intensity <= 0 {
		return 0, 0
	}
	n := int(intensity)
	return float64(gamemath.RandInt(r.jitter, -n, n)), float64(gamemath.RandInt(r.jitter, -n/2, n/2))
}

// DrawTerrain draws the ground, elevated platforms and holes.
func (r *Renderer) DrawTerrain(e *ecs.ECS, screen *ebiten.Image) {
	t, ok := systems.CurrentTerrain(e.World)
	if !ok {
		return
	}
	r.updateMorphFade(t)
	intensity := r.shakeIntensity(t)

	for i, p := range t.Platforms {
		dx, dy := r.shakeOffset(intensity)
		if i == 0 {
			r.drawGround(screen, p, dx, dy)
		} else {
			drawPlatform(screen, p, dx, dy, r.platformFade)
		}
	}

	glow := math.Abs(math.Sin(float64(time.Now().UnixMilli())*0.005))*100 + 100
	for _, h := range t.Holes {
		dx, dy := r.shakeOffset(intensity)
		r.drawHole(screen, h, dx, dy, glow)
	}
}

func (r *Renderer) drawGround(screen *ebiten.Image, p *resolv.Object, dx, dy float64) {
	x, y := p.X+dx, p.Y+dy
	rows := int(p.H)
	for row := 0; row < rows; row++ {
		fillRect(screen, x, y+float64(row), p.W, 1, lerpColor(cfg.Green, cfg.DarkGreen, float64(row)/p.H))
	}

	// Grass tufts
	for gx := x; gx < x+p.W; gx += 4 {
		height := float32(gamemath.RandInt(r.jitter, 3, 6))
		tuft := shade(cfg.Green, gamemath.RandInt(r.jitter, -20, 20))
		vector.StrokeLine(screen, float32(gx), float32(y), float32(gx), float32(y)-height, 2, tuft, false)
	}
	strokeRect(screen, x, y, p.W, p.H, 2, cfg.Black)
}

func drawPlatform(screen *ebiten.Image, p *resolv.Object, dx, dy float64, alpha float32) {
	x, y := p.X+dx, p.Y+dy
	shadow := shade(cfg.PlatformGray, -40)

	fillRect(screen, x+2, y+2, p.W, p.H, fade(shadow, alpha))
	fillRect(screen, x, y, p.W, p.H, fade(cfg.PlatformGray, alpha))
	fillRect(screen, x, y, p.W, 4, fade(cfg.PlatformHighlight, alpha))
	for ly := y + 5; ly < y+p.H-2; ly += 3 {
		vector.StrokeLine(screen, float32(x+2), float32(ly), float32(x+p.W-2), float32(ly), 1, fade(shadow, alpha), false)
	}
	strokeRect(screen, x, y, p.W, p.H, 2, fade(cfg.Black, alpha))
}

func (r *Renderer) drawHole(screen *ebiten.Image, h *resolv.Object, dx, dy, glow float64) {
	x, y := h.X+dx, h.Y+dy
	fillRect(screen, x, y, h.W, h.H, cfg.Black)

	red := glow
	for i := 0.0; i < 4; i++ {
		strokeRect(screen, x-i, y-i, h.W+2*i, h.H+2*i, 2, color.RGBA{uint8(red), 0, 0, 255})
		red = max(red-25, 0)
	}

	for range 3 {
		px := h.X + float64(gamemath.RandInt(r.jitter, 0, int(h.W)))
		py := h.Y + float64(gamemath.RandInt(r.jitter, 0, int(h.H)/2))
		size := float32(gamemath.RandInt(r.jitter, 1, 3))
		ember := color.RGBA{255, uint8(gamemath.RandInt(r.jitter, 100, 200)), 0, 255}
		vector.FillCircle(screen, float32(px), float32(py), size, ember, false)
	}
}
