package render

import (
	"math"
	"time"

	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

type star struct {
	x, y       float32
	brightness float64
	size       float32
}

var (
	skyImage *ebiten.Image
	stars    []star
	skyOp    = &ebiten.DrawImageOptions{}
)

// DrawBackground draws the night sky gradient and twinkling stars.
func DrawBackground(_ *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if skyImage == nil || skyImage.Bounds().Dx() != w || skyImage.Bounds().Dy() != h {
		buildSky(w, h)
	}

	now := time.Now().UnixMilli()

	// Slow brightness drift over the whole sky
	timeFactor := float32(math.Sin(float64(now)*0.0005)*0.3 + 0.7)
	skyOp.ColorScale.Reset()
	skyOp.ColorScale.Scale(timeFactor, timeFactor, timeFactor, 1)
	screen.DrawImage(skyImage, skyOp)

	for i, s := range stars {
		twinkle := math.Abs(math.Sin(float64(now+int64(i)*100)*0.01))*0.5 + 0.5
		b := uint8(s.brightness * twinkle)
		if s.size > 2 {
			vector.FillCircle(screen, s.x, s.y, s.size+2, grey(b/3), true)
		}
		vector.FillCircle(screen, s.x, s.y, s.size, grey(b), true)
	}
}

func buildSky(w, h int) {
	skyImage = ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		ratio := float64(y) / float64(h)
		fillRect(skyImage, 0, float64(y), float64(w), 1, lerpColor(cfg.MidnightBlue, cfg.LightBlue, ratio))
	}

	// Fixed seed keeps the sky identical between frames
	rng := gamemath.NewRand(cfg.Animation.StarSeed)
	stars = make([]star, cfg.Animation.StarCount)
	for i := range stars {
		stars[i] = star{
			x:          float32(gamemath.RandInt(rng, 0, w)),
			y:          float32(gamemath.RandInt(rng, 0, h/2)),
			brightness: float64(gamemath.RandInt(rng, 150, 255)),
			size:       float32(gamemath.RandInt(rng, 1, 3)),
		}
	}
}
