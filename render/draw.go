// Package render draws the stage, players and HUD. It only reads world state.
package render

import (
	"image/color"

	cfg "github.com/automoto/dreamrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Layer is the only render layer; renderers draw in registration order.
const Layer = 0

func fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func strokeRect(screen *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

// panel draws a UI box with a colored border.
func panel(screen *ebiten.Image, x, y, w, h float64, border color.Color) {
	fillRect(screen, x, y, w, h, cfg.UIBackground)
	strokeRect(screen, x, y, w, h, 2, border)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, x-b.Min.X, y-b.Min.Y, clr)
}

// drawCentered draws s centered on (cx, cy).
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-b.Dx()/2-b.Min.X, cy-b.Dy()/2-b.Min.Y, clr)
}

func textWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx()
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

func shade(c color.RGBA, delta int) color.RGBA {
	adj := func(v uint8) uint8 {
		return uint8(min(max(int(v)+delta, 0), 255))
	}
	return color.RGBA{adj(c.R), adj(c.G), adj(c.B), c.A}
}

func grey(v uint8) color.RGBA {
	return color.RGBA{v, v, v, 255}
}
