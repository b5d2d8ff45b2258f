package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/fonts"
	"github.com/automoto/dreamrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayers draws every roster player in update order.
func (r *Renderer) DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State == cfg.MatchStateStartMenu {
		return
	}

	for _, entry := range systems.Roster(e.World, match) {
		r.drawPlayer(screen, entry)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, e *donburi.Entry) {
	player := components.Player.Get(e)
	o := components.Object.Get(e)

	if player.IsDead() {
		drawDeadPlayer(screen, player, o)
		return
	}

	body := player.Color
	if player.IsStunned() {
		phase := float64(player.StunTimer) * math.Pi / float64(max(cfg.Animation.StunPulseTicks, 1))
		pulse := math.Abs(math.Sin(phase))*0.5 + 0.5
		body = lerpColor(grey(128), player.Color, pulse)
	}

	fillRect(screen, o.X+2, o.Y+2, o.W, o.H, shade(player.Color, -60))
	fillRect(screen, o.X, o.Y, o.W, o.H, body)
	fillRect(screen, o.X+2, o.Y+2, o.W-4, o.H/2-2, shade(body, 40))

	// Legs and shoes
	legs := shade(body, -30)
	fillRect(screen, o.X+8, o.Y+o.H, 6, 8, legs)
	fillRect(screen, o.X+16, o.Y+o.H, 6, 8, legs)
	fillRect(screen, o.X+6, o.Y+o.H+6, 10, 4, cfg.Black)
	fillRect(screen, o.X+14, o.Y+o.H+6, 10, 4, cfg.Black)

	eyeY := float32(o.Y + 10)
	eyes := [2]float32{float32(o.X + 8), float32(o.X + 22)}
	for _, ex := range eyes {
		vector.FillCircle(screen, ex, eyeY, 5, cfg.White, true)
	}

	if player.IsStunned() {
		angle := float64(player.StunTimer*15%360) * math.Pi / 180
		for i := 0; i < 3; i++ {
			r := float64(2 + i)
			a := angle + float64(i)*2*math.Pi/3
			for _, ex := range eyes {
				vector.FillCircle(screen, ex+float32(r*math.Cos(a)), eyeY+float32(r*math.Sin(a)), 1, cfg.Black, false)
			}
		}
		r.drawStunCountdown(screen, player, o)
	} else {
		for _, ex := range eyes {
			vector.FillCircle(screen, ex, eyeY, 3, cfg.Black, true)
			vector.FillCircle(screen, ex+1, eyeY-1, 1, cfg.White, false)
		}
	}

	strokeRect(screen, o.X, o.Y, o.W, o.H, 2, cfg.Black)
}

func (r *Renderer) drawStunCountdown(screen *ebiten.Image, player *components.PlayerData, o *components.ObjectData) {
	tps := max(r.config.Stage.TickRate, 1)
	left := (r.config.Player.StunDuration-player.StunTimer)/tps + 1
	drawCentered(screen, fmt.Sprintf("%d", left), fonts.Small.Get(), int(o.X+o.W/2), int(o.Y-14), cfg.Yellow)
}

func drawDeadPlayer(screen *ebiten.Image, player *components.PlayerData, o *components.ObjectData) {
	blink := player.DeathTimer%(2*cfg.Animation.DeathBlinkTicks) < cfg.Animation.DeathBlinkTicks

	outer, inner := cfg.Orange, color.RGBA{255, 220, 180, 255}
	if blink {
		outer, inner = cfg.Red, color.RGBA{255, 200, 200, 255}
	}

	// Orbiting sparks
	rotation := float64(player.DeathTimer*10%360) * math.Pi / 180
	size := float32(3 - (player.DeathTimer%20)/7)
	if size > 0 {
		for i := 0; i < 8; i++ {
			a := rotation + float64(i)*math.Pi/4
			px := o.X + 15 + 20*math.Cos(a)
			py := o.Y + 20 + 15*math.Sin(a)
			vector.FillCircle(screen, float32(px), float32(py), size, cfg.Orange, false)
		}
	}

	fillRect(screen, o.X, o.Y, o.W, o.H, outer)
	fillRect(screen, o.X+3, o.Y+3, o.W-6, o.H-6, inner)

	// X eyes
	for _, ex := range [2]float64{o.X + 6, o.X + 20} {
		vector.StrokeLine(screen, float32(ex), float32(o.Y+8), float32(ex+4), float32(o.Y+12), 3, cfg.Black, false)
		vector.StrokeLine(screen, float32(ex+4), float32(o.Y+8), float32(ex), float32(o.Y+12), 3, cfg.Black, false)
	}
	strokeRect(screen, o.X, o.Y, o.W, o.H, 3, cfg.Black)
}
