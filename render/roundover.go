package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/fonts"
	"github.com/automoto/dreamrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// DrawRoundOver draws the results box while a round is over.
func (r *Renderer) DrawRoundOver(e *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStateRoundOver {
		r.overlayRound = 0
		return
	}

	if r.overlayRound != match.Round {
		r.overlayRound = match.Round
		r.overlayFade = gween.New(0, cfg.Animation.OverlayAlpha, cfg.Animation.OverlayFadeSecs, ease.OutCubic)
	}
	if r.overlayFade != nil {
		var finished bool
		r.overlayAlpha, finished = r.overlayFade.Update(r.frameDelta())
		if finished {
			r.overlayFade = nil
		}
	}

	width, height := float64(r.config.Stage.Width), float64(r.config.Stage.Height)
	cx, cy := int(width/2), int(height/2)
	fillRect(screen, 0, 0, width, height, fade(cfg.Black, r.overlayAlpha))

	fillRect(screen, width/2-200, height/2-150, 400, 300, cfg.UIBackground)
	strokeRect(screen, width/2-200, height/2-150, 400, 300, 4, cfg.WarningRed)

	large := fonts.Large.Get()
	medium := fonts.Normal.Get()
	small := fonts.Small.Get()

	for _, off := range [4][2]int{{2, 2}, {-2, -2}, {2, -2}, {-2, 2}} {
		drawCentered(screen, "GAME OVER", large, cx+off[0], cy-100+off[1], color.RGBA{100, 0, 0, 255})
	}
	drawCentered(screen, "GAME OVER", large, cx, cy-100, cfg.WarningRed)

	if winner, ok := match.RoundWinner(); ok {
		drawCentered(screen, fmt.Sprintf("Player %d Wins!", winner+1), medium, cx, cy-50, cfg.SuccessGreen)
	} else if match.WinnerIndex == cfg.WinnerTie {
		drawCentered(screen, "It's a Tie!", medium, cx, cy-50, cfg.Yellow)
	}

	drawCentered(screen, fmt.Sprintf("Final Time: %d", match.Score/10), medium, cx, cy, cfg.UIText)
	for i, wins := range match.PlayerScores {
		drawCentered(screen, fmt.Sprintf("Player %d: %d wins", i+1, wins), medium, cx, cy+30+i*25, cfg.PlayerColor(i))
	}

	offset := match.NumPlayers * 15
	countdown := fmt.Sprintf("Next round in %d seconds...", systems.SecondsUntilNextRound(r.config, match))
	drawCentered(screen, countdown, medium, cx, cy+60+offset, cfg.Yellow)
	drawCentered(screen, "Press R for Next Round or ESC for Menu", small, cx, cy+90+offset, cfg.White)
}
