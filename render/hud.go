package render

import (
	"fmt"
	"time"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/fonts"
	"github.com/automoto/dreamrunner/input"
	"github.com/automoto/dreamrunner/sound"
	"github.com/automoto/dreamrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin   = 5
	shiftBarW   = 220
	shiftBarH   = 15
	shiftBarPad = 15
)

// DrawHUD renders the round timer, difficulty, win tallies, music status,
// controls help and the morph countdown.
func (r *Renderer) DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State == cfg.MatchStateStartMenu {
		return
	}
	width := float64(r.config.Stage.Width)
	face := fonts.Normal.Get()

	panel(screen, hudMargin, 5, 150, 35, cfg.SuccessGreen)
	drawText(screen, fmt.Sprintf("Time: %d", match.Score/10), face, 10, 12, cfg.UIText)

	panel(screen, hudMargin, 45, 120, 35, cfg.Purple)
	drawText(screen, fmt.Sprintf("Level: %d", systems.DifficultyLevel(r.config, match)), face, 10, 52, cfg.UIText)

	for i, wins := range match.PlayerScores {
		y := 85 + float64(i)*40
		panel(screen, hudMargin, y, 130, 35, cfg.PlayerColor(i))
		drawText(screen, fmt.Sprintf("P%d: %d", i+1, wins), face, 10, int(y)+7, cfg.UIText)
	}

	drawMusicStatus(screen, components.Settings.Get(matchEntry).MusicEnabled && sound.MusicPlaying(), width)
	drawControlsHelp(screen, match.NumPlayers, width)

	if t, ok := systems.CurrentTerrain(e.World); ok {
		drawShiftBar(screen, t, width)
		if t.MorphWarning(r.config.Terrain.MorphWarning) && time.Now().UnixMilli()/cfg.Animation.WarningFlashMs%2 == 1 {
			fillRect(screen, width/2-100, 40, 200, 40, cfg.WarningRed)
			strokeRect(screen, width/2-100, 40, 200, 40, 3, cfg.White)
			drawCentered(screen, "TERRAIN SHIFT!", fonts.Normal.Get(), int(width/2), 60, cfg.White)
		}
	}

	panel(screen, width-160, 40, 150, 35, cfg.Orange)
	drawText(screen, fmt.Sprintf("Score: %d", match.Score), face, int(width)-155, 47, cfg.UIText)
}

func drawMusicStatus(screen *ebiten.Image, playing bool, width float64) {
	border, status := cfg.WarningRed, "♪ Music: OFF"
	if playing {
		border, status = cfg.SuccessGreen, "♪ Music: ON"
	}
	panel(screen, width-160, 80, 150, 25, border)
	drawText(screen, status, fonts.Small.Get(), int(width)-155, 84, cfg.UIText)
	drawText(screen, "Press M to toggle", fonts.Small.Get(), int(width)-140, 108, cfg.UIText)
}

func drawControlsHelp(screen *ebiten.Image, numPlayers int, width float64) {
	face := fonts.Small.Get()
	lines := make([]string, 0, numPlayers)
	widest := 0
	for i := range numPlayers {
		line := input.ControlSchemeHelp[cfg.ControlSchemeForSlot(i)]
		lines = append(lines, line)
		widest = max(widest, textWidth(face, line))
	}

	boxW := float64(widest + 20)
	x := (width - boxW) / 2
	for i, line := range lines {
		y := 85 + float64(i)*25
		panel(screen, x, y, boxW, 25, cfg.PlayerColor(i))
		drawCentered(screen, line, face, int(width/2), int(y)+12, cfg.UIText)
	}
}

func drawShiftBar(screen *ebiten.Image, t *components.TerrainData, width float64) {
	x := width - shiftBarW - shiftBarPad
	y := float64(shiftBarPad)

	fillRect(screen, x-5, y-5, shiftBarW+10, shiftBarH+10, cfg.UIBackground)
	strokeRect(screen, x-5, y-5, shiftBarW+10, shiftBarH+10, 2, cfg.WarningRed)
	fillRect(screen, x, y, shiftBarW, shiftBarH, cfg.Black)

	progress := 0.0
	if t.MorphInterval > 0 {
		progress = float64(t.TicksUntilMorph()) / float64(t.MorphInterval)
	}
	barColor := cfg.WarningRed
	switch {
	case progress > 0.7:
		barColor = cfg.SuccessGreen
	case progress > 0.3:
		barColor = cfg.Yellow
	}
	fillRect(screen, x, y, shiftBarW*progress, shiftBarH, barColor)
	drawText(screen, "Next Shift", fonts.Small.Get(), int(x), int(y)+shiftBarH+4, cfg.UIText)
}
