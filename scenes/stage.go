package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/input"
	"github.com/automoto/dreamrunner/logger"
	"github.com/automoto/dreamrunner/render"
	"github.com/automoto/dreamrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// StageScene runs rounds until the players return to the menu
type StageScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	once         sync.Once
}

// NewStageScene creates a stage scene for an already started session
func NewStageScene(sc SceneChanger, session *Session) *StageScene {
	return &StageScene{sceneChanger: sc, session: session}
}

func (ss *StageScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if systems.IsMatchState(ss.session.World, cfg.MatchStateStartMenu) {
		ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger, ss.session))
	}
}

func (ss *StageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *StageScene) configure() {
	ss.ecs = ecs.NewECS(ss.session.World)

	// Session keys run first so a restart takes effect this frame
	ss.ecs.AddSystem(ss.updateSessionKeys)
	ss.ecs.AddSystem(func(e *ecs.ECS) { input.UpdatePlayerControls(e.World) })
	ss.ecs.AddSystem(func(e *ecs.ECS) { systems.Step(e.World, ss.session.Config) })

	r := render.New(ss.session.Config)
	ss.ecs.AddRenderer(render.Layer, render.DrawBackground)
	ss.ecs.AddRenderer(render.Layer, r.DrawTerrain)
	ss.ecs.AddRenderer(render.Layer, r.DrawPlayers)
	ss.ecs.AddRenderer(render.Layer, r.DrawHUD)
	ss.ecs.AddRenderer(render.Layer, r.DrawRoundOver)
}

func (ss *StageScene) updateSessionKeys(e *ecs.ECS) {
	if input.SessionJustPressed(cfg.SessionToggleMusic) {
		toggleMusic(e.World)
	}

	if !systems.IsRoundOver(e.World) {
		return
	}
	switch {
	case input.SessionJustPressed(cfg.SessionRestart):
		if err := systems.RestartRound(e.World, ss.session.Config); err != nil {
			logger.Criticalf("could not restart round: %v", err)
		}
	case input.SessionJustPressed(cfg.SessionMenu):
		if err := systems.ReturnToMenu(e.World); err != nil {
			logger.Criticalf("could not return to menu: %v", err)
		}
	}
}
