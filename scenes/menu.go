package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/input"
	"github.com/automoto/dreamrunner/logger"
	"github.com/automoto/dreamrunner/render"
	"github.com/automoto/dreamrunner/systems"
	"github.com/automoto/dreamrunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the start menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	menuUI       *ui.StartMenuUI
	once         sync.Once
	chosen       int
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, session *Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.chosen == 0 {
		return
	}
	numPlayers := ms.chosen
	ms.chosen = 0

	systems.RememberPlayerCount(ms.session.World, numPlayers)
	if err := ms.session.Start(numPlayers); err != nil {
		logger.Criticalf("could not start game: %v", err)
		return
	}
	ms.sceneChanger.ChangeScene(NewStageScene(ms.sceneChanger, ms.session))
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(ms.session.World)

	matchEntry, _ := components.Match.First(ms.session.World)
	menu := components.Menu.Get(matchEntry)

	menuUI, err := ui.NewStartMenuUI(menu, func(numPlayers int) {
		ms.chosen = numPlayers
	})
	if err != nil {
		logger.Fatalf("could not build start menu: %v", err)
	}
	ms.menuUI = menuUI

	ms.ecs.AddSystem(ms.updateMenu)
	ms.ecs.AddRenderer(render.Layer, render.DrawBackground)
}

// updateMenu handles keyboard navigation on top of the mouse-driven buttons
func (ms *MenuScene) updateMenu(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	menu := components.Menu.Get(matchEntry)

	if input.SessionJustPressed(cfg.SessionToggleMusic) {
		toggleMusic(e.World)
	}
	if delta := input.MenuDelta(); delta != 0 {
		menu.Move(delta)
		ms.menuUI.Refresh()
	}
	if input.MenuSelectJustPressed() {
		ms.chosen = menu.Selected()
	}
}
