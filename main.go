package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/fonts"
	"github.com/automoto/dreamrunner/logger"
	"github.com/automoto/dreamrunner/scenes"
	"github.com/automoto/dreamrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	config *config.Config
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session, skipMenu bool, numPlayers int) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		config: session.Config,
	}

	if skipMenu {
		if err := session.Start(numPlayers); err != nil {
			logger.Fatalf("could not start game: %v", err)
		}
		g.scene = scenes.NewStageScene(g, session)
	} else {
		g.scene = scenes.NewMenuScene(g, session)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, g.config.Stage.Width, g.config.Stage.Height)
	return g.config.Stage.Width, g.config.Stage.Height
}

func main() {
	var (
		envFile    = flag.String("env", ".env", "optional dotenv file with DREAMRUNNER_* overrides")
		logLevel   = flag.String("loglevel", "", "log level (debug, info, warn, error)")
		numPlayers = flag.Int("players", 0, "player count when skipping the menu (defaults to the last used)")
		numBots    = flag.Int("bots", 0, "number of CPU controlled players, taking the last slots")
		seed       = flag.Uint64("seed", 0, "terrain seed, 0 picks one from the clock")
		skipMenu   = flag.Bool("skipmenu", false, "start a round immediately")
	)
	flag.Parse()

	c := config.Default()
	if err := config.LoadEnv(c, *envFile); err != nil {
		logger.Fatalf("could not load %s: %v", *envFile, err)
	}
	level := *logLevel
	if level == "" {
		level = os.Getenv(config.EnvLogLevel)
	}
	if level != "" {
		if err := logger.SetLevel(level); err != nil {
			logger.Fatalf("%v", err)
		}
	}
	if *seed != 0 {
		c.Seed = *seed
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatalf("could not load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Warningf("running without saved settings: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		logger.Warningf("ignoring saved settings: %v", err)
		saved = nil
	}

	session := scenes.NewSession(c, *numBots, saved)
	players := *numPlayers
	if players == 0 {
		players = session.Settings().LastPlayerCount
	}

	ebiten.SetWindowSize(c.Stage.Width, c.Stage.Height)
	ebiten.SetWindowTitle("Dream Runner")
	ebiten.SetTPS(c.Stage.TickRate)

	if err := ebiten.RunGame(NewGame(session, *skipMenu, players)); err != nil {
		logger.Fatalf("%v", err)
	}
}
