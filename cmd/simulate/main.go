package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/logger"
	"github.com/automoto/dreamrunner/sim"
)

func main() {
	rounds := flag.Int("rounds", 5, "Rounds to play")
	players := flag.Int("players", 2, "CPU player count")
	seed := flag.Uint64("seed", 0, "Terrain seed (0 = from the clock)")
	maxTicks := flag.Int("maxticks", 60*60*5, "Abort a round after this many ticks (0 = no limit)")
	tickRate := flag.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	difficulty := flag.Int("difficulty", int(config.BotDifficultyNormal), "CPU difficulty (0 easy, 1 normal, 2 hard)")
	envFile := flag.String("env", ".env", "Optional dotenv file with DREAMRUNNER_* overrides")
	logLevel := flag.String("loglevel", "info", "Log level")
	flag.Parse()

	if err := logger.SetLevel(*logLevel); err != nil {
		logger.Fatalf("%v", err)
	}
	c := config.Default()
	if err := config.LoadEnv(c, *envFile); err != nil {
		logger.Fatalf("could not load %s: %v", *envFile, err)
	}
	if *seed != 0 {
		c.Seed = *seed
	}

	level := config.BotDifficulty(*difficulty)
	if _, ok := c.Bot.Difficulties[level]; !ok {
		logger.Fatalf("unknown difficulty %d", *difficulty)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop, err := sim.NewGameLoop(c, *players, level, *tickRate)
	if err != nil {
		logger.Fatalf("could not start simulation: %v", err)
	}

	results, err := loop.Run(ctx, *rounds, *maxTicks)
	if errors.Is(err, context.Canceled) {
		logger.Infof("interrupted after %d rounds", len(results))
	} else if err != nil {
		logger.Fatalf("simulation failed: %v", err)
	}
	logger.Infof("final tally: %v", loop.Tally())
}
