// Package sim runs all-CPU sessions without a window.
package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/logger"
	"github.com/automoto/dreamrunner/systems"
	"github.com/automoto/dreamrunner/systems/factory"
	"github.com/yohamta/donburi"
)

// ErrTickLimit is returned when a round does not finish within the tick budget.
var ErrTickLimit = errors.New("round exceeded tick limit")

// RoundResult summarizes one finished round.
type RoundResult struct {
	Round  int
	Winner int // Roster index, cfg.WinnerTie for a tie
	Ticks  int
	Morphs int
}

// GameLoop steps a headless session. With TickRate > 0 it paces itself to
// wall time; otherwise it runs as fast as possible.
type GameLoop struct {
	World    donburi.World
	Config   *cfg.Config
	TickRate int
}

// NewGameLoop creates a session where every player is CPU controlled.
func NewGameLoop(c *cfg.Config, numPlayers int, level cfg.BotDifficulty, tickRate int) (*GameLoop, error) {
	w := donburi.NewWorld()
	matchEntry := factory.CreateMatch(w, c)
	components.Match.Get(matchEntry).BotLevel = level

	if err := systems.StartGame(w, c, numPlayers, numPlayers); err != nil {
		return nil, err
	}
	return &GameLoop{World: w, Config: c, TickRate: tickRate}, nil
}

// Run plays rounds until the count is reached or ctx is cancelled.
func (g *GameLoop) Run(ctx context.Context, rounds, maxTicks int) ([]RoundResult, error) {
	var tick <-chan time.Time
	if g.TickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	logger.Infof("simulation started: %d rounds", rounds)
	results := make([]RoundResult, 0, rounds)
	for len(results) < rounds {
		result, err := g.playRound(ctx, tick, maxTicks)
		if err != nil {
			return results, err
		}
		results = append(results, result)
		logger.Infof("round %d: winner %s after %d ticks (%d morphs)",
			result.Round, winnerName(result.Winner), result.Ticks, result.Morphs)

		if len(results) < rounds {
			if err := systems.NextRound(g.World, g.Config); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}

func (g *GameLoop) playRound(ctx context.Context, tick <-chan time.Time, maxTicks int) (RoundResult, error) {
	match, ok := systems.GetMatch(g.World)
	if !ok {
		return RoundResult{}, systems.ErrNoMatch
	}

	for ticks := 1; ; ticks++ {
		if err := g.wait(ctx, tick); err != nil {
			return RoundResult{}, err
		}
		systems.Step(g.World, g.Config)

		if match.State == cfg.MatchStateRoundOver {
			result := RoundResult{Round: match.Round, Winner: match.WinnerIndex, Ticks: ticks}
			if t, ok := systems.CurrentTerrain(g.World); ok {
				result.Morphs = t.Morphs
			}
			return result, nil
		}
		if maxTicks > 0 && ticks >= maxTicks {
			return RoundResult{}, fmt.Errorf("%w: round %d after %d ticks", ErrTickLimit, match.Round, ticks)
		}
	}
}

func (g *GameLoop) wait(ctx context.Context, tick <-chan time.Time) error {
	if tick == nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tick:
		return nil
	}
}

// Tally returns the cross-round win counts.
func (g *GameLoop) Tally() []int {
	match, ok := systems.GetMatch(g.World)
	if !ok {
		return nil
	}
	return append([]int(nil), match.PlayerScores...)
}

func winnerName(winner int) string {
	if winner == cfg.WinnerTie {
		return "tie"
	}
	return fmt.Sprintf("P%d", winner+1)
}
