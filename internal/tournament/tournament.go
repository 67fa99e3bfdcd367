// Package tournament plays many independent bot matches concurrently and
// aggregates per-seat results.
package tournament

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jason-s-yu/gemstone/engine"
	"github.com/jason-s-yu/gemstone/internal/match"
	"github.com/jason-s-yu/gemstone/player"
)

var ErrNoGames = errors.New("tournament needs at least one game")

// Config describes a batch of games. Game i is seeded with Seed+i.
type Config struct {
	Games   int
	Workers int
	Seed    uint64
	Rules   engine.HouseRules
	Seats   []string // bot kind per seat
	Log     *logrus.Entry
}

// Result aggregates finished games. A tied game counts as a win for every
// tied seat.
type Result struct {
	Seats       []string
	Games       int
	Wins        [engine.MaxPlayers]int
	TotalScores [engine.MaxPlayers]int
}

// WinRate returns the fraction of games seat won.
func (r Result) WinRate(seat int) float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins[seat]) / float64(r.Games)
}

// AverageScore returns the mean final score of seat.
func (r Result) AverageScore(seat int) float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalScores[seat]) / float64(r.Games)
}

// Run plays cfg.Games matches on at most cfg.Workers goroutines. On
// cancellation or the first failing game it stops scheduling, waits for
// running games and returns what finished along with the error.
func Run(ctx context.Context, cfg Config) (Result, error) {
	res := Result{Seats: append([]string(nil), cfg.Seats...)}
	if cfg.Games <= 0 {
		return res, ErrNoGames
	}
	switch n := len(cfg.Seats); {
	case n < engine.MinPlayers:
		return res, fmt.Errorf("tournament: %d seats: %w", n, engine.ErrTooFewPlayers)
	case n > engine.MaxPlayers:
		return res, fmt.Errorf("tournament: %d seats: %w", n, engine.ErrReachedPlayerLimit)
	}
	log := cfg.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))

	for i := 0; i < cfg.Games; i++ {
		if gctx.Err() != nil {
			break
		}
		seed := cfg.Seed + uint64(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores, err := playOne(gctx, cfg, seed, log)
			if err != nil {
				return fmt.Errorf("game seed %d: %w", seed, err)
			}

			mu.Lock()
			defer mu.Unlock()
			res.Games++
			for _, w := range scores.Winners(uint8(len(cfg.Seats))) {
				res.Wins[w]++
			}
			for s := range cfg.Seats {
				res.TotalScores[s] += int(scores[s])
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil && res.Games < cfg.Games {
		err = ctx.Err()
	}
	log.WithFields(logrus.Fields{"games": res.Games, "wins": res.Wins}).Info("tournament finished")
	return res, err
}

// playOne runs a single match and returns the scores by seat.
func playOne(ctx context.Context, cfg Config, seed uint64, log *logrus.Entry) (engine.GameScores, error) {
	m := match.New(seed, cfg.Rules)
	m.Log = log.WithFields(logrus.Fields{"match_id": m.ID, "seed": seed})

	seatOf := make(map[uuid.UUID]int, len(cfg.Seats))
	for i, kind := range cfg.Seats {
		bot, err := player.NewBot(kind, seed*engine.MaxPlayers+uint64(i))
		if err != nil {
			return engine.GameScores{}, err
		}
		id, err := m.AddSeat(fmt.Sprintf("%s#%d", bot.Name(), i), bot)
		if err != nil {
			return engine.GameScores{}, err
		}
		seatOf[id] = i
	}

	var scores engine.GameScores
	m.OnGameEnd = func(_ uuid.UUID, _ []uuid.UUID, final map[uuid.UUID]int) {
		for id, s := range final {
			scores[seatOf[id]] = int32(s)
		}
	}
	if err := m.Start(); err != nil {
		return engine.GameScores{}, err
	}
	if err := m.Run(ctx); err != nil {
		return engine.GameScores{}, err
	}
	return scores, nil
}
