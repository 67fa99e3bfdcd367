package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/gemstone/internal/config"
	"github.com/jason-s-yu/gemstone/internal/tournament"
)

// simulate runs a bot tournament and prints a per-seat summary.
func simulate(ctx context.Context, cfg config.Config, out io.Writer) error {
	seats := make([]string, cfg.Players)
	for i := range seats {
		seats[i] = cfg.SeatKind(i)
	}

	res, err := tournament.Run(ctx, tournament.Config{
		Games:   cfg.Games,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
		Rules:   cfg.HouseRules(),
		Seats:   seats,
		Log:     logrus.WithField("component", "tournament"),
	})
	fmt.Fprintf(out, "%d games\n", res.Games)
	for i, kind := range res.Seats {
		fmt.Fprintf(out, "seat %d %-8s wins %5d (%5.1f%%)  avg score %.2f\n",
			i, kind, res.Wins[i], 100*res.WinRate(i), res.AverageScore(i))
	}
	return err
}
