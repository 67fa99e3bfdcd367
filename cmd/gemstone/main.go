// Command gemstone plays Gemstone on the console or simulates bot
// tournaments.
//
//	gemstone play [-players n] [-seed s]
//	gemstone sim  [-players n] [-seed s] [-games g]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/gemstone/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("loading config")
	}

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	fs.IntVar(&cfg.Players, "players", cfg.Players, "number of seats (2-4)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "deck and bot seed")
	fs.IntVar(&cfg.Games, "games", cfg.Games, "games to simulate")
	_ = fs.Parse(os.Args[2:])
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid flags")
	}

	logrus.SetLevel(cfg.Level())
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch os.Args[1] {
	case "play":
		err = play(ctx, cfg, os.Stdin, os.Stdout)
	case "sim":
		err = simulate(ctx, cfg, os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logrus.WithError(err).Fatal(os.Args[1])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: gemstone play|sim [-players n] [-seed s] [-games g]")
}
