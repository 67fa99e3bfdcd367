package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/gemstone/internal/config"
	"github.com/jason-s-yu/gemstone/internal/match"
	"github.com/jason-s-yu/gemstone/player"
)

// play seats a console player against bots and narrates every event.
func play(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	m := match.New(cfg.Seed, cfg.HouseRules())
	m.ShuffleSeats = true
	m.Log = logrus.WithField("match_id", m.ID)

	if _, err := m.AddSeat("you", player.NewHuman("you", in, out)); err != nil {
		return err
	}
	for i := 1; i < cfg.Players; i++ {
		bot, err := player.NewBot(cfg.SeatKind(i-1), cfg.Seed+uint64(i))
		if err != nil {
			return err
		}
		if _, err := m.AddSeat(fmt.Sprintf("%s#%d", bot.Name(), i), bot); err != nil {
			return err
		}
	}

	names := map[uuid.UUID]string{}
	m.BroadcastFn = func(ev match.Event) {
		who := ""
		if ev.User != nil {
			who = ev.User.Name
		}
		fmt.Fprintf(out, "%-16s %-10s %v  %s\n", ev.Type, who, ev.Payload, ev.Notation)
	}
	m.OnGameEnd = func(_ uuid.UUID, winners []uuid.UUID, scores map[uuid.UUID]int) {
		for id, s := range scores {
			fmt.Fprintf(out, "%-10s %d\n", names[id], s)
		}
		for _, w := range winners {
			fmt.Fprintf(out, "winner: %s\n", names[w])
		}
	}

	if err := m.Start(); err != nil {
		return err
	}
	for _, s := range m.State().Seats {
		names[s.SeatID] = s.Name
	}
	return m.Run(ctx)
}
