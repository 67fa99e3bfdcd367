// Package player provides seat strategies for engine games: seeded random
// and greedy bots, and a console player.
package player

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jason-s-yu/gemstone/engine"
)

// Player is an engine strategy with a display name.
type Player interface {
	engine.Player
	Name() string
}

// Kinds of bots NewBot can build.
const (
	KindRandom = "random"
	KindGreedy = "greedy"
)

var ErrUnknownKind = errors.New("unknown player kind")

// NewBot builds a bot of the given kind.
func NewBot(kind string, seed uint64) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindRandom:
		return NewRandomBot(seed), nil
	case KindGreedy:
		return NewGreedyBot(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// coinPayment selects cards worth at least amount, spending coins before
// gems. Positions in except are never used.
func coinPayment(inv engine.PlayerInventory, amount int, except engine.CardChoice) (engine.CardChoice, bool) {
	gems := inv.Where(engine.Card.IsGem)
	if choice, ok := inv.SelectCapital(amount, except|gems); ok {
		return choice, true
	}
	return inv.SelectCapital(amount, except)
}
