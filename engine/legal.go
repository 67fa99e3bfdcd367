package engine

import (
	"fmt"
	"sort"
)

// MaxBid returns the largest bid player can currently afford.
func (g *GameInfo) MaxBid(player uint8) int8 {
	return g.inventories[player].Capital()
}

// ValidateBid checks that a clamped bid is covered by player's capital.
func (g *GameInfo) ValidateBid(player uint8, bid int8) error {
	if capital := g.MaxBid(player); bid > capital {
		return fmt.Errorf("%w: player %d bid %d with capital %d", ErrCannotAffordBid, player, bid, capital)
	}
	return nil
}

// ValidatePurchase checks a settlement decision of player against the
// current stack and highest bid.
func (g *GameInfo) ValidatePurchase(player uint8, cardIdx int, payment CardChoice) error {
	if cardIdx < 0 || cardIdx >= g.stack.Len() {
		return fmt.Errorf("%w: position %d of a %d-card stack", ErrInvalidStackCard, cardIdx, g.stack.Len())
	}
	inv := &g.inventories[player]
	if n := Count(Leveraged(inv.Choose(payment))); n != 0 {
		return fmt.Errorf("%w: %d leveraged cards selected", ErrLeveragedPayment, n)
	}
	if paid := Capital(inv.Choose(payment)); paid < g.highestBid {
		return fmt.Errorf("%w: paid %d for a bid of %d", ErrInsufficientPayment, paid, g.highestBid)
	}
	return nil
}

// ReinvestmentBalance returns what a flip selection leaves over for
// player. Every selected non-leveraged card is pledged and contributes its
// face value; every selected leveraged card is restored and costs its face
// value minus one. A negative balance cannot be paid for.
func (g *GameInfo) ReinvestmentBalance(player uint8, choice CardChoice) int {
	inv := &g.inventories[player]
	paid := FaceValue(NonLeveraged(inv.Choose(choice)))
	cost := Sum(Leveraged(inv.Choose(choice)), func(c Card) int { return int(c.Value()) - 1 })
	return paid - cost
}

// ValidateReinvestment checks that player can pay for the flip selection.
func (g *GameInfo) ValidateReinvestment(player uint8, choice CardChoice) error {
	if balance := g.ReinvestmentBalance(player, choice); balance < 0 {
		return fmt.Errorf("%w: player %d is short %d", ErrCannotAffordFlip, player, -balance)
	}
	return nil
}

// SelectCapital picks non-leveraged cards, largest first, until their value
// reaches amount. It reports false when the collection cannot cover amount.
// Positions in except are never picked.
func (c CardCollection) SelectCapital(amount int, except CardChoice) (CardChoice, bool) {
	if amount <= 0 {
		return ChoiceNone, true
	}
	idx := make([]int, 0, c.Len())
	for i, card := range c.All() {
		if !card.IsLeveraged() && !except.Check(i) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return c.cards[idx[a]].Value() > c.cards[idx[b]].Value() })

	var choice CardChoice
	total := 0
	for _, i := range idx {
		if total >= amount {
			break
		}
		choice = choice.With(i)
		total += int(c.cards[i].Value())
	}
	return choice, total >= amount
}
