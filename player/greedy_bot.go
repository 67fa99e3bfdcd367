package player

import (
	"sort"

	"github.com/jason-s-yu/gemstone/engine"
)

// GreedyBot chases the stack card with the most gems and restores its
// best leveraged gems whenever coins can pay for them.
type GreedyBot struct {
	BotName string
}

func NewGreedyBot() *GreedyBot { return &GreedyBot{BotName: "GreedyBot"} }

func (b *GreedyBot) Name() string { return b.BotName }

// bestCard returns the stack position holding the most gems, preferring
// the cheaper card on ties.
func bestCard(stack engine.CardCollection) int {
	best := 0
	for i, c := range stack.All() {
		top := stack.At(best)
		switch {
		case c.Archetype().NumGems() > top.Archetype().NumGems():
			best = i
		case c.Archetype().NumGems() == top.Archetype().NumGems() && c.Value() < top.Value():
			best = i
		}
	}
	return best
}

// Bid offers the best card's value, capped at the affordable maximum.
func (b *GreedyBot) Bid(info engine.GameInfo) int8 {
	stack := info.Stack()
	want := stack.At(bestCard(stack)).Value()
	return min(want, info.MaxBid(info.CurrentPlayer()))
}

// PickCard buys the best card, paying with coins before gems.
func (b *GreedyBot) PickCard(info engine.GameInfo) (int, engine.CardChoice) {
	inv := info.CurrentInventory()
	payment, _ := coinPayment(inv, int(info.HighestBid()), engine.ChoiceNone)
	return bestCard(info.Stack()), payment
}

// Reinvest restores leveraged gems, most gems first, while non-leveraged
// coins can cover their cost. Bought gems arrive leveraged, so this is the
// only way they score. Gems are never pledged.
func (b *GreedyBot) Reinvest(info engine.GameInfo) engine.CardChoice {
	return restoreGems(info.CurrentInventory())
}

func restoreGems(inv engine.PlayerInventory) engine.CardChoice {
	candidates := inv.Where(func(c engine.Card) bool { return c.IsGem() && c.IsLeveraged() }).Indices()
	sort.SliceStable(candidates, func(i, j int) bool {
		return inv.At(candidates[i]).Archetype().NumGems() > inv.At(candidates[j]).Archetype().NumGems()
	})

	gems := inv.Where(engine.Card.IsGem)
	var pledged, restored engine.CardChoice
	cost := 0
	for _, idx := range candidates {
		payment, ok := inv.SelectCapital(cost+int(inv.At(idx).Value())-1, gems)
		if !ok {
			continue
		}
		cost += int(inv.At(idx).Value()) - 1
		pledged = payment
		restored = restored.With(idx)
	}
	return pledged | restored
}
