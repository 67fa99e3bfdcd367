package player

import (
	"strconv"

	"github.com/jason-s-yu/gemstone/engine"
	"golang.org/x/exp/rand"
)

// RandomBot plays uniformly random legal moves from a seeded source.
type RandomBot struct {
	BotName string
	rng     *rand.Rand
}

// NewRandomBot returns a random bot seeded with seed. Its name is derived
// from the seed and never touches the decision source.
func NewRandomBot(seed uint64) *RandomBot {
	return &RandomBot{
		BotName: "RandomBot_" + strconv.FormatUint(seed%100, 10),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (b *RandomBot) Name() string { return b.BotName }

// Bid picks a bid in [0, capital].
func (b *RandomBot) Bid(info engine.GameInfo) int8 {
	return int8(b.rng.Intn(int(info.MaxBid(info.CurrentPlayer())) + 1))
}

// PickCard buys a random stack card and pays for it largest card first.
func (b *RandomBot) PickCard(info engine.GameInfo) (int, engine.CardChoice) {
	stack := info.Stack()
	inv := info.CurrentInventory()
	payment, _ := inv.SelectCapital(int(info.HighestBid()), engine.ChoiceNone)
	return b.rng.Intn(stack.Len()), payment
}

// Reinvest restores one random leveraged gem half of the time, when its
// cost can be covered.
func (b *RandomBot) Reinvest(info engine.GameInfo) engine.CardChoice {
	inv := info.CurrentInventory()
	leveraged := inv.Where(func(c engine.Card) bool { return c.IsGem() && c.IsLeveraged() }).Indices()
	if len(leveraged) == 0 || b.rng.Intn(2) == 0 {
		return engine.ChoiceNone
	}
	idx := leveraged[b.rng.Intn(len(leveraged))]
	cost := int(inv.At(idx).Value()) - 1
	payment, ok := coinPayment(inv, cost, engine.NewCardChoice(idx))
	if !ok {
		return engine.ChoiceNone
	}
	return payment.With(idx)
}
