package engine

type pick struct {
	card    int
	payment CardChoice
}

// scriptedPlayer replays queued decisions, then falls back to passing:
// bid 0, buy stack card 0 for free, flip nothing.
type scriptedPlayer struct {
	bids      []int8
	picks     []pick
	reinvests []CardChoice
	calls     int
}

func (s *scriptedPlayer) Bid(GameInfo) int8 {
	s.calls++
	if len(s.bids) == 0 {
		return 0
	}
	b := s.bids[0]
	s.bids = s.bids[1:]
	return b
}

func (s *scriptedPlayer) PickCard(GameInfo) (int, CardChoice) {
	s.calls++
	if len(s.picks) == 0 {
		return 0, ChoiceNone
	}
	p := s.picks[0]
	s.picks = s.picks[1:]
	return p.card, p.payment
}

func (s *scriptedPlayer) Reinvest(GameInfo) CardChoice {
	s.calls++
	if len(s.reinvests) == 0 {
		return ChoiceNone
	}
	c := s.reinvests[0]
	s.reinvests = s.reinvests[1:]
	return c
}

// capitalPlayer bids everything it has, pays largest-first and restores
// its most valuable leveraged gem whenever it can pay for it.
type capitalPlayer struct{}

func (capitalPlayer) Bid(info GameInfo) int8 {
	return info.MaxBid(info.CurrentPlayer())
}

func (capitalPlayer) PickCard(info GameInfo) (int, CardChoice) {
	inv := info.CurrentInventory()
	stack := info.Stack()
	payment, _ := inv.SelectCapital(int(info.HighestBid()), ChoiceNone)
	return stack.Len() - 1, payment
}

func (capitalPlayer) Reinvest(info GameInfo) CardChoice {
	inv := info.CurrentInventory()
	best, bestValue := -1, int8(0)
	for i, c := range inv.All() {
		if c.IsGem() && c.IsLeveraged() && c.Value() > bestValue {
			best, bestValue = i, c.Value()
		}
	}
	if best < 0 {
		return ChoiceNone
	}
	payment, ok := inv.SelectCapital(int(bestValue)-1, NewCardChoice(best))
	if !ok {
		return ChoiceNone
	}
	return payment.With(best)
}

func newPlayers(n int, mk func() Player) []Player {
	out := make([]Player, n)
	for i := range out {
		out[i] = mk()
	}
	return out
}

// emptyStack drains the stack so the game sits in the reinvestment phase.
func (g *Game) emptyStack() {
	g.info.stack = NewCardCollection(MaxStackSize)
}
