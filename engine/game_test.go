package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScriptedGame builds a game over the unshuffled deck with scripted seats.
func newScriptedGame(t *testing.T, seats ...*scriptedPlayer) *Game {
	t.Helper()
	players := make([]Player, len(seats))
	for i, s := range seats {
		players[i] = s
	}
	g, err := NewGameWithDeck(players, GemDeck(), DefaultHouseRules())
	require.NoError(t, err)
	return g
}

func step(t *testing.T, g *Game) {
	t.Helper()
	_, done, err := g.Step()
	require.NoError(t, err)
	require.False(t, done)
}

// TestNewGameInitialState verifies the first stack and bidding cycle.
func TestNewGameInitialState(t *testing.T) {
	g := newScriptedGame(t, &scriptedPlayer{}, &scriptedPlayer{})
	info := g.Info()

	assert.Equal(t, uint8(2), info.NumPlayers())
	assert.Equal(t, uint8(0), info.RoundIndex())
	assert.Equal(t, uint8(0), info.StartingPlayer(), "the seat after the last one starts")
	assert.Equal(t, uint8(0), info.CurrentPlayer())
	assert.Equal(t, int8(-1), info.HighestBid())
	assert.Equal(t, PhaseAuction, info.Phase())
	assert.True(t, info.IsAuctionPhase())

	stack := info.Stack()
	require.Equal(t, 4, stack.Len())
	deck := GemDeck()
	for i := 0; i < 4; i++ {
		assert.Equal(t, deck.At(i), stack.At(i))
	}
	for _, inv := range info.Inventories() {
		assert.Equal(t, int8(6), inv.Capital())
	}
}

func TestNewGamePlayerCount(t *testing.T) {
	_, err := NewGame(newPlayers(1, func() Player { return &scriptedPlayer{} }), 1, DefaultHouseRules())
	assert.ErrorIs(t, err, ErrTooFewPlayers)

	_, err = NewGame(newPlayers(5, func() Player { return &scriptedPlayer{} }), 1, DefaultHouseRules())
	assert.ErrorIs(t, err, ErrReachedPlayerLimit)
}

// TestAuctionScenario: A bids 2, B bids 3, B buys stack card 0 paying exactly 3.
func TestAuctionScenario(t *testing.T) {
	a := &scriptedPlayer{bids: []int8{2}}
	b := &scriptedPlayer{bids: []int8{3}, picks: []pick{{card: 0, payment: NewCardChoice(2)}}}
	g := newScriptedGame(t, a, b)
	info := g.Info()
	bought := info.Stack().At(0)

	step(t, g)
	info = g.Info()
	assert.Equal(t, int8(2), info.HighestBid())
	assert.Equal(t, uint8(0), info.HighestBidder())
	assert.Equal(t, uint8(1), info.CurrentPlayer())
	assert.Equal(t, LastAction{Kind: ActionBid, Player: 0, Bid: 2, Leader: true}, info.LastAction())

	step(t, g)
	info = g.Info()
	assert.Equal(t, int8(3), info.HighestBid())
	assert.Equal(t, uint8(1), info.HighestBidder())
	assert.True(t, info.IsRoundOver())
	assert.Equal(t, PhaseSettlement, info.Phase())

	step(t, g)
	info = g.Info()
	invB := info.Inventory(1)
	require.Equal(t, 4, invB.Len())
	assert.True(t, invB.At(2).IsLeveraged(), "coin 3 paid the bid")
	assert.False(t, invB.At(0).IsLeveraged())
	assert.False(t, invB.At(1).IsLeveraged())
	assert.Equal(t, bought, invB.At(3))
	assert.True(t, invB.At(3).IsLeveraged(), "bought gems arrive leveraged")
	assert.Equal(t, int8(1+2), invB.Capital())

	stack := info.Stack()
	assert.Equal(t, 3, stack.Len())
	assert.Equal(t, uint8(0), info.StartingPlayer(), "new cycle starts after the buyer")
	assert.Equal(t, uint8(0), info.CurrentPlayer())
	assert.Equal(t, int8(-1), info.HighestBid())
	assert.Equal(t, PhaseAuction, info.Phase())

	last := info.LastAction()
	assert.Equal(t, ActionPurchase, last.Kind)
	assert.Equal(t, uint8(1), last.Player)
	assert.Equal(t, int8(3), last.Bid)
	assert.Equal(t, bought, last.Card)
	assert.Equal(t, NewCardChoice(2), last.Choice)

	// Opponent inventory untouched.
	assert.Equal(t, NewPlayerInventory(), info.Inventory(0))
}

// TestTieFavoursIncumbent verifies an equal bid does not take the lead.
func TestTieFavoursIncumbent(t *testing.T) {
	g := newScriptedGame(t, &scriptedPlayer{bids: []int8{2}}, &scriptedPlayer{bids: []int8{2}})
	step(t, g)
	step(t, g)

	info := g.Info()
	assert.Equal(t, uint8(0), info.HighestBidder())
	assert.Equal(t, int8(2), info.HighestBid())
	assert.False(t, info.LastAction().Leader)
}

// TestNegativeBidClamped verifies negative bids count as zero.
func TestNegativeBidClamped(t *testing.T) {
	g := newScriptedGame(t, &scriptedPlayer{bids: []int8{-5}}, &scriptedPlayer{})
	step(t, g)

	info := g.Info()
	assert.Equal(t, int8(0), info.HighestBid())
	assert.Equal(t, uint8(0), info.HighestBidder())
	assert.Equal(t, int8(0), info.LastAction().Bid)
}

// TestBidExceedsCapital verifies unaffordable bids fail without mutation.
func TestBidExceedsCapital(t *testing.T) {
	g := newScriptedGame(t, &scriptedPlayer{bids: []int8{7}}, &scriptedPlayer{})
	before := g.Info()

	_, done, err := g.Step()
	require.ErrorIs(t, err, ErrCannotAffordBid)
	assert.False(t, done)
	assert.Equal(t, before, g.Info())
}

// TestLeveragedPaymentFails verifies paying with a leveraged card fails and leaves state unchanged.
func TestLeveragedPaymentFails(t *testing.T) {
	a := &scriptedPlayer{bids: []int8{0, 0}}
	b := &scriptedPlayer{
		bids: []int8{3, 3},
		picks: []pick{
			{card: 0, payment: NewCardChoice(2)},
			{card: 0, payment: NewCardChoice(2)}, // coin 3 is still leveraged
		},
	}
	g := newScriptedGame(t, a, b)
	for i := 0; i < 5; i++ {
		step(t, g)
	}
	before := g.Info()
	require.Equal(t, PhaseSettlement, before.Phase())

	_, _, err := g.Step()
	require.ErrorIs(t, err, ErrLeveragedPayment)
	assert.Equal(t, before, g.Info())
}

// TestInsufficientPaymentFails verifies an underpaid purchase fails and leaves state unchanged.
func TestInsufficientPaymentFails(t *testing.T) {
	a := &scriptedPlayer{bids: []int8{4}, picks: []pick{{card: 1, payment: NewCardChoice(0, 1)}}}
	g := newScriptedGame(t, a, &scriptedPlayer{})
	step(t, g)
	step(t, g)
	before := g.Info()

	_, _, err := g.Step()
	require.ErrorIs(t, err, ErrInsufficientPayment)
	assert.Equal(t, before, g.Info())
}

// TestInvalidStackCard verifies picking an empty stack position fails.
func TestInvalidStackCard(t *testing.T) {
	a := &scriptedPlayer{picks: []pick{{card: 4}}}
	g := newScriptedGame(t, a, &scriptedPlayer{})
	step(t, g)
	step(t, g)
	before := g.Info()

	_, _, err := g.Step()
	require.ErrorIs(t, err, ErrInvalidStackCard)
	assert.Equal(t, before, g.Info())
}

// TestReinvestmentStartsWithLastBuyer verifies the phase switch once the stack is bought out.
func TestReinvestmentStartsWithLastBuyer(t *testing.T) {
	g := newScriptedGame(t, &scriptedPlayer{}, &scriptedPlayer{})
	// Four cards, each cycle is two bids plus one purchase; the starting
	// seat wins every zero-bid cycle.
	for i := 0; i < 12; i++ {
		step(t, g)
	}

	info := g.Info()
	require.Equal(t, PhaseReinvestment, info.Phase())
	assert.True(t, info.IsReinvestmentPhase())
	assert.Equal(t, info.HighestBidder(), info.StartingPlayer())
	assert.Equal(t, info.HighestBidder(), info.CurrentPlayer())
	assert.Equal(t, int8(-1), info.HighestBid())
	assert.Equal(t, uint8(1), info.HighestBidder())
	assert.Equal(t, 2*3+4, info.Inventory(0).Len()+info.Inventory(1).Len())
}

// TestReinvestmentUnaffordableFails verifies an unpaid flip fails without mutating inventories.
func TestReinvestmentUnaffordableFails(t *testing.T) {
	seat := &scriptedPlayer{reinvests: []CardChoice{NewCardChoice(3)}}
	g := newScriptedGame(t, seat, &scriptedPlayer{})
	g.emptyStack()
	g.info.inventories[0].PushBack(NewGem(ArchetypeFromIndex(12)).WithLeverage(true))
	g.info.StartStepCycle(0)
	before := g.Info()

	_, _, err := g.Step()
	require.ErrorIs(t, err, ErrCannotAffordFlip)
	assert.Equal(t, before, g.Info())
}

// TestReinvestmentRoundClose verifies flips, coin reset and the next deal.
func TestReinvestmentRoundClose(t *testing.T) {
	// Seat 0 restores its value-4 gem paying with coins 1 and 2.
	seat0 := &scriptedPlayer{reinvests: []CardChoice{NewCardChoice(0, 1, 3)}}
	g := newScriptedGame(t, seat0, &scriptedPlayer{})
	g.emptyStack()
	g.info.inventories[0].PushBack(NewGem(ArchetypeFromIndex(12)).WithLeverage(true))
	g.info.inventories[1].Update(NewCardChoice(2), func(c Card) Card { return c.WithLeverage(true) })
	g.info.highestBidder = 1
	g.info.StartStepCycle(0)

	step(t, g)
	info := g.Info()
	inv0 := info.Inventory(0)
	assert.True(t, inv0.At(0).IsLeveraged())
	assert.True(t, inv0.At(1).IsLeveraged())
	assert.False(t, inv0.At(3).IsLeveraged())
	assert.Equal(t, uint8(0), info.RoundIndex())
	assert.Equal(t, ActionReinvest, info.LastAction().Kind)
	assert.False(t, info.LastAction().RoundEnded)

	step(t, g)
	info = g.Info()
	assert.True(t, info.LastAction().RoundEnded)
	assert.Equal(t, uint8(1), info.RoundIndex())
	for p := uint8(0); p < 2; p++ {
		inv := info.Inventory(p)
		assert.Equal(t, 0, Count(Leveraged(Coins(inv.Iter()))), "coins of seat %d reset", p)
	}
	assert.False(t, info.Inventory(0).At(3).IsLeveraged())

	stack := info.Stack()
	assert.Equal(t, 3, stack.Len(), "round 1 deals three cards")
	deck := GemDeck()
	for i := 0; i < 3; i++ {
		assert.Equal(t, deck.At(4+i), stack.At(i))
	}
	assert.Equal(t, uint8(0), info.StartingPlayer(), "cycle starts after the last highest bidder")
	assert.Equal(t, PhaseAuction, info.Phase())
}

// TestFlipToggles verifies flipping both restores and pledges in one selection.
func TestFlipToggles(t *testing.T) {
	info := NewGameInfoWithDeck(2, GemDeck(), DefaultHouseRules())
	info.inventories[0].PushBack(NewGem(ArchetypeFromIndex(0)).WithLeverage(true))

	assert.Equal(t, 0, info.ReinvestmentBalance(0, NewCardChoice(0, 3)))
	require.NoError(t, info.ValidateReinvestment(0, NewCardChoice(0, 3)))
	info.FlipCards(0, NewCardChoice(0, 3))

	inv := info.Inventory(0)
	assert.True(t, inv.At(0).IsLeveraged())
	assert.False(t, inv.At(3).IsLeveraged())
}

func TestReinvestmentBalance(t *testing.T) {
	info := NewGameInfoWithDeck(3, GemDeck(), DefaultHouseRules())
	info.inventories[2].PushBack(NewGem(ArchetypeFromIndex(5)).WithLeverage(true)) // value 3 at 3
	info.inventories[2].PushBack(NewGem(ArchetypeFromIndex(8)))                     // value 4 at 4

	tests := []struct {
		name   string
		choice CardChoice
		want   int
	}{
		{"nothing", ChoiceNone, 0},
		{"pledge only", NewCardChoice(1), 2},
		{"restore unpaid", NewCardChoice(3), -2},
		{"restore with coin 2", NewCardChoice(1, 3), 0},
		{"restore with coin 1", NewCardChoice(0, 3), -1},
		{"restore with gem", NewCardChoice(3, 4), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, info.ReinvestmentBalance(2, tt.choice))
			err := info.ValidateReinvestment(2, tt.choice)
			if tt.want < 0 {
				assert.ErrorIs(t, err, ErrCannotAffordFlip)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// runToEnd steps g until it reports done, failing after limit steps.
func runToEnd(t *testing.T, g *Game, limit int) GameScores {
	t.Helper()
	for i := 0; i < limit; i++ {
		scores, done, err := g.Step()
		require.NoError(t, err)
		if done {
			return scores
		}
	}
	t.Fatalf("game not over after %d steps", limit)
	return GameScores{}
}

// TestEndToEndTwoPlayers plays a seeded two-player game to completion.
func TestEndToEndTwoPlayers(t *testing.T) {
	g, err := NewGame(newPlayers(2, func() Player { return capitalPlayer{} }), 1234, DefaultHouseRules())
	require.NoError(t, err)

	scores := runToEnd(t, g, 1000)
	info := g.Info()
	assert.True(t, info.IsGameOver())
	assert.Greater(t, info.RoundIndex(), uint8(5))
	assert.Equal(t, PhaseGameOver, info.Phase())
	assert.Equal(t, DeckSize+2*3, info.Inventory(0).Len()+info.Inventory(1).Len(), "every card was sold")
	for p := 0; p < 2; p++ {
		assert.GreaterOrEqual(t, scores[p], int32(0))
	}
	assert.Equal(t, int32(0), scores[2])
	assert.Equal(t, int32(0), scores[3])

	// Terminal steps are idempotent.
	for i := 0; i < 3; i++ {
		again, done, err := g.Step()
		require.NoError(t, err)
		assert.True(t, done)
		assert.Equal(t, scores, again)
		assert.Equal(t, info, g.Info())
	}
}

// TestEndToEndSeatCounts plays games for every seat count, checking the
// stack schedule along the way.
func TestEndToEndSeatCounts(t *testing.T) {
	for n := MinPlayers; n <= MaxPlayers; n++ {
		g, err := NewGame(newPlayers(n, func() Player { return capitalPlayer{} }), uint64(n), DefaultHouseRules())
		require.NoError(t, err)

		sizes := stackSizes(uint8(n))
		dealt := map[uint8]int{}
		for i := 0; i < 2000 && !g.info.IsGameOver(); i++ {
			if _, seen := dealt[g.info.roundIndex]; !seen && g.info.IsAuctionPhase() {
				dealt[g.info.roundIndex] = g.info.stack.Len()
			}
			_, _, err := g.Step()
			require.NoError(t, err)
		}
		require.True(t, g.info.IsGameOver(), "%d players", n)
		for r := uint8(0); r < NumRounds; r++ {
			assert.Equal(t, sizes[r], dealt[r], "%d players, round %d", n, r)
		}

		total := 0
		for _, inv := range g.info.Inventories() {
			total += inv.Len()
		}
		assert.Equal(t, DeckSize+3*n, total, "%d players", n)
	}
}

// TestFrugalGame verifies a game where nobody ever bids still terminates.
func TestFrugalGame(t *testing.T) {
	seats := newPlayers(3, func() Player { return &scriptedPlayer{} })
	g, err := NewGame(seats, 99, DefaultHouseRules())
	require.NoError(t, err)

	scores := runToEnd(t, g, 1000)
	// Every gem was bought leveraged and never restored.
	assert.Equal(t, GameScores{}, scores)
	total := 0
	final := g.Info()
	for _, inv := range final.Inventories() {
		total += Count(Leveraged(Gems(inv.Iter())))
	}
	assert.Equal(t, DeckSize, total)
}

// TestRestoredGemScores verifies a bought gem scores only after it is restored.
func TestRestoredGemScores(t *testing.T) {
	// Seat 1 buys D for 2 with coin 2, then restores it paying with coin 1.
	// The remaining diamonds go for free; seat 0 buys last and reinvests first.
	a := &scriptedPlayer{}
	b := &scriptedPlayer{
		bids:      []int8{2},
		picks:     []pick{{card: 0, payment: NewCardChoice(1)}},
		reinvests: []CardChoice{NewCardChoice(0, 3)},
	}
	g := newScriptedGame(t, a, b)
	for g.info.IsAuctionPhase() {
		step(t, g)
	}
	info := g.Info()
	require.Equal(t, PhaseReinvestment, info.Phase())
	assert.Equal(t, GameScores{}, info.Scores())
	invB := info.Inventory(1)
	require.True(t, invB.At(3).IsLeveraged())
	assert.Equal(t, ArchetypeFromIndex(0), invB.At(3).Archetype())

	step(t, g) // seat 0 passes
	step(t, g) // seat 1 restores D
	require.Equal(t, uint8(1), g.info.RoundIndex())
	info = g.Info()
	invB = info.Inventory(1)
	assert.False(t, invB.At(3).IsLeveraged())
	assert.Equal(t, GameScores{0, 1, 0, 0}, g.info.Scores())
}

// TestNewGameWithDeckSize verifies decks of the wrong size are rejected.
func TestNewGameWithDeckSize(t *testing.T) {
	seats := newPlayers(2, func() Player { return &scriptedPlayer{} })
	short := NewCardCollection(DeckSize)
	for i := 0; i < DeckSize-1; i++ {
		short.PushBack(NewGem(ArchetypeFromIndex(0)))
	}

	_, err := NewGameWithDeck(seats, short, DefaultHouseRules())
	assert.ErrorIs(t, err, ErrInvalidDeck)
	assert.Panics(t, func() { NewGameInfoWithDeck(2, short, DefaultHouseRules()) })

	short.PushBack(NewGem(ArchetypeFromIndex(1)))
	_, err = NewGameWithDeck(seats, short, DefaultHouseRules())
	assert.NoError(t, err)
}

func TestStackSizesCoverDeck(t *testing.T) {
	for n := uint8(MinPlayers); n <= MaxPlayers; n++ {
		sum := 0
		for _, s := range stackSizes(n) {
			assert.LessOrEqual(t, s, MaxStackSize)
			sum += s
		}
		assert.Equal(t, DeckSize, sum, "%d players", n)
	}
}
