// Package engine implements the rules of Gemstone, an auction-and-investment
// card game for two to four players.
//
// All game state lives in GameInfo, a flat value type with no pointers, so
// snapshots are plain struct copies. Game drives a GameInfo forward one
// player decision at a time by querying each seat's Player strategy,
// validating the answer and committing it.
package engine

import "fmt"

// Game drives a GameInfo with one Player per seat. It is not safe for
// concurrent use; callers embedding it in a multi-actor environment must
// serialise calls to Step.
type Game struct {
	info    GameInfo
	players []Player
}

// NewGame creates a game for two to four players with a deck shuffled from seed and
// deals the first stack.
func NewGame(players []Player, seed uint64, rules HouseRules) (*Game, error) {
	if err := checkPlayerCount(len(players)); err != nil {
		return nil, err
	}
	return newGame(players, NewGameInfo(uint8(len(players)), seed, rules)), nil
}

// NewGameWithDeck is like NewGame but deals from deck in the given order.
// The deck must hold exactly DeckSize cards.
func NewGameWithDeck(players []Player, deck CardCollection, rules HouseRules) (*Game, error) {
	if err := checkPlayerCount(len(players)); err != nil {
		return nil, err
	}
	if deck.Len() != DeckSize {
		return nil, fmt.Errorf("%w: %d cards, want %d", ErrInvalidDeck, deck.Len(), DeckSize)
	}
	return newGame(players, NewGameInfoWithDeck(uint8(len(players)), deck, rules)), nil
}

func newGame(players []Player, info GameInfo) *Game {
	info.PrepareAuction()
	return &Game{info: info, players: append([]Player(nil), players...)}
}

func checkPlayerCount(n int) error {
	switch {
	case n < MinPlayers:
		return fmt.Errorf("%w: %d seats, need at least %d", ErrTooFewPlayers, n, MinPlayers)
	case n > MaxPlayers:
		return fmt.Errorf("%w: %d seats, at most %d allowed", ErrReachedPlayerLimit, n, MaxPlayers)
	}
	return nil
}

// Info returns a snapshot of the current state.
func (g *Game) Info() GameInfo { return g.info }

// Run steps until the game is over and returns the final scores.
func (g *Game) Run() (GameScores, error) {
	for {
		scores, done, err := g.Step()
		if err != nil || done {
			return scores, err
		}
	}
}

// Step performs a single player decision. Once the game is over it returns
// the final scores with done set, and keeps doing so on every later call
// without touching the state. A failed step leaves the state unchanged.
func (g *Game) Step() (scores GameScores, done bool, err error) {
	if g.info.IsGameOver() {
		return g.info.Scores(), true, nil
	}

	switch g.info.Phase() {
	case PhaseAuction:
		err = g.stepBid()
	case PhaseSettlement:
		err = g.stepSettlement()
	case PhaseReinvestment:
		err = g.stepReinvestment()
	}
	if err != nil {
		return GameScores{}, false, err
	}

	if g.info.IsGameOver() {
		return g.info.Scores(), true, nil
	}
	return GameScores{}, false, nil
}

// stepBid asks the current player for a bid.
func (g *Game) stepBid() error {
	player := g.info.CurrentPlayer()
	bid := max(g.players[player].Bid(g.info), 0)
	if err := g.info.ValidateBid(player, bid); err != nil {
		return err
	}

	// Ties favour the incumbent.
	leader := bid > g.info.HighestBid()
	if leader {
		g.info.SetHighestBid(bid, player)
	}
	g.info.RecordAction(LastAction{Kind: ActionBid, Player: player, Bid: bid, Leader: leader})
	g.info.IncrementPlayer()
	return nil
}

// stepSettlement lets the highest bidder buy a card once every seat has bid.
func (g *Game) stepSettlement() error {
	buyer := g.info.HighestBidder()
	view := g.info
	view.SetCurrentPlayer(buyer)

	cardIdx, payment := g.players[buyer].PickCard(view)
	if err := g.info.ValidatePurchase(buyer, cardIdx, payment); err != nil {
		return err
	}

	price := g.info.HighestBid()
	card := g.info.BuyCard(cardIdx, buyer, payment)
	g.info.RecordAction(LastAction{
		Kind:     ActionPurchase,
		Player:   buyer,
		Bid:      price,
		StackIdx: uint8(cardIdx),
		Card:     card,
		Choice:   payment,
	})

	if g.info.IsReinvestmentPhase() {
		// The last buyer opens the reinvestment round.
		g.info.StartStepCycle(buyer)
		return nil
	}
	g.info.StartStepCycle(g.info.NextClockwisePlayer(buyer))
	return nil
}

// stepReinvestment asks the current player which cards to flip and closes
// the round once every seat has reinvested.
func (g *Game) stepReinvestment() error {
	player := g.info.CurrentPlayer()
	choice := g.players[player].Reinvest(g.info)
	if err := g.info.ValidateReinvestment(player, choice); err != nil {
		return err
	}

	g.info.FlipCards(player, choice)
	g.info.IncrementPlayer()

	roundEnded := g.info.IsRoundOver()
	g.info.RecordAction(LastAction{Kind: ActionReinvest, Player: player, Choice: choice, RoundEnded: roundEnded})
	if !roundEnded {
		return nil
	}

	g.info.ResetCoinCards()
	g.info.NextRound()
	g.info.StartStepCycle(g.info.NextClockwisePlayer(g.info.HighestBidder()))
	if !g.info.IsGameOver() {
		g.info.PrepareAuction()
	}
	return nil
}
