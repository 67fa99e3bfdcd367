package engine

import "fmt"

// Phase is the derived stage of the game. It is never stored; see GameInfo.Phase.
type Phase uint8

const (
	PhaseAuction      Phase = iota // players bid for the stack
	PhaseSettlement                // the highest bidder picks and pays
	PhaseReinvestment              // players flip owned cards
	PhaseGameOver
)

var phaseNames = [...]string{"auction", "settlement", "reinvestment", "game_over"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// ActionKind identifies the decision recorded in LastAction.
type ActionKind uint8

const (
	ActionNone     ActionKind = iota // 0
	ActionBid                        // 1
	ActionPurchase                   // 2
	ActionReinvest                   // 3
)

var actionKindNames = [...]string{"none", "bid", "purchase", "reinvest"}

func (k ActionKind) String() string {
	if int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// LastAction is a fully observable summary of the most recently committed decision.
type LastAction struct {
	Kind       ActionKind
	Player     uint8
	Bid        int8       // clamped bid for ActionBid, price paid for ActionPurchase
	StackIdx   uint8      // ActionPurchase only
	Card       Card       // card bought, ActionPurchase only
	Choice     CardChoice // payment or flip selection
	Leader     bool       // ActionBid: the bid took the lead
	RoundEnded bool       // ActionReinvest: the reinvestment round closed
}

// GameInfo holds the complete state of a game. Unlike Game it never
// progresses on its own; every method is either a query or a single
// state transition. It is a flat value type, so assigning it takes a full
// snapshot.
type GameInfo struct {
	numPlayers     uint8 // [2, 4]
	roundIndex     uint8 // [0, 6) while running, >= 6 once over
	currentPlayer  uint8
	startingPlayer uint8
	highestBidder  uint8
	highestBid     int8 // -1 when no bid has been made in this cycle
	roundOver      bool // set when the current cycle wrapped back to startingPlayer

	inventories [MaxPlayers]PlayerInventory
	deck        CardCollection // shuffled gem deck, dealt slice by slice
	// stack holds the cards up for auction; the game is in the auction
	// phase exactly when it holds a card.
	stack CardCollection

	rules      HouseRules
	lastAction LastAction
}

// NewGameInfo creates the initial state for numPlayers seats with a deck
// shuffled from seed. No stack is dealt yet.
func NewGameInfo(numPlayers uint8, seed uint64, rules HouseRules) GameInfo {
	deck := GemDeck()
	deck.Shuffle(NewXorShift(seed))
	return NewGameInfoWithDeck(numPlayers, deck, rules)
}

// NewGameInfoWithDeck creates the initial state using deck in the given
// order. It panics unless deck holds exactly DeckSize cards.
func NewGameInfoWithDeck(numPlayers uint8, deck CardCollection, rules HouseRules) GameInfo {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		panic(fmt.Sprintf("engine: %d players out of range [%d, %d]", numPlayers, MinPlayers, MaxPlayers))
	}
	if deck.Len() != DeckSize {
		panic(fmt.Sprintf("engine: deck holds %d cards, want %d", deck.Len(), DeckSize))
	}
	g := GameInfo{
		numPlayers:    numPlayers,
		highestBidder: numPlayers - 1,
		highestBid:    -1,
		deck:          NewCardCollection(DeckSize),
		stack:         NewCardCollection(MaxStackSize),
		rules:         rules,
	}
	g.deck.CopyFrom(&deck, 0, deck.Len(), 0)
	for p := range g.inventories {
		g.inventories[p] = NewPlayerInventory()
	}
	return g
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// NumPlayers returns the number of seats in [2, 4].
func (g *GameInfo) NumPlayers() uint8 { return g.numPlayers }

// RoundIndex returns the current round; values above 5 mean the game is over.
func (g *GameInfo) RoundIndex() uint8 { return g.roundIndex }

// CurrentPlayer returns the seat that must act next.
func (g *GameInfo) CurrentPlayer() uint8 { return g.currentPlayer }

// StartingPlayer returns the seat the current cycle began with.
func (g *GameInfo) StartingPlayer() uint8 { return g.startingPlayer }

// HighestBidder returns the seat holding the highest bid. It keeps its value
// after the cycle closes so later cycles can be anchored on it.
func (g *GameInfo) HighestBidder() uint8 { return g.highestBidder }

// HighestBid returns the highest bid of the cycle, or -1 if none.
func (g *GameInfo) HighestBid() int8 { return g.highestBid }

// IsRoundOver reports whether every seat has acted in the current cycle.
func (g *GameInfo) IsRoundOver() bool { return g.roundOver }

// Rules returns the house rules.
func (g *GameInfo) Rules() HouseRules { return g.rules }

// LastAction returns the most recently committed decision.
func (g *GameInfo) LastAction() LastAction { return g.lastAction }

// Inventory returns a copy of the given seat's inventory.
func (g *GameInfo) Inventory(player uint8) PlayerInventory { return g.inventories[player] }

// Inventories returns copies of the active seats' inventories.
func (g *GameInfo) Inventories() []PlayerInventory {
	out := make([]PlayerInventory, g.numPlayers)
	copy(out, g.inventories[:g.numPlayers])
	return out
}

// CurrentInventory returns a copy of the current player's inventory.
func (g *GameInfo) CurrentInventory() PlayerInventory { return g.inventories[g.currentPlayer] }

// Stack returns a copy of the stack.
func (g *GameInfo) Stack() CardCollection { return g.stack }

// DeckRemaining returns the number of deck cards not yet dealt.
func (g *GameInfo) DeckRemaining() int {
	if g.roundIndex >= NumRounds {
		return 0
	}
	sizes := stackSizes(g.numPlayers)
	dealt := 0
	for _, s := range sizes[:g.roundIndex+1] {
		dealt += s
	}
	return g.deck.Len() - dealt
}

// NextClockwisePlayer returns the seat after player.
func (g *GameInfo) NextClockwisePlayer(player uint8) uint8 {
	return (player + 1) % g.numPlayers
}

// IsAuctionPhase reports whether the stack holds at least one card.
func (g *GameInfo) IsAuctionPhase() bool {
	return Count(NonNull(g.stack.Iter())) > 0
}

// IsReinvestmentPhase reports whether the stack is depleted.
func (g *GameInfo) IsReinvestmentPhase() bool { return !g.IsAuctionPhase() }

// IsGameOver reports whether all rounds have been played.
func (g *GameInfo) IsGameOver() bool { return g.roundIndex >= NumRounds }

// Phase derives the current stage from the round index, the stack and the
// round-over flag.
func (g *GameInfo) Phase() Phase {
	switch {
	case g.IsGameOver():
		return PhaseGameOver
	case g.IsReinvestmentPhase():
		return PhaseReinvestment
	case g.roundOver:
		return PhaseSettlement
	default:
		return PhaseAuction
	}
}

// ---------------------------------------------------------------------------
// Mutators. Each is a single transition and assumes validated input.
// ---------------------------------------------------------------------------

// PrepareAuction deals the current round's slice of the deck into the stack
// and opens a bidding cycle after the last highest bidder.
func (g *GameInfo) PrepareAuction() {
	sizes := stackSizes(g.numPlayers)
	start := 0
	for _, s := range sizes[:g.roundIndex] {
		start += s
	}
	size := sizes[g.roundIndex]
	g.stack.CopyFrom(&g.deck, start, start+size, 0)
	g.StartStepCycle(g.NextClockwisePlayer(g.highestBidder))
}

// StartStepCycle opens a bidding or reinvestment cycle anchored at player
// and clears the highest bid.
func (g *GameInfo) StartStepCycle(player uint8) {
	g.startingPlayer = player
	g.currentPlayer = player
	g.highestBid = -1
	g.roundOver = false
}

// IncrementPlayer passes the turn clockwise and flags the end of the cycle
// when the turn returns to the starting player.
func (g *GameInfo) IncrementPlayer() {
	g.currentPlayer = g.NextClockwisePlayer(g.currentPlayer)
	if g.currentPlayer == g.startingPlayer {
		g.roundOver = true
	}
}

// SetHighestBid records bid by player as the leading bid.
func (g *GameInfo) SetHighestBid(bid int8, player uint8) {
	g.highestBid = bid
	g.highestBidder = player
}

// SetCurrentPlayer hands the turn to player without touching the cycle.
func (g *GameInfo) SetCurrentPlayer(player uint8) { g.currentPlayer = player }

// BuyCard moves stack card cardIdx to player's inventory and leverages the
// payment cards. The payment is applied before the bought card is appended,
// so the new card is never part of its own payment. The bought card always
// arrives leveraged. Affordability is not checked here.
func (g *GameInfo) BuyCard(cardIdx int, player uint8, payment CardChoice) Card {
	card := g.stack.Pop(cardIdx).WithLeverage(true)
	inv := &g.inventories[player]
	inv.Update(payment, func(c Card) Card { return c.WithLeverage(true) })
	inv.PushBack(card)
	return card
}

// FlipCards toggles leverage on every selected card of player's inventory.
func (g *GameInfo) FlipCards(player uint8, choice CardChoice) {
	g.inventories[player].Update(choice, func(c Card) Card { return c.WithLeverage(!c.IsLeveraged()) })
}

// ResetCoinCards un-leverages every coin card of every seat.
func (g *GameInfo) ResetCoinCards() {
	for p := range g.inventories {
		g.inventories[p].UpdateWhere(Card.IsCoin, func(c Card) Card { return c.WithLeverage(false) })
	}
}

// NextRound advances the round index.
func (g *GameInfo) NextRound() { g.roundIndex++ }

// RecordAction stores a as the last committed decision.
func (g *GameInfo) RecordAction(a LastAction) { g.lastAction = a }
