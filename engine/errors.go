package engine

import "errors"

var (
	// ErrTooFewPlayers is returned when a game is set up with fewer than two seats.
	ErrTooFewPlayers = errors.New("too few players")
	// ErrReachedPlayerLimit is returned when a fifth seat is added.
	ErrReachedPlayerLimit = errors.New("player limit reached")
	// ErrCannotAffordBid is returned when a bid exceeds the bidder's capital.
	ErrCannotAffordBid = errors.New("cannot afford bid")
	// ErrLeveragedPayment is returned when a payment selection contains a leveraged card.
	ErrLeveragedPayment = errors.New("tried to pay with a leveraged card")
	// ErrInsufficientPayment is returned when a payment does not cover the highest bid.
	ErrInsufficientPayment = errors.New("payment does not cover highest bid")
	// ErrCannotAffordFlip is returned when a reinvestment selection is not paid for.
	ErrCannotAffordFlip = errors.New("cannot afford to flip cards")
	// ErrInvalidStackCard is returned when a picked stack position holds no card.
	ErrInvalidStackCard = errors.New("invalid stack card")
	// ErrInvalidDeck is returned when a supplied deck does not hold exactly DeckSize cards.
	ErrInvalidDeck = errors.New("invalid deck")
)
