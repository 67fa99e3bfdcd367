package engine

// Player is the decision strategy behind one seat. Every call receives a
// copy of the full game state; mutating it has no effect on the game.
type Player interface {
	// Bid is called once per seat per bidding cycle. Negative bids are
	// treated as zero; unaffordable bids fail the step.
	Bid(info GameInfo) int8
	// PickCard is called once per cycle for the highest bidder. It returns
	// the stack position to buy and the inventory cards paying for it.
	PickCard(info GameInfo) (int, CardChoice)
	// Reinvest is called once per seat per reinvestment round and returns
	// the inventory cards to flip.
	Reinvest(info GameInfo) CardChoice
}
