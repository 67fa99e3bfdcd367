package match

import (
	"github.com/google/uuid"

	"github.com/jason-s-yu/gemstone/engine"
)

// OnGameEndFunc is called once when a match finishes, with every tied
// winner and the final score of each seat.
type OnGameEndFunc func(matchID uuid.UUID, winners []uuid.UUID, scores map[uuid.UUID]int)

// EventType identifies a broadcast Event.
type EventType string

const (
	EventPlayerBid      EventType = "player_bid"      // a seat bid or passed
	EventPlayerPurchase EventType = "player_purchase" // the highest bidder bought a stack card
	EventPlayerReinvest EventType = "player_reinvest" // a seat flipped inventory cards
	EventRoundEnd       EventType = "round_end"       // coins reset, next stack dealt
	EventGameEnd        EventType = "game_end"        // includes results
)

// EventUser identifies a seat within an Event.
type EventUser struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// EventCard describes a card within an Event.
type EventCard struct {
	Code      string `json:"code"`
	Value     int    `json:"value"`
	Leveraged bool   `json:"leveraged,omitempty"`
	Idx       *int   `json:"idx,omitempty"` // stack position, if relevant
}

// Event is broadcast after every committed decision. Notation is the state
// after the decision.
type Event struct {
	Type     EventType              `json:"type"`
	MatchID  uuid.UUID              `json:"matchId"`
	User     *EventUser             `json:"user,omitempty"`
	Card     *EventCard             `json:"card,omitempty"`
	Payload  map[string]interface{} `json:"payload,omitempty"`
	Notation string                 `json:"notation"`
}

func newEventCard(c engine.Card, idx int) *EventCard {
	return &EventCard{Code: c.Code(), Value: int(c.Value()), Leveraged: c.IsLeveraged(), Idx: &idx}
}

// actionEvent translates the last committed decision into an event.
// Assumes lock is held by caller.
func (m *Match) actionEvent(la engine.LastAction) Event {
	ev := Event{MatchID: m.ID, User: m.eventUser(la.Player)}
	switch la.Kind {
	case engine.ActionBid:
		ev.Type = EventPlayerBid
		ev.Payload = map[string]interface{}{"bid": int(la.Bid), "leader": la.Leader}
	case engine.ActionPurchase:
		ev.Type = EventPlayerPurchase
		ev.Card = newEventCard(la.Card, int(la.StackIdx))
		ev.Payload = map[string]interface{}{"price": int(la.Bid), "payment": la.Choice.Indices()}
	case engine.ActionReinvest:
		ev.Type = EventPlayerReinvest
		ev.Payload = map[string]interface{}{"flipped": la.Choice.Indices()}
	}
	return ev
}

func (m *Match) eventUser(seat uint8) *EventUser {
	return &EventUser{ID: m.Seats[seat].ID, Name: m.Seats[seat].Name}
}
