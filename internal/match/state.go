package match

import (
	"github.com/google/uuid"

	"github.com/jason-s-yu/gemstone/notation"
)

// SeatState is the public view of one seat.
type SeatState struct {
	SeatID        uuid.UUID `json:"seatId"`
	Name          string    `json:"name"`
	Inventory     string    `json:"inventory"` // notation card list
	Capital       int       `json:"capital"`
	Score         int       `json:"score"`
	IsCurrentTurn bool      `json:"isCurrentTurn"`
	IsHighBidder  bool      `json:"isHighBidder"`
}

// State is a full snapshot of a match. Every card in Gemstone is public,
// so one view serves all seats.
type State struct {
	MatchID    uuid.UUID   `json:"matchId"`
	Started    bool        `json:"started"`
	GameOver   bool        `json:"gameOver"`
	Round      int         `json:"round"`
	Phase      string      `json:"phase"`
	HighestBid int         `json:"highestBid"` // -1 while no bid stands
	Stack      string      `json:"stack"`
	Deck       int         `json:"deckRemaining"`
	Notation   string      `json:"notation"`
	Seats      []SeatState `json:"seats"`
}

// State returns a snapshot of the match.
func (m *Match) State() State {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	st := State{MatchID: m.ID, Started: m.game != nil, HighestBid: -1}
	if m.game == nil {
		for _, s := range m.Seats {
			st.Seats = append(st.Seats, SeatState{SeatID: s.ID, Name: s.Name})
		}
		return st
	}

	info := m.game.Info()
	stack := info.Stack()
	scores := info.Scores()
	st.GameOver = info.IsGameOver()
	st.Round = int(info.RoundIndex())
	st.Phase = info.Phase().String()
	st.HighestBid = int(info.HighestBid())
	st.Stack = notation.FormatCards(stack.Cards())
	st.Deck = info.DeckRemaining()
	st.Notation = notation.Format(info)
	for i, s := range m.Seats {
		inv := info.Inventory(uint8(i))
		st.Seats = append(st.Seats, SeatState{
			SeatID:        s.ID,
			Name:          s.Name,
			Inventory:     notation.FormatCards(inv.Cards()),
			Capital:       int(inv.Capital()),
			Score:         int(scores[i]),
			IsCurrentTurn: !st.GameOver && info.CurrentPlayer() == uint8(i),
			IsHighBidder:  info.HighestBid() >= 0 && info.HighestBidder() == uint8(i),
		})
	}
	return st
}

