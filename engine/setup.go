package engine

import "golang.org/x/exp/rand"

// GameSetup collects the seats of a game before it starts.
type GameSetup struct {
	players []Player
}

// AddPlayer appends a seat. It fails once four seats are taken.
func (s *GameSetup) AddPlayer(p Player) error {
	if len(s.players) >= MaxPlayers {
		return ErrReachedPlayerLimit
	}
	s.players = append(s.players, p)
	return nil
}

// NumPlayers returns the number of seats added so far.
func (s *GameSetup) NumPlayers() int { return len(s.players) }

// Players returns the seats in their current order.
func (s *GameSetup) Players() []Player { return append([]Player(nil), s.players...) }

// ShufflePlayers randomises the seating order so every seat has an equal
// chance to start.
func (s *GameSetup) ShufflePlayers(rng *rand.Rand) {
	rng.Shuffle(len(s.players), func(i, j int) {
		s.players[i], s.players[j] = s.players[j], s.players[i]
	})
}

// Finish ends the setup and returns a game with the first stack dealt. It
// fails with fewer than two seats.
func (s *GameSetup) Finish(seed uint64, rules HouseRules) (*Game, error) {
	if len(s.players) < MinPlayers {
		return nil, ErrTooFewPlayers
	}
	return NewGame(s.players, seed, rules)
}
