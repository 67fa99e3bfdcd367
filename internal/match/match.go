// Package match wraps an engine game in a session: identities for the game
// and its seats, serialised stepping, event broadcasting and a game-end
// callback.
package match

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/jason-s-yu/gemstone/engine"
	"github.com/jason-s-yu/gemstone/notation"
)

var (
	ErrAlreadyStarted = errors.New("match already started")
	ErrNotStarted     = errors.New("match not started")
)

// Seat binds a strategy to a stable identity.
type Seat struct {
	ID       uuid.UUID
	Name     string
	Strategy engine.Player
}

// Match is a single game session. All exported methods lock Mu.
type Match struct {
	ID    uuid.UUID
	Seed  uint64
	Rules engine.HouseRules

	// ShuffleSeats randomises the seating order from Seed when the match starts.
	ShuffleSeats bool

	Seats []Seat

	Mu sync.Mutex

	// Communication callbacks
	BroadcastFn func(ev Event) // receives every event, in order
	OnGameEnd   OnGameEndFunc

	Log *logrus.Entry

	game        *engine.Game
	actionIndex int
	over        bool
}

// New creates an empty match with a fresh ID.
func New(seed uint64, rules engine.HouseRules) *Match {
	id := uuid.New()
	return &Match{
		ID:    id,
		Seed:  seed,
		Rules: rules,
		Log:   logrus.WithField("match_id", id),
	}
}

// AddSeat adds a strategy before the match starts and returns its seat ID.
func (m *Match) AddSeat(name string, p engine.Player) (uuid.UUID, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if m.game != nil {
		return uuid.Nil, ErrAlreadyStarted
	}
	if len(m.Seats) >= engine.MaxPlayers {
		return uuid.Nil, fmt.Errorf("match %s: %w", m.ID, engine.ErrReachedPlayerLimit)
	}
	seat := Seat{ID: uuid.New(), Name: name, Strategy: p}
	m.Seats = append(m.Seats, seat)
	m.Log.WithFields(logrus.Fields{"seat_id": seat.ID, "name": name}).Debug("seat added")
	return seat.ID, nil
}

// seatPlayer tags a strategy with its seat so shuffled order can be read back.
type seatPlayer struct {
	engine.Player
	seat int
}

// Start deals the first stack.
func (m *Match) Start() error {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if m.game != nil {
		return ErrAlreadyStarted
	}

	var setup engine.GameSetup
	for i, s := range m.Seats {
		if err := setup.AddPlayer(&seatPlayer{Player: s.Strategy, seat: i}); err != nil {
			return fmt.Errorf("match %s: %w", m.ID, err)
		}
	}
	if m.ShuffleSeats {
		setup.ShufflePlayers(rand.New(rand.NewSource(m.Seed)))
	}

	g, err := setup.Finish(m.Seed, m.Rules)
	if err != nil {
		return fmt.Errorf("match %s: %w", m.ID, err)
	}

	seated := make([]Seat, 0, len(m.Seats))
	for _, p := range setup.Players() {
		seated = append(seated, m.Seats[p.(*seatPlayer).seat])
	}
	m.Seats = seated
	m.game = g

	info := g.Info()
	m.Log.WithFields(logrus.Fields{
		"players":  len(m.Seats),
		"seed":     m.Seed,
		"notation": notation.Format(info),
	}).Info("match started")
	return nil
}

// Step performs one decision and broadcasts its events. A failed step
// changes nothing and broadcasts nothing.
func (m *Match) Step() (done bool, err error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.step()
}

// step assumes lock is held by caller.
func (m *Match) step() (bool, error) {
	if m.game == nil {
		return false, ErrNotStarted
	}
	if m.over {
		return true, nil
	}

	before := m.game.Info()
	scores, done, err := m.game.Step()
	if err != nil {
		m.Log.WithFields(logrus.Fields{
			"player": before.CurrentPlayer(),
			"round":  before.RoundIndex(),
			"phase":  before.Phase().String(),
		}).WithError(err).Warn("step rejected")
		return false, fmt.Errorf("match %s: %w", m.ID, err)
	}

	info := m.game.Info()
	state := notation.Format(info)
	la := info.LastAction()

	ev := m.actionEvent(la)
	ev.Notation = state
	m.fireEvent(ev)

	if la.Kind == engine.ActionReinvest && la.RoundEnded {
		m.fireEvent(Event{
			Type:     EventRoundEnd,
			MatchID:  m.ID,
			Payload:  map[string]interface{}{"round": int(before.RoundIndex())},
			Notation: state,
		})
	}

	if done {
		m.endGame(info, scores)
	}
	return done, nil
}

// Run steps until the game ends, checking ctx between decisions.
func (m *Match) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := m.Step()
		if err != nil || done {
			return err
		}
	}
}

// Scores returns the current score of every seat.
func (m *Match) Scores() map[uuid.UUID]int {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	if m.game == nil {
		return nil
	}
	info := m.game.Info()
	return m.scoreMap(info.Scores())
}

// IsOver reports whether the game has ended.
func (m *Match) IsOver() bool {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.over
}

func (m *Match) scoreMap(scores engine.GameScores) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(m.Seats))
	for i, s := range m.Seats {
		out[s.ID] = int(scores[i])
	}
	return out
}

// endGame broadcasts the results and fires OnGameEnd.
// Assumes lock is held by caller.
func (m *Match) endGame(info engine.GameInfo, scores engine.GameScores) {
	m.over = true

	var winners []uuid.UUID
	for _, w := range scores.Winners(info.NumPlayers()) {
		winners = append(winners, m.Seats[w].ID)
	}
	final := m.scoreMap(scores)

	payload := map[string]interface{}{
		"scores":  map[string]int{},
		"winners": []string{},
	}
	for id, score := range final {
		payload["scores"].(map[string]int)[id.String()] = score
	}
	for _, id := range winners {
		payload["winners"] = append(payload["winners"].([]string), id.String())
	}
	m.fireEvent(Event{
		Type:     EventGameEnd,
		MatchID:  m.ID,
		Payload:  payload,
		Notation: notation.Format(info),
	})

	if m.OnGameEnd != nil {
		m.OnGameEnd(m.ID, winners, final)
	}
	m.Log.WithFields(logrus.Fields{"winners": winners, "scores": scores.String()}).Info("match ended")
}

// fireEvent hands ev to BroadcastFn.
// Assumes lock is held by caller.
func (m *Match) fireEvent(ev Event) {
	m.actionIndex++
	m.Log.WithFields(logrus.Fields{"event": ev.Type, "index": m.actionIndex}).Debug(ev.Notation)
	if m.BroadcastFn != nil {
		m.BroadcastFn(ev)
	}
}
