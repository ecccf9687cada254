// internal/game/session.go
package game

import (
	"errors"
	"math/rand"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/promptclash/promptclash/internal/cards"
)

const (
	// HandSize is the target hand dealt on join and topped up after each
	// submission while the response pool lasts.
	HandSize = 7

	// MinPlayers is the roster size required to run a round.
	MinPlayers = 3

	// MaxPlayers caps the roster.
	MaxPlayers = 10
)

// ErrSessionFull is returned by AddPlayer when the roster is at MaxPlayers.
// It is surfaced to the joining player in the join acknowledgement.
var ErrSessionFull = errors.New("session is full (max 10 players)")

// Player is one roster entry, owned exclusively by its Session.
type Player struct {
	ID   uuid.UUID
	Name string
	Hand []string
}

// Submission pairs one submitted card with its author and the opaque token
// viewers see while the author is still hidden.
type Submission struct {
	Token    uuid.UUID
	PlayerID uuid.UUID
	Card     string
}

// Session is one isolated game instance: roster, the two decks, and the
// round state machine. Every exported method takes Mu, executes one atomic
// mutation, and releases it; different sessions share no mutable state.
type Session struct {
	Code string

	Players       []*Player // roster order doubles as czar rotation order
	Scores        map[uuid.UUID]int
	Submissions   map[uuid.UUID]string
	CurrentPrompt string
	CzarIndex     int
	Phase         Phase
	Round         int
	LastWinner    uuid.UUID

	promptDeck   *cards.Deck
	responseDeck *cards.Deck

	// reveal is the anonymized submission order, shuffled once when judging
	// begins and reused verbatim for the round_end reveal so positions stay
	// correlated across both views.
	reveal []Submission

	Mu sync.Mutex
}

// NewSession returns an empty session in the waiting phase with both decks
// freshly shuffled.
func NewSession(code string) *Session {
	return &Session{
		Code:         code,
		Scores:       make(map[uuid.UUID]int),
		Submissions:  make(map[uuid.UUID]string),
		Phase:        PhaseWaiting,
		promptDeck:   cards.NewPromptDeck(),
		responseDeck: cards.NewResponseDeck(),
	}
}

// AddPlayer appends a roster entry and deals its starting hand. Joining twice
// with the same id is a no-op; a full roster returns ErrSessionFull.
func (s *Session) AddPlayer(id uuid.UUID, name string) error {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if s.playerIndex(id) >= 0 {
		return nil
	}
	if len(s.Players) >= MaxPlayers {
		return ErrSessionFull
	}

	p := &Player{ID: id, Name: name}
	for n := 0; n < HandSize; n++ {
		if s.responseDeck.Len() == 0 {
			break
		}
		p.Hand = append(p.Hand, s.responseDeck.Draw())
	}

	s.Players = append(s.Players, p)
	s.Scores[id] = 0
	return nil
}

// RemovePlayer deletes the player from the roster and the current round's
// submissions, preserving the czar identity when possible: removals before
// the czar shift the index down, and a departing czar wraps onto the next
// seat modulo the shrunken roster. Dropping below MinPlayers mid-round forces
// the session back to waiting. Returns false when the id is not on the roster.
func (s *Session) RemovePlayer(id uuid.UUID) bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	idx := s.playerIndex(id)
	if idx < 0 {
		return false
	}

	if idx < s.CzarIndex {
		s.CzarIndex--
	} else if idx == s.CzarIndex && len(s.Players) > 1 {
		s.CzarIndex = s.CzarIndex % (len(s.Players) - 1)
	}

	s.Players = slices.Delete(s.Players, idx, idx+1)
	delete(s.Submissions, id)

	if len(s.Players) == 0 {
		return true
	}
	if len(s.Players) < MinPlayers {
		if s.Phase != PhaseWaiting {
			s.forceWaiting()
		}
		return true
	}
	// A departing non-submitter can complete the submission set; take the
	// same playing -> judging edge the final submission would have taken.
	if s.Phase == PhasePlaying && len(s.Submissions) == len(s.Players)-1 {
		s.enterJudging()
	}
	return true
}

// StartRound moves waiting -> playing. No state changes outside the waiting
// phase or with fewer than MinPlayers on the roster.
func (s *Session) StartRound() bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if !s.allows(ActionStartRound) {
		return false
	}
	return s.beginRound()
}

// SubmitCard records one response card for the round. Every failure is a
// silent no-op: wrong phase, acting czar, duplicate submission, or a card
// not in the player's hand. The final outstanding submission flips the
// session into judging.
func (s *Session) SubmitCard(playerID uuid.UUID, card string) bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if !s.allows(ActionSubmitCard) {
		return false
	}
	czar := s.czar()
	if czar == nil || czar.ID == playerID {
		return false
	}
	if _, dup := s.Submissions[playerID]; dup {
		return false
	}
	idx := s.playerIndex(playerID)
	if idx < 0 {
		return false
	}
	p := s.Players[idx]
	ci := slices.Index(p.Hand, card)
	if ci < 0 {
		return false
	}

	p.Hand = slices.Delete(p.Hand, ci, ci+1)
	s.Submissions[playerID] = card

	// The response deck is never refilled, so hands can shrink below the
	// target size over a very long session.
	if s.responseDeck.Len() > 0 {
		p.Hand = append(p.Hand, s.responseDeck.Draw())
	}

	if len(s.Submissions) == len(s.Players)-1 {
		s.enterJudging()
	}
	return true
}

// SelectWinner is the czar's judging-phase pick. Silent no-op unless the
// caller is the current czar and the winner has a recorded submission.
func (s *Session) SelectWinner(callerID, winnerID uuid.UUID) bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if !s.allows(ActionSelectWinner) {
		return false
	}
	czar := s.czar()
	if czar == nil || czar.ID != callerID {
		return false
	}
	if _, ok := s.Submissions[winnerID]; !ok {
		return false
	}

	s.Scores[winnerID]++
	s.LastWinner = winnerID
	s.Phase = PhaseRoundEnd
	return true
}

// SubmissionPlayer resolves a reveal-order token to the submitting player,
// letting the czar pick a winner without any positional coupling to the
// anonymized list.
func (s *Session) SubmissionPlayer(token uuid.UUID) (uuid.UUID, bool) {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	for _, sub := range s.reveal {
		if sub.Token == token {
			return sub.PlayerID, true
		}
	}
	return uuid.Nil, false
}

// AdvanceRound rotates the czar and starts the next round. A roster that has
// shrunk below the minimum parks the session back in waiting instead of
// attempting an invalid round start.
func (s *Session) AdvanceRound() bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	if !s.allows(ActionAdvanceRound) {
		return false
	}
	if len(s.Players) < MinPlayers {
		s.forceWaiting()
		return true
	}
	s.CzarIndex = (s.CzarIndex + 1) % len(s.Players)
	return s.beginRound()
}

// Czar returns the current czar, or nil for an empty roster.
func (s *Session) Czar() *Player {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.czar()
}

// PlayerCount reports the roster size.
func (s *Session) PlayerCount() int {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return len(s.Players)
}

// PlayerIDs returns the roster ids in rotation order.
func (s *Session) PlayerIDs() []uuid.UUID {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	ids := make([]uuid.UUID, len(s.Players))
	for i, p := range s.Players {
		ids[i] = p.ID
	}
	return ids
}

// beginRound runs the shared waiting/round_end -> playing effects. Caller
// holds Mu.
func (s *Session) beginRound() bool {
	if len(s.Players) < MinPlayers {
		return false
	}
	s.Phase = PhasePlaying
	s.Round++
	s.Submissions = make(map[uuid.UUID]string)
	s.reveal = nil
	s.LastWinner = uuid.Nil
	if s.promptDeck.Len() == 0 {
		s.promptDeck.Refill()
	}
	s.CurrentPrompt = s.promptDeck.Draw()
	return true
}

// enterJudging freezes the anonymized reveal: one shuffle per round, shared
// by every viewer in both the judging and round_end views, with an opaque
// token per submission for winner selection. Caller holds Mu.
func (s *Session) enterJudging() {
	s.Phase = PhaseJudging
	s.reveal = make([]Submission, 0, len(s.Submissions))
	for pid, card := range s.Submissions {
		s.reveal = append(s.reveal, Submission{Token: uuid.New(), PlayerID: pid, Card: card})
	}
	rand.Shuffle(len(s.reveal), func(i, j int) {
		s.reveal[i], s.reveal[j] = s.reveal[j], s.reveal[i]
	})
}

// forceWaiting resets the round machinery after the roster drops below the
// minimum. Hands and the current prompt are deliberately left untouched.
// Caller holds Mu.
func (s *Session) forceWaiting() {
	s.Phase = PhaseWaiting
	s.Round = 0
	s.Submissions = make(map[uuid.UUID]string)
	s.reveal = nil
}

// playerIndex returns the roster position for id, or -1. Caller holds Mu.
func (s *Session) playerIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.Players, func(p *Player) bool { return p.ID == id })
}

// czar returns the current czar without locking. Caller holds Mu.
func (s *Session) czar() *Player {
	if len(s.Players) == 0 {
		return nil
	}
	return s.Players[s.CzarIndex]
}
