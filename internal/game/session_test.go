// internal/game/session_test.go
package game

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptclash/promptclash/internal/cards"
)

// setupTestSession seats numPlayers fresh players on a new session.
func setupTestSession(t *testing.T, numPlayers int) (*Session, []uuid.UUID) {
	t.Helper()
	s := NewSession("TEST01")
	ids := make([]uuid.UUID, numPlayers)
	for i := 0; i < numPlayers; i++ {
		ids[i] = uuid.New()
		require.NoError(t, s.AddPlayer(ids[i], fmt.Sprintf("player%d", i)))
	}
	return s, ids
}

// handCard returns the first card of a player's hand.
func handCard(t *testing.T, s *Session, id uuid.UUID) string {
	t.Helper()
	s.Mu.Lock()
	defer s.Mu.Unlock()
	idx := s.playerIndex(id)
	require.GreaterOrEqual(t, idx, 0)
	require.NotEmpty(t, s.Players[idx].Hand)
	return s.Players[idx].Hand[0]
}

func TestAddPlayerDealsHand(t *testing.T) {
	s, ids := setupTestSession(t, 3)

	assert.Equal(t, 3, s.PlayerCount())
	for i, id := range ids {
		assert.Equal(t, id, s.Players[i].ID, "roster preserves join order")
		assert.Len(t, s.Players[i].Hand, HandSize)
		assert.Equal(t, 0, s.Scores[id])
	}
	assert.Equal(t, PhaseWaiting, s.Phase)
	assert.Equal(t, 0, s.Round)
}

func TestAddPlayerDuplicateIsNoop(t *testing.T) {
	s, ids := setupTestSession(t, 3)

	require.NoError(t, s.AddPlayer(ids[0], "player0 again"))
	assert.Equal(t, 3, s.PlayerCount())
	assert.Equal(t, "player0", s.Players[0].Name)
}

func TestAddPlayerFull(t *testing.T) {
	s, _ := setupTestSession(t, MaxPlayers)

	err := s.AddPlayer(uuid.New(), "straggler")
	assert.ErrorIs(t, err, ErrSessionFull)
	assert.Equal(t, MaxPlayers, s.PlayerCount())
}

func TestStartRoundRequiresThreePlayers(t *testing.T) {
	s, _ := setupTestSession(t, 2)

	assert.False(t, s.StartRound())
	assert.Equal(t, PhaseWaiting, s.Phase)
	assert.Equal(t, 0, s.Round)
	assert.Empty(t, s.CurrentPrompt)
}

func TestStartRound(t *testing.T) {
	s, _ := setupTestSession(t, 3)

	require.True(t, s.StartRound())
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, 1, s.Round)
	assert.NotEmpty(t, s.CurrentPrompt)
	assert.Empty(t, s.Submissions)
	assert.Equal(t, uuid.Nil, s.LastWinner)
	assert.Equal(t, 0, s.CzarIndex)
}

func TestStartRoundOutsideWaitingIsNoop(t *testing.T) {
	s, _ := setupTestSession(t, 3)
	require.True(t, s.StartRound())

	prompt := s.CurrentPrompt
	assert.False(t, s.StartRound())
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, prompt, s.CurrentPrompt)
}

// Full round: A is czar, B and C submit, phase flips to judging at the final
// submission, A picks B, B scores.
func TestRoundLifecycle(t *testing.T) {
	s, ids := setupTestSession(t, 3)
	a, b, c := ids[0], ids[1], ids[2]
	require.True(t, s.StartRound())
	require.Equal(t, a, s.Czar().ID)

	cardB := handCard(t, s, b)
	require.True(t, s.SubmitCard(b, cardB))
	assert.Equal(t, PhasePlaying, s.Phase, "one of two submissions in")

	cardC := handCard(t, s, c)
	require.True(t, s.SubmitCard(c, cardC))
	assert.Equal(t, PhaseJudging, s.Phase, "all non-czar players submitted")
	assert.Len(t, s.Submissions, 2)

	require.True(t, s.SelectWinner(a, b))
	assert.Equal(t, PhaseRoundEnd, s.Phase)
	assert.Equal(t, 1, s.Scores[b])
	assert.Equal(t, 0, s.Scores[c])
	assert.Equal(t, b, s.LastWinner)
}

func TestSubmitCardGuards(t *testing.T) {
	s, ids := setupTestSession(t, 3)
	a, b := ids[0], ids[1]

	// Wrong phase.
	assert.False(t, s.SubmitCard(b, handCard(t, s, b)))

	require.True(t, s.StartRound())

	// Czar may not submit.
	assert.False(t, s.SubmitCard(a, handCard(t, s, a)))
	assert.Empty(t, s.Submissions)

	// Card must be in hand.
	assert.False(t, s.SubmitCard(b, "not a card anyone holds"))
	assert.Empty(t, s.Submissions)

	// Duplicate submission never grows the set.
	cardB := handCard(t, s, b)
	require.True(t, s.SubmitCard(b, cardB))
	assert.False(t, s.SubmitCard(b, handCard(t, s, b)))
	assert.False(t, s.SubmitCard(b, cardB), "resubmitting the same card")
	assert.Len(t, s.Submissions, 1)

	// Unknown player.
	assert.False(t, s.SubmitCard(uuid.New(), cardB))
	assert.Len(t, s.Submissions, 1)
}

func TestSubmitCardReplacesFromDeck(t *testing.T) {
	s, ids := setupTestSession(t, 3)
	b := ids[1]
	require.True(t, s.StartRound())

	cardB := handCard(t, s, b)
	require.True(t, s.SubmitCard(b, cardB))

	s.Mu.Lock()
	defer s.Mu.Unlock()
	hand := s.Players[s.playerIndex(b)].Hand
	assert.Len(t, hand, HandSize, "replacement drawn")
	assert.NotContains(t, hand, cardB, "submitted card left the hand")
	assert.Equal(t, cardB, s.Submissions[b])
}

func TestJudgingStartsExactlyAtEquality(t *testing.T) {
	s, ids := setupTestSession(t, 4)
	require.True(t, s.StartRound())

	for i, id := range ids[1:] {
		require.True(t, s.SubmitCard(id, handCard(t, s, id)))
		require.LessOrEqual(t, len(s.Submissions), len(s.Players)-1)
		if i < 2 {
			assert.Equal(t, PhasePlaying, s.Phase)
		} else {
			assert.Equal(t, PhaseJudging, s.Phase)
		}
	}
}

func TestSelectWinnerGuards(t *testing.T) {
	s, ids := setupTestSession(t, 3)
	a, b, c := ids[0], ids[1], ids[2]

	// Wrong phase.
	assert.False(t, s.SelectWinner(a, b))

	require.True(t, s.StartRound())
	require.True(t, s.SubmitCard(b, handCard(t, s, b)))
	assert.False(t, s.SelectWinner(a, b), "still playing")

	require.True(t, s.SubmitCard(c, handCard(t, s, c)))
	require.Equal(t, PhaseJudging, s.Phase)

	// Only the czar selects.
	assert.False(t, s.SelectWinner(b, c))
	// The winner must have submitted.
	assert.False(t, s.SelectWinner(a, a))
	assert.False(t, s.SelectWinner(a, uuid.New()))
	assert.Equal(t, PhaseJudging, s.Phase)
	assert.Equal(t, 0, s.Scores[b])

	require.True(t, s.SelectWinner(a, c))
	assert.Equal(t, 1, s.Scores[c])
}

func TestAdvanceRoundRotatesCzar(t *testing.T) {
	s, ids := setupTestSession(t, 3)
	a, b, c := ids[0], ids[1], ids[2]
	require.True(t, s.StartRound())
	require.True(t, s.SubmitCard(b, handCard(t, s, b)))
	require.True(t, s.SubmitCard(c, handCard(t, s, c)))
	require.True(t, s.SelectWinner(a, b))

	require.True(t, s.AdvanceRound())
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, 2, s.Round)
	assert.Equal(t, 1, s.CzarIndex)
	assert.Equal(t, b, s.Czar().ID)
	assert.Empty(t, s.Submissions)
	assert.Equal(t, uuid.Nil, s.LastWinner)
}

func TestAdvanceRoundOutsideRoundEndIsNoop(t *testing.T) {
	s, _ := setupTestSession(t, 3)

	assert.False(t, s.AdvanceRound())
	require.True(t, s.StartRound())
	assert.False(t, s.AdvanceRound())
	assert.Equal(t, 0, s.CzarIndex)
	assert.Equal(t, 1, s.Round)
}

// Czar index maintenance across every removal position relative to the czar.
func TestRemovePlayerCzarIndex(t *testing.T) {
	tests := []struct {
		name      string
		czarIndex int
		removeIdx int
		wantIndex int
	}{
		{"before czar", 2, 0, 1},
		{"immediately before czar", 2, 1, 1},
		{"after czar", 1, 3, 1},
		{"czar itself keeps seat number", 1, 1, 1},
		{"czar at end wraps to front", 3, 3, 0},
		{"first seat czar", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ids := setupTestSession(t, 4)
			s.CzarIndex = tt.czarIndex
			czarID := s.Players[tt.czarIndex].ID

			require.True(t, s.RemovePlayer(ids[tt.removeIdx]))

			assert.Equal(t, 3, s.PlayerCount())
			require.Less(t, s.CzarIndex, s.PlayerCount(), "czar index stays in bounds")
			assert.Equal(t, tt.wantIndex, s.CzarIndex)
			if tt.removeIdx != tt.czarIndex {
				assert.Equal(t, czarID, s.Czar().ID, "czar identity preserved")
			}
		})
	}
}

func TestRemoveUnknownPlayer(t *testing.T) {
	s, _ := setupTestSession(t, 3)
	assert.False(t, s.RemovePlayer(uuid.New()))
	assert.Equal(t, 3, s.PlayerCount())
}

// Dropping under three players mid-round resets the machine but not the
// table: prompt and hands survive.
func TestRemovePlayerForcesWaiting(t *testing.T) {
	s, ids := setupTestSession(t, 3)
	b := ids[1]
	require.True(t, s.StartRound())
	require.True(t, s.SubmitCard(b, handCard(t, s, b)))
	prompt := s.CurrentPrompt

	require.True(t, s.RemovePlayer(ids[2]))

	assert.Equal(t, PhaseWaiting, s.Phase)
	assert.Equal(t, 0, s.Round)
	assert.Empty(t, s.Submissions)
	assert.Equal(t, prompt, s.CurrentPrompt, "prompt left as-is")
	assert.Len(t, s.Players[0].Hand, HandSize, "hands left as-is")
}

// A non-submitter leaving can be the event that completes the submission set.
func TestRemovePlayerCompletesSubmissions(t *testing.T) {
	s, ids := setupTestSession(t, 4)
	b, c, d := ids[1], ids[2], ids[3]
	require.True(t, s.StartRound())
	require.True(t, s.SubmitCard(b, handCard(t, s, b)))
	require.True(t, s.SubmitCard(c, handCard(t, s, c)))
	require.Equal(t, PhasePlaying, s.Phase)

	require.True(t, s.RemovePlayer(d))

	assert.Equal(t, PhaseJudging, s.Phase)
	assert.Len(t, s.Submissions, 2)
}

func TestRemoveLastPlayerEmptiesRoster(t *testing.T) {
	s, ids := setupTestSession(t, 3)
	for _, id := range ids {
		require.True(t, s.RemovePlayer(id))
	}
	assert.Equal(t, 0, s.PlayerCount())
}

// A long-running session: prompts refill when the prompt pool empties, while
// the response pool drains without refill and submitted cards never return
// to a hand.
func TestManyRounds(t *testing.T) {
	s, ids := setupTestSession(t, 3)
	require.Greater(t, 38, len(cards.PromptCards), "run must outlast the prompt catalog")

	submitted := make(map[string]bool)
	for round := 1; round <= 38; round++ {
		if round == 1 {
			require.True(t, s.StartRound())
		} else {
			require.True(t, s.AdvanceRound())
		}
		require.Equal(t, round, s.Round)
		require.NotEmpty(t, s.CurrentPrompt)

		czarID := s.Czar().ID
		for _, id := range ids {
			if id == czarID {
				continue
			}
			card := handCard(t, s, id)
			assert.False(t, submitted[card], "submitted card %q reappeared in a hand", card)
			require.True(t, s.SubmitCard(id, card))
			submitted[card] = true
		}
		require.Equal(t, PhaseJudging, s.Phase)

		var winner uuid.UUID
		for _, id := range ids {
			if id != czarID {
				winner = id
				break
			}
		}
		require.True(t, s.SelectWinner(czarID, winner))
	}
}
