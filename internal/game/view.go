// internal/game/view.go
package game

import (
	"github.com/google/uuid"
)

// PlayerSummary is the public roster entry inside a snapshot. It never
// carries a hand.
type PlayerSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Score        int       `json:"score"`
	IsCzar       bool      `json:"isCzar"`
	HasSubmitted bool      `json:"hasSubmitted"`
}

// SubmissionView is one entry of the judging/reveal list. During judging only
// ID (the opaque selection token) and Card are populated; round_end re-emits
// the same entries, in the same order, with the authors attached.
type SubmissionView struct {
	ID         uuid.UUID  `json:"id"`
	Card       string     `json:"card"`
	PlayerID   *uuid.UUID `json:"playerId,omitempty"`
	PlayerName string     `json:"playerName,omitempty"`
	IsWinner   bool       `json:"isWinner"`
}

// Snapshot is the personalized, phase-aware projection of one session for
// one requesting player.
type Snapshot struct {
	SessionCode            string           `json:"sessionCode"`
	Round                  int              `json:"round"`
	Phase                  Phase            `json:"phase"`
	CurrentPrompt          string           `json:"currentPrompt,omitempty"`
	Hand                   []string         `json:"hand"`
	IsCzar                 bool             `json:"isCzar"`
	Players                []PlayerSummary  `json:"players"`
	Submissions            []SubmissionView `json:"submissions,omitempty"`
	SubmissionCount        int              `json:"submissionCount"`
	TotalSubmissionsNeeded int              `json:"totalSubmissionsNeeded"`
	LastWinner             string           `json:"lastWinner,omitempty"`
}

// SnapshotFor projects the session for a single viewer: own hand only (and
// none while judging as czar), roster summaries without hands, and the
// submissions list anonymized until the reveal.
func (s *Session) SnapshotFor(viewerID uuid.UUID) Snapshot {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	czar := s.czar()
	snap := Snapshot{
		SessionCode:            s.Code,
		Round:                  s.Round,
		Phase:                  s.Phase,
		CurrentPrompt:          s.CurrentPrompt,
		Hand:                   []string{},
		IsCzar:                 czar != nil && czar.ID == viewerID,
		Players:                make([]PlayerSummary, 0, len(s.Players)),
		SubmissionCount:        len(s.Submissions),
		TotalSubmissionsNeeded: max(len(s.Players)-1, 0),
	}

	for _, p := range s.Players {
		_, submitted := s.Submissions[p.ID]
		snap.Players = append(snap.Players, PlayerSummary{
			ID:           p.ID,
			Name:         p.Name,
			Score:        s.Scores[p.ID],
			IsCzar:       czar != nil && czar.ID == p.ID,
			HasSubmitted: submitted,
		})
		if p.ID == viewerID && !snap.IsCzar {
			snap.Hand = append(snap.Hand, p.Hand...)
		}
	}

	switch s.Phase {
	case PhaseJudging:
		for _, sub := range s.reveal {
			snap.Submissions = append(snap.Submissions, SubmissionView{
				ID:   sub.Token,
				Card: sub.Card,
			})
		}
	case PhaseRoundEnd:
		for _, sub := range s.reveal {
			pid := sub.PlayerID
			snap.Submissions = append(snap.Submissions, SubmissionView{
				ID:         sub.Token,
				Card:       sub.Card,
				PlayerID:   &pid,
				PlayerName: s.playerName(pid),
				IsWinner:   pid == s.LastWinner,
			})
		}
		if s.LastWinner != uuid.Nil {
			snap.LastWinner = s.playerName(s.LastWinner)
		}
	}
	return snap
}

// playerName looks up a display name on the current roster; empty when the
// player has since left. Caller holds Mu.
func (s *Session) playerName(id uuid.UUID) string {
	if idx := s.playerIndex(id); idx >= 0 {
		return s.Players[idx].Name
	}
	return ""
}
