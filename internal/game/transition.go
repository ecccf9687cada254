// internal/game/transition.go
package game

// Phase is the round state machine position of a session. Sessions cycle
// waiting -> playing -> judging -> round_end -> playing until destroyed.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhasePlaying  Phase = "playing"
	PhaseJudging  Phase = "judging"
	PhaseRoundEnd Phase = "round_end"
)

// Action names a player-driven mutation checked against the transition table.
type Action string

const (
	ActionStartRound   Action = "start_round"
	ActionSubmitCard   Action = "submit_card"
	ActionSelectWinner Action = "select_winner"
	ActionAdvanceRound Action = "advance_round"
)

// transitions is the single source of truth for which action may fire in
// which phase. Guards beyond the phase itself (czar role, duplicate
// submission, roster size, card ownership) live with each action.
var transitions = map[Action]map[Phase]bool{
	ActionStartRound:   {PhaseWaiting: true},
	ActionSubmitCard:   {PhasePlaying: true},
	ActionSelectWinner: {PhaseJudging: true},
	ActionAdvanceRound: {PhaseRoundEnd: true},
}

// allows checks the phase gate for an action. Caller holds Mu.
func (s *Session) allows(a Action) bool {
	return transitions[a][s.Phase]
}
