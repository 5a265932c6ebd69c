package entity

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

const (
	OutcomeAgentWin    = "agent_win"
	OutcomeOpponentWin = "opponent_win"
	OutcomeDraw        = "draw"
	OutcomeForfeit     = "forfeit"
)

// Episode is one full game from an empty board to a terminal state. The
// agent always moves first, so the board never holds more opponent marks
// than agent marks, and at most one extra agent mark.
type Episode struct {
	ID      string  `json:"id"`
	Board   Board   `json:"board"`
	Retries int     `json:"retries"`
	Status  string  `json:"status"`
	Outcome string  `json:"outcome,omitempty"`
	Steps   int     `json:"steps"`
	Reward  float64 `json:"reward"`
}

func NewEpisode(id string) *Episode {
	return &Episode{
		ID:     id,
		Status: StatusOngoing,
	}
}

func (that *Episode) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Episode) IsFinished() bool {
	return that.Status == StatusFinished
}

// Finish - moves the episode into a terminal state with the given outcome.
func (that *Episode) Finish(outcome string) {
	that.Status = StatusFinished
	that.Outcome = outcome
}

// StepResult is what a single reset/step call hands back to the caller:
// the flattened board, the scalar reward and whether the episode ended.
type StepResult struct {
	Observation Board   `json:"observation"`
	Reward      float64 `json:"reward"`
	Terminal    bool    `json:"terminal"`
	Outcome     string  `json:"outcome,omitempty"`
}
