package entity

const (
	TurnAgent = "agent"
	TurnHuman = "human"

	WinnerAgent = "agent"
	WinnerHuman = "human"
	WinnerTie   = "-"
)

// Match is an exhibition game between a human and the trained agent. The
// agent plays AgentMark and opens the game, since that is the seat it was
// trained in; the human answers with OpponentMark.
type Match struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   string `json:"turn,omitempty"`
	Status string `json:"status"`
	Winner string `json:"winner,omitempty"`
}

func NewMatch(id string) *Match {
	return &Match{
		ID:     id,
		Turn:   TurnAgent,
		Status: StatusOngoing,
	}
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

// UpdateState - checks the board after a move and finishes the match when
// a line is complete or no cell is left.
func (that *Match) UpdateState() {
	switch winner := that.Board.Winner(); winner {
	case AgentMark:
		that.Winner = WinnerAgent
		that.Status = StatusFinished
		that.Turn = ""
	case OpponentMark:
		that.Winner = WinnerHuman
		that.Status = StatusFinished
		that.Turn = ""
	default:
		if that.Board.IsFull() {
			that.Winner = WinnerTie
			that.Status = StatusFinished
			that.Turn = ""
		}
	}
}
