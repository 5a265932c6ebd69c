package entity

// EpisodeResult is one durable row of training history: how a finished
// episode ended, its cumulative reward and how many steps it took.
type EpisodeResult struct {
	EpisodeID string  `json:"episode_id"`
	Outcome   string  `json:"outcome"`
	Reward    float64 `json:"reward"`
	Steps     int     `json:"steps"`
}

// OutcomeStats aggregates the history rows of a single outcome.
type OutcomeStats struct {
	Episodes  int     `json:"episodes"`
	AvgReward float64 `json:"avg_reward"`
	AvgSteps  float64 `json:"avg_steps"`
}

// ResultStats is the aggregate view of the whole training history.
type ResultStats struct {
	Episodes int                     `json:"episodes"`
	WinRate  float64                 `json:"win_rate"`
	Outcomes map[string]OutcomeStats `json:"outcomes"`
}
