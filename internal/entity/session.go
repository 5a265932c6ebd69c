package entity

// Session identifies one external caller: a training worker driving
// episodes, or a human playing matches. A session owns at most one live
// episode and one live match at a time.
type Session struct {
	ID        string `json:"id"`
	EpisodeID string `json:"episode_id,omitempty"`
	MatchID   string `json:"match_id,omitempty"`
}
