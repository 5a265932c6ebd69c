package apperror

import "errors"

var (
	ErrEpisodeFinished  = errors.New("episode is already finished")
	ErrNoActiveEpisode  = errors.New("no active episode")
	ErrActionOutOfRange = errors.New("action index out of range")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrMatchFinished    = errors.New("match is already finished")
	ErrNoActiveMatch    = errors.New("no active match")
)
