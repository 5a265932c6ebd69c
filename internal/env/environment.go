package env

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-gym/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
)

// Terminal rewards. The transient illegal-move penalty is a Rules value,
// these three are fixed semantics of the game.
const (
	RewardWin  = 1.0
	RewardDraw = 0.0
	RewardLoss = -1.0
)

// Rules holds the reward-policy constants of the environment.
type Rules struct {
	// IllegalMovePenalty is returned for an illegal move that does not
	// yet forfeit the episode.
	IllegalMovePenalty float64
	// ForfeitAfter is the number of consecutive illegal moves that loses
	// the episode.
	ForfeitAfter int
}

func DefaultRules() Rules {
	return Rules{
		IllegalMovePenalty: -0.1,
		ForfeitAfter:       10,
	}
}

// Environment is the tic-tac-toe reinforcement-learning environment: it
// owns one episode's board, validates and applies the agent's moves,
// auto-plays the opponent and computes rewards and termination.
//
// It is not safe for concurrent use; callers serialize Reset/Step per
// instance.
type Environment struct {
	rules   Rules
	rng     *rand.Rand
	episode *entity.Episode
}

// New - creates an environment with a fresh empty episode. The random
// source drives the opponent's moves and is injected so runs can be
// reproduced.
func New(rules Rules, rng *rand.Rand) *Environment {
	return &Environment{
		rules:   rules,
		rng:     rng,
		episode: entity.NewEpisode(""),
	}
}

// Attach - wraps an existing episode, e.g. one loaded from storage, so
// the next Step continues where the episode left off.
func Attach(episode *entity.Episode, rules Rules, rng *rand.Rand) *Environment {
	return &Environment{
		rules:   rules,
		rng:     rng,
		episode: episode,
	}
}

// Episode - exposes the episode the environment is playing.
func (that *Environment) Episode() *entity.Episode {
	return that.episode
}

// Reset - clears the board and the retry counter and starts a new episode.
// It returns the initial all-empty observation.
func (that *Environment) Reset() entity.Board {
	id := that.episode.ID
	*that.episode = *entity.NewEpisode(id)

	return that.episode.Board
}

// Step - applies one agent action 0..8.
//
// An occupied target cell counts as an illegal move: the board stays
// unchanged, the retry counter grows and the move is penalized, until
// ForfeitAfter consecutive illegal moves lose the episode. A legal move
// places the agent's mark and, if the game is still open, the opponent
// immediately answers on a random empty cell. The returned result carries
// the updated observation, the reward and whether the episode ended.
func (that *Environment) Step(action int) (entity.StepResult, error) {
	episode := that.episode

	if action < 0 || action >= entity.BoardCells {
		return entity.StepResult{}, fmt.Errorf("%w: action %d", apperror.ErrActionOutOfRange, action)
	}

	if episode.IsFinished() {
		return entity.StepResult{}, fmt.Errorf("%w: outcome %s", apperror.ErrEpisodeFinished, episode.Outcome)
	}

	episode.Steps++

	if episode.Board[action] != entity.EmptyCell {
		return that.illegalMove(), nil
	}

	episode.Retries = 0
	episode.Board[action] = entity.AgentMark

	if episode.Board.Winner() == entity.AgentMark {
		return that.finish(entity.OutcomeAgentWin, RewardWin), nil
	}

	if episode.Board.IsFull() {
		return that.finish(entity.OutcomeDraw, RewardDraw), nil
	}

	that.playOpponent()

	if episode.Board.Winner() == entity.OpponentMark {
		return that.finish(entity.OutcomeOpponentWin, RewardLoss), nil
	}

	if episode.Board.IsFull() {
		return that.finish(entity.OutcomeDraw, RewardDraw), nil
	}

	return that.result(0, false), nil
}

// illegalMove - penalizes an attempt on an occupied cell; the observation
// stays unchanged in both branches.
func (that *Environment) illegalMove() entity.StepResult {
	episode := that.episode

	episode.Retries++
	if episode.Retries >= that.rules.ForfeitAfter {
		return that.finish(entity.OutcomeForfeit, RewardLoss)
	}

	return that.result(that.rules.IllegalMovePenalty, false)
}

// playOpponent - places the opponent's mark on a uniformly random empty
// cell.
func (that *Environment) playOpponent() {
	empty := that.episode.Board.EmptyCells()
	cell := empty[that.rng.Intn(len(empty))]
	that.episode.Board[cell] = entity.OpponentMark
}

func (that *Environment) finish(outcome string, reward float64) entity.StepResult {
	that.episode.Finish(outcome)

	return that.result(reward, true)
}

func (that *Environment) result(reward float64, terminal bool) entity.StepResult {
	that.episode.Reward += reward

	return entity.StepResult{
		Observation: that.episode.Board,
		Reward:      reward,
		Terminal:    terminal,
		Outcome:     that.episode.Outcome,
	}
}
