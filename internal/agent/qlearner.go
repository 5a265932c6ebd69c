package agent

import (
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
)

// QLearner - tabular one-step Q-learning over board observations.
// The trainer is the only writer; transports read the table while
// training runs, so lookups take the read lock.
type QLearner struct {
	mu     sync.RWMutex
	values map[string]*[entity.BoardCells]float64

	epsilon      float64
	learningRate float64
	discount     float64

	rng *rand.Rand
}

func NewQLearner(epsilon, learningRate, discount float64, rng *rand.Rand) *QLearner {
	return &QLearner{
		values:       make(map[string]*[entity.BoardCells]float64),
		epsilon:      epsilon,
		learningRate: learningRate,
		discount:     discount,
		rng:          rng,
	}
}

// SelectAction - epsilon-greedy pick over all cells.
func (that *QLearner) SelectAction(obs entity.Board) int {
	if that.rng.Float64() < that.epsilon {
		return that.rng.Intn(entity.BoardCells)
	}

	return that.BestAction(obs)
}

// BestAction - greedy pick over all cells; ties go to the lowest cell.
func (that *QLearner) BestAction(obs entity.Board) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	row, ok := that.values[obs.Key()]
	if !ok {
		return 0
	}

	best := 0
	for action := 1; action < entity.BoardCells; action++ {
		if row[action] > row[best] {
			best = action
		}
	}

	return best
}

// BestLegalAction - greedy pick restricted to the given cells.
func (that *QLearner) BestLegalAction(obs entity.Board, legal []int) int {
	if len(legal) == 0 {
		return -1
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	row, ok := that.values[obs.Key()]
	if !ok {
		return legal[0]
	}

	best := legal[0]
	for _, action := range legal[1:] {
		if row[action] > row[best] {
			best = action
		}
	}

	return best
}

// Update - applies the one-step temporal-difference rule
// Q(s,a) += alpha * (target - Q(s,a)), where the target is the reward
// plus the discounted best value of the next observation, or the bare
// reward when the episode ended.
func (that *QLearner) Update(obs entity.Board, action int, reward float64, next entity.Board, terminal bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	target := reward
	if !terminal {
		target += that.discount * that.maxValue(next)
	}

	row := that.row(obs)
	row[action] += that.learningRate * (target - row[action])
}

// States - number of observations the table has values for.
func (that *QLearner) States() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.values)
}

func (that *QLearner) row(obs entity.Board) *[entity.BoardCells]float64 {
	key := obs.Key()

	row, ok := that.values[key]
	if !ok {
		row = new([entity.BoardCells]float64)
		that.values[key] = row
	}

	return row
}

func (that *QLearner) maxValue(obs entity.Board) float64 {
	row, ok := that.values[obs.Key()]
	if !ok {
		return 0
	}

	best := row[0]
	for action := 1; action < entity.BoardCells; action++ {
		if row[action] > best {
			best = row[action]
		}
	}

	return best
}
