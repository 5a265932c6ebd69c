package agent

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
)

// Policy - picks the next action for an observation.
type Policy interface {
	SelectAction(obs entity.Board) int
}

// RandomPolicy - plays uniformly over all cells, occupied or not.
// Illegal picks are penalized by the environment, not filtered here.
type RandomPolicy struct {
	rng *rand.Rand
}

func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (that *RandomPolicy) SelectAction(_ entity.Board) int {
	return that.rng.Intn(entity.BoardCells)
}
