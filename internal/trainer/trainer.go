package trainer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-gym/internal/agent"
	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
	"github.com/rocketscienceinc/tictactoe-gym/internal/env"
	"github.com/rocketscienceinc/tictactoe-gym/internal/pkg"
)

type resultRepo interface {
	Create(ctx context.Context, result *entity.EpisodeResult) error
}

type learner interface {
	agent.Policy
	Update(obs entity.Board, action int, reward float64, next entity.Board, terminal bool)
	States() int
}

// Trainer - drives self-play episodes against the environment and
// feeds the learner with one-step updates. The first warmup episodes
// act through the exploration policy so the value table is seeded
// before the learner's own picks take over.
type Trainer struct {
	logger      *slog.Logger
	environment *env.Environment
	exploration agent.Policy
	learner     learner
	resultRepo  resultRepo

	episodes    int
	warmup      int
	reportEvery int
}

func New(logger *slog.Logger, environment *env.Environment, exploration agent.Policy, learner learner, resultRepo resultRepo, episodes, warmup, reportEvery int) *Trainer {
	return &Trainer{
		logger:      logger,
		environment: environment,
		exploration: exploration,
		learner:     learner,
		resultRepo:  resultRepo,

		episodes:    episodes,
		warmup:      warmup,
		reportEvery: reportEvery,
	}
}

// Run - plays the configured number of episodes, recording each result.
// Stops early when the context is canceled.
func (that *Trainer) Run(ctx context.Context) error {
	log := that.logger.With("component", "trainer")

	log.Info("training started", "episodes", that.episodes, "warmup", that.warmup)

	outcomes := make(map[string]int)

	for count := 1; count <= that.episodes; count++ {
		select {
		case <-ctx.Done():
			log.Info("training interrupted", "played", count-1)
			return nil
		default:
		}

		episode, err := that.playEpisode(ctx, that.policyFor(count))
		if err != nil {
			return fmt.Errorf("failed to play episode: %w", err)
		}

		outcomes[episode.Outcome]++

		if that.reportEvery > 0 && count%that.reportEvery == 0 {
			log.Info("training progress",
				"episode", count,
				"states", that.learner.States(),
				"wins", outcomes[entity.OutcomeAgentWin],
				"losses", outcomes[entity.OutcomeOpponentWin],
				"draws", outcomes[entity.OutcomeDraw],
				"forfeits", outcomes[entity.OutcomeForfeit],
			)
		}
	}

	log.Info("training finished",
		"episodes", that.episodes,
		"states", that.learner.States(),
		"wins", outcomes[entity.OutcomeAgentWin],
		"losses", outcomes[entity.OutcomeOpponentWin],
		"draws", outcomes[entity.OutcomeDraw],
		"forfeits", outcomes[entity.OutcomeForfeit],
	)

	return nil
}

// policyFor - picks the acting policy for an episode: pure exploration
// during the warmup, the learner afterwards.
func (that *Trainer) policyFor(count int) agent.Policy {
	if count <= that.warmup {
		return that.exploration
	}

	return that.learner
}

// playEpisode - runs a single episode to its terminal observation and
// stores the result row.
func (that *Trainer) playEpisode(ctx context.Context, policy agent.Policy) (*entity.Episode, error) {
	obs := that.environment.Reset()
	that.environment.Episode().ID = pkg.GenerateEpisodeID()

	for {
		action := policy.SelectAction(obs)

		step, err := that.environment.Step(action)
		if err != nil {
			return nil, fmt.Errorf("failed to step: %w", err)
		}

		that.learner.Update(obs, action, step.Reward, step.Observation, step.Terminal)
		obs = step.Observation

		if step.Terminal {
			break
		}
	}

	episode := that.environment.Episode()

	result := &entity.EpisodeResult{
		EpisodeID: episode.ID,
		Outcome:   episode.Outcome,
		Reward:    episode.Reward,
		Steps:     episode.Steps,
	}

	if err := that.resultRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to record episode result: %w", err)
	}

	return episode, nil
}
