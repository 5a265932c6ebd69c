package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/tictactoe-gym/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
	"github.com/rocketscienceinc/tictactoe-gym/internal/env"
	"github.com/rocketscienceinc/tictactoe-gym/internal/pkg"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
}

type episodeRepo interface {
	CreateOrUpdate(ctx context.Context, episode *entity.Episode) error
	GetByID(ctx context.Context, id string) (*entity.Episode, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	Create(ctx context.Context, result *entity.EpisodeResult) error
}

// EnvManager - orchestrates session-scoped episodes over the live
// storage: reset starts a fresh episode, step applies one action and
// settles terminal episodes into the results history.
type EnvManager struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	episodeRepo episodeRepo
	resultRepo  resultRepo

	rules env.Rules

	// guards the shared opponent rng and step application
	mu  sync.Mutex
	rng *rand.Rand
}

func NewEnvManager(logger *slog.Logger, sessionRepo sessionRepo, episodeRepo episodeRepo, resultRepo resultRepo, rules env.Rules, rng *rand.Rand) *EnvManager {
	return &EnvManager{
		logger: logger,

		sessionRepo: sessionRepo,
		episodeRepo: episodeRepo,
		resultRepo:  resultRepo,

		rules: rules,
		rng:   rng,
	}
}

// GetOrCreateSession - returns the session for the given id, or creates
// a fresh one when the id is empty.
func (that *EnvManager) GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		session := &entity.Session{
			ID: pkg.GenerateNewSessionID(),
		}

		if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}

		return session, nil
	}

	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	return session, nil
}

// ResetEpisode - starts a new episode for the session. An ongoing
// episode is discarded silently.
func (that *EnvManager) ResetEpisode(ctx context.Context, sessionID string) (*entity.Episode, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	if session.EpisodeID != "" {
		that.discardEpisode(ctx, session.EpisodeID)
	}

	episode := entity.NewEpisode(pkg.GenerateEpisodeID())

	if err = that.episodeRepo.CreateOrUpdate(ctx, episode); err != nil {
		return nil, fmt.Errorf("failed to create episode: %w", err)
	}

	session.EpisodeID = episode.ID
	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return episode, nil
}

// StepEpisode - applies one action to the session's episode. On a
// terminal step the episode is recorded to the results history and
// removed from live storage.
func (that *EnvManager) StepEpisode(ctx context.Context, sessionID string, action int) (*entity.StepResult, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	if session.EpisodeID == "" {
		return nil, apperror.ErrNoActiveEpisode
	}

	episode, err := that.episodeRepo.GetByID(ctx, session.EpisodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get episode by id: %w", err)
	}

	that.mu.Lock()
	environment := env.Attach(episode, that.rules, that.rng)
	result, err := environment.Step(action)
	that.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("failed to step episode: %w", err)
	}

	if result.Terminal {
		that.finishEpisode(ctx, session, episode)

		return &result, nil
	}

	if err = that.episodeRepo.CreateOrUpdate(ctx, episode); err != nil {
		return nil, fmt.Errorf("failed to update episode: %w", err)
	}

	return &result, nil
}

// finishEpisode - settles a terminal episode: the result row is written
// to the history, the live copy is deleted and the session unbound.
func (that *EnvManager) finishEpisode(ctx context.Context, session *entity.Session, episode *entity.Episode) {
	log := that.logger.With("method", "finishEpisode")

	result := &entity.EpisodeResult{
		EpisodeID: episode.ID,
		Outcome:   episode.Outcome,
		Reward:    episode.Reward,
		Steps:     episode.Steps,
	}

	if err := that.resultRepo.Create(ctx, result); err != nil {
		log.Error("failed to record episode result", "error", err)
	}

	if err := that.episodeRepo.DeleteByID(ctx, episode.ID); err != nil {
		log.Error("failed to delete episode", "error", err)
	}

	session.EpisodeID = ""
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		log.Error("failed to unbind session", "error", err)
	}

	log.Info("episode finished", "episodeID", episode.ID, "outcome", episode.Outcome)
}

// discardEpisode - drops an abandoned episode without recording it.
func (that *EnvManager) discardEpisode(ctx context.Context, episodeID string) {
	log := that.logger.With("method", "discardEpisode")

	if err := that.episodeRepo.DeleteByID(ctx, episodeID); err != nil {
		log.Error("failed to delete abandoned episode", "error", err)
	}

	log.Info("episode discarded", "episodeID", episodeID)
}
