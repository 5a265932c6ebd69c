package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-gym/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
	"github.com/rocketscienceinc/tictactoe-gym/internal/env"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-gym/mocks/usecase"
)

var (
	errRedisDown       = errors.New("redis down")
	errSessionNotFound = errors.New("session not found")
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint: gosec // deterministic test source
}

func newEnvManager(t *testing.T) (*EnvManager, *mockedUseCase.MocksessionRepo, *mockedUseCase.MockepisodeRepo, *mockedUseCase.MockresultRepo) {
	t.Helper()

	mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
	mockEpisodeRepo := mockedUseCase.NewMockepisodeRepo(t)
	mockResultRepo := mockedUseCase.NewMockresultRepo(t)

	manager := NewEnvManager(newTestLogger(), mockSessionRepo, mockEpisodeRepo, mockResultRepo, env.DefaultRules(), newTestRand(1))

	return manager, mockSessionRepo, mockEpisodeRepo, mockResultRepo
}

func TestEnvManager_GetOrCreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a new session when the id is empty", func(t *testing.T) {
		// Given: a session repository accepting the new session
		manager, mockSessionRepo, _, _ := newEnvManager(t)

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Session")).
			Return(nil).
			Once()

		// When: calling GetOrCreateSession with an empty id
		session, err := manager.GetOrCreateSession(ctx, "")

		// Then: a new session with a generated id is returned
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Empty(t, session.EpisodeID)
	})

	t.Run("Returns the existing session", func(t *testing.T) {
		// Given: a stored session
		manager, mockSessionRepo, _, _ := newEnvManager(t)

		existing := &entity.Session{ID: "s-1", EpisodeID: "ep-1"}
		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(existing, nil).
			Once()

		// When: calling GetOrCreateSession with a known id
		session, err := manager.GetOrCreateSession(ctx, "s-1")

		// Then: the stored session is returned
		require.NoError(t, err)
		assert.Equal(t, existing, session)
	})

	t.Run("Returns error when the lookup fails", func(t *testing.T) {
		// Given: a failing session repository
		manager, mockSessionRepo, _, _ := newEnvManager(t)

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-err").
			Return((*entity.Session)(nil), errRedisDown).
			Once()

		// When: calling GetOrCreateSession
		session, err := manager.GetOrCreateSession(ctx, "s-err")

		// Then: the error is propagated
		require.Error(t, err)
		assert.Nil(t, session)
	})
}

func TestEnvManager_ResetEpisode(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts a fresh episode and binds it to the session", func(t *testing.T) {
		// Given: a session with no active episode
		manager, mockSessionRepo, mockEpisodeRepo, _ := newEnvManager(t)

		session := &entity.Session{ID: "s-1"}
		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockEpisodeRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Episode")).
			Return(nil).
			Once()

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, session).
			Return(nil).
			Once()

		// When: resetting
		episode, err := manager.ResetEpisode(ctx, "s-1")

		// Then: a fresh ongoing episode is bound to the session
		require.NoError(t, err)
		assert.Equal(t, entity.Board{}, episode.Board)
		assert.True(t, episode.IsOngoing())
		assert.Equal(t, episode.ID, session.EpisodeID)
	})

	t.Run("Discards the previous episode silently", func(t *testing.T) {
		// Given: a session with an ongoing episode
		manager, mockSessionRepo, mockEpisodeRepo, _ := newEnvManager(t)

		session := &entity.Session{ID: "s-1", EpisodeID: "ep-old"}
		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockEpisodeRepo.EXPECT().
			DeleteByID(mock.Anything, "ep-old").
			Return(nil).
			Once()

		mockEpisodeRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Episode")).
			Return(nil).
			Once()

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, session).
			Return(nil).
			Once()

		// When: resetting over it
		episode, err := manager.ResetEpisode(ctx, "s-1")

		// Then: the old episode is dropped and a new one bound
		require.NoError(t, err)
		assert.NotEqual(t, "ep-old", episode.ID)
		assert.Equal(t, episode.ID, session.EpisodeID)
	})

	t.Run("Returns error when the session is missing", func(t *testing.T) {
		// Given: no such session
		manager, mockSessionRepo, _, _ := newEnvManager(t)

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "ghost").
			Return((*entity.Session)(nil), errSessionNotFound).
			Once()

		// When: resetting
		episode, err := manager.ResetEpisode(ctx, "ghost")

		// Then: the error is propagated
		require.Error(t, err)
		assert.Nil(t, episode)
	})
}

func TestEnvManager_StepEpisode(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns error when no episode is active", func(t *testing.T) {
		// Given: a session without an episode
		manager, mockSessionRepo, _, _ := newEnvManager(t)

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(&entity.Session{ID: "s-1"}, nil).
			Once()

		// When: stepping
		result, err := manager.StepEpisode(ctx, "s-1", 4)

		// Then: the missing episode is reported
		require.ErrorIs(t, err, apperror.ErrNoActiveEpisode)
		assert.Nil(t, result)
	})

	t.Run("Applies a non-terminal move and persists the episode", func(t *testing.T) {
		// Given: a session with a fresh episode
		manager, mockSessionRepo, mockEpisodeRepo, _ := newEnvManager(t)

		session := &entity.Session{ID: "s-1", EpisodeID: "ep-1"}
		episode := entity.NewEpisode("ep-1")

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockEpisodeRepo.EXPECT().
			GetByID(mock.Anything, "ep-1").
			Return(episode, nil).
			Once()

		mockEpisodeRepo.EXPECT().
			CreateOrUpdate(mock.Anything, episode).
			Return(nil).
			Once()

		// When: playing the center
		result, err := manager.StepEpisode(ctx, "s-1", 4)

		// Then: the move and the opponent's reply are applied
		require.NoError(t, err)
		assert.False(t, result.Terminal)
		assert.Equal(t, 0.0, result.Reward)
		assert.Equal(t, entity.AgentMark, result.Observation[4])
		assert.Equal(t, 1, result.Observation.CountMarks(entity.AgentMark))
		assert.Equal(t, 1, result.Observation.CountMarks(entity.OpponentMark))
	})

	t.Run("Settles a terminal episode into the history", func(t *testing.T) {
		// Given: an episode one move away from the agent's win
		manager, mockSessionRepo, mockEpisodeRepo, mockResultRepo := newEnvManager(t)

		session := &entity.Session{ID: "s-1", EpisodeID: "ep-1"}
		episode := entity.NewEpisode("ep-1")
		episode.Board = entity.Board{
			entity.AgentMark, entity.AgentMark, entity.EmptyCell,
			entity.OpponentMark, entity.OpponentMark, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockEpisodeRepo.EXPECT().
			GetByID(mock.Anything, "ep-1").
			Return(episode, nil).
			Once()

		mockResultRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(result *entity.EpisodeResult) bool {
				return result.EpisodeID == "ep-1" && result.Outcome == entity.OutcomeAgentWin
			})).
			Return(nil).
			Once()

		mockEpisodeRepo.EXPECT().
			DeleteByID(mock.Anything, "ep-1").
			Return(nil).
			Once()

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, session).
			Return(nil).
			Once()

		// When: completing the winning line
		result, err := manager.StepEpisode(ctx, "s-1", 2)

		// Then: the win is returned and the session unbound
		require.NoError(t, err)
		assert.True(t, result.Terminal)
		assert.Equal(t, env.RewardWin, result.Reward)
		assert.Equal(t, entity.OutcomeAgentWin, result.Outcome)
		assert.Empty(t, session.EpisodeID)
	})

	t.Run("Rejects an out-of-range action without touching storage", func(t *testing.T) {
		// Given: a session with a fresh episode
		manager, mockSessionRepo, mockEpisodeRepo, _ := newEnvManager(t)

		session := &entity.Session{ID: "s-1", EpisodeID: "ep-1"}
		episode := entity.NewEpisode("ep-1")

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockEpisodeRepo.EXPECT().
			GetByID(mock.Anything, "ep-1").
			Return(episode, nil).
			Once()

		// When: stepping outside the action range
		result, err := manager.StepEpisode(ctx, "s-1", 9)

		// Then: the precondition violation is propagated
		require.ErrorIs(t, err, apperror.ErrActionOutOfRange)
		assert.Nil(t, result)
	})

	t.Run("Rejects a step on a finished episode", func(t *testing.T) {
		// Given: a finished episode still in live storage
		manager, mockSessionRepo, mockEpisodeRepo, _ := newEnvManager(t)

		session := &entity.Session{ID: "s-1", EpisodeID: "ep-1"}
		episode := entity.NewEpisode("ep-1")
		episode.Finish(entity.OutcomeDraw)

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockEpisodeRepo.EXPECT().
			GetByID(mock.Anything, "ep-1").
			Return(episode, nil).
			Once()

		// When: stepping anyway
		result, err := manager.StepEpisode(ctx, "s-1", 0)

		// Then: the violation is reported
		require.ErrorIs(t, err, apperror.ErrEpisodeFinished)
		assert.Nil(t, result)
	})
}
