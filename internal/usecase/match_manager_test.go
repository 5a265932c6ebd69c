package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-gym/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-gym/mocks/usecase"
)

func newMatchManager(t *testing.T) (*MatchManager, *mockedUseCase.MocksessionRepo, *mockedUseCase.MockmatchRepo, *mockedUseCase.MockmatchPolicy) {
	t.Helper()

	mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
	mockMatchRepo := mockedUseCase.NewMockmatchRepo(t)
	mockPolicy := mockedUseCase.NewMockmatchPolicy(t)

	manager := NewMatchManager(newTestLogger(), mockSessionRepo, mockMatchRepo, mockPolicy)

	return manager, mockSessionRepo, mockMatchRepo, mockPolicy
}

func TestMatchManager_NewMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts a match with the agent's opening move", func(t *testing.T) {
		// Given: a session without a match and a policy favoring the center
		manager, mockSessionRepo, mockMatchRepo, mockPolicy := newMatchManager(t)

		session := &entity.Session{ID: "s-1"}
		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockPolicy.EXPECT().
			BestLegalAction(entity.Board{}, mock.AnythingOfType("[]int")).
			Return(4).
			Once()

		mockMatchRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Match")).
			Return(nil).
			Once()

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, session).
			Return(nil).
			Once()

		// When: starting a new match
		match, err := manager.NewMatch(ctx, "s-1")

		// Then: the agent holds the center and the human is to move
		require.NoError(t, err)
		assert.Equal(t, entity.AgentMark, match.Board[4])
		assert.Equal(t, entity.TurnHuman, match.Turn)
		assert.True(t, match.IsOngoing())
		assert.Equal(t, match.ID, session.MatchID)
	})

	t.Run("Discards the previous match silently", func(t *testing.T) {
		// Given: a session with an ongoing match
		manager, mockSessionRepo, mockMatchRepo, mockPolicy := newMatchManager(t)

		session := &entity.Session{ID: "s-1", MatchID: "m-old"}
		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockMatchRepo.EXPECT().
			DeleteByID(mock.Anything, "m-old").
			Return(nil).
			Once()

		mockPolicy.EXPECT().
			BestLegalAction(entity.Board{}, mock.AnythingOfType("[]int")).
			Return(0).
			Once()

		mockMatchRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Match")).
			Return(nil).
			Once()

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, session).
			Return(nil).
			Once()

		// When: starting over
		match, err := manager.NewMatch(ctx, "s-1")

		// Then: the session points at the fresh match
		require.NoError(t, err)
		assert.NotEqual(t, "m-old", match.ID)
		assert.Equal(t, match.ID, session.MatchID)
	})
}

func TestMatchManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns error when no match is active", func(t *testing.T) {
		// Given: a session without a match
		manager, mockSessionRepo, _, _ := newMatchManager(t)

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(&entity.Session{ID: "s-1"}, nil).
			Once()

		// When: making a turn
		match, err := manager.MakeTurn(ctx, "s-1", 0)

		// Then: the missing match is reported
		require.ErrorIs(t, err, apperror.ErrNoActiveMatch)
		assert.Nil(t, match)
	})

	t.Run("Rejects a turn out of order", func(t *testing.T) {
		// Given: a match where the agent is to move
		manager, mockSessionRepo, mockMatchRepo, _ := newMatchManager(t)

		session := &entity.Session{ID: "s-1", MatchID: "m-1"}
		stored := entity.NewMatch("m-1")

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockMatchRepo.EXPECT().
			GetByID(mock.Anything, "m-1").
			Return(stored, nil).
			Once()

		// When: the human moves anyway
		match, err := manager.MakeTurn(ctx, "s-1", 0)

		// Then: the turn order violation is reported
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Nil(t, match)
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		// Given: a match where cell 4 is taken by the agent
		manager, mockSessionRepo, mockMatchRepo, _ := newMatchManager(t)

		session := &entity.Session{ID: "s-1", MatchID: "m-1"}
		stored := entity.NewMatch("m-1")
		stored.Board[4] = entity.AgentMark
		stored.Turn = entity.TurnHuman

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockMatchRepo.EXPECT().
			GetByID(mock.Anything, "m-1").
			Return(stored, nil).
			Once()

		// When: playing the occupied cell
		match, err := manager.MakeTurn(ctx, "s-1", 4)

		// Then: the occupied cell is reported
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Nil(t, match)
	})

	t.Run("Rejects a cell outside the board", func(t *testing.T) {
		// Given: a match with the human to move
		manager, mockSessionRepo, mockMatchRepo, _ := newMatchManager(t)

		session := &entity.Session{ID: "s-1", MatchID: "m-1"}
		stored := entity.NewMatch("m-1")
		stored.Board[4] = entity.AgentMark
		stored.Turn = entity.TurnHuman

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockMatchRepo.EXPECT().
			GetByID(mock.Anything, "m-1").
			Return(stored, nil).
			Once()

		// When: playing cell 9
		match, err := manager.MakeTurn(ctx, "s-1", 9)

		// Then: the range violation is reported
		require.ErrorIs(t, err, apperror.ErrActionOutOfRange)
		assert.Nil(t, match)
	})

	t.Run("Applies the human move and the agent's reply", func(t *testing.T) {
		// Given: an ongoing match with the agent holding the center
		manager, mockSessionRepo, mockMatchRepo, mockPolicy := newMatchManager(t)

		session := &entity.Session{ID: "s-1", MatchID: "m-1"}
		stored := entity.NewMatch("m-1")
		stored.Board[4] = entity.AgentMark
		stored.Turn = entity.TurnHuman

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockMatchRepo.EXPECT().
			GetByID(mock.Anything, "m-1").
			Return(stored, nil).
			Once()

		mockPolicy.EXPECT().
			BestLegalAction(mock.AnythingOfType("entity.Board"), mock.AnythingOfType("[]int")).
			Return(1).
			Once()

		mockMatchRepo.EXPECT().
			CreateOrUpdate(mock.Anything, stored).
			Return(nil).
			Once()

		// When: the human plays cell 0
		match, err := manager.MakeTurn(ctx, "s-1", 0)

		// Then: both moves are on the board and the human is to move again
		require.NoError(t, err)
		assert.Equal(t, entity.OpponentMark, match.Board[0])
		assert.Equal(t, entity.AgentMark, match.Board[1])
		assert.Equal(t, entity.TurnHuman, match.Turn)
		assert.True(t, match.IsOngoing())
	})

	t.Run("Human win settles the match without an agent reply", func(t *testing.T) {
		// Given: the human one move from completing the middle row
		manager, mockSessionRepo, mockMatchRepo, _ := newMatchManager(t)

		session := &entity.Session{ID: "s-1", MatchID: "m-1"}
		stored := entity.NewMatch("m-1")
		stored.Board = entity.Board{
			entity.AgentMark, entity.AgentMark, entity.EmptyCell,
			entity.OpponentMark, entity.OpponentMark, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.AgentMark,
		}
		stored.Turn = entity.TurnHuman

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockMatchRepo.EXPECT().
			GetByID(mock.Anything, "m-1").
			Return(stored, nil).
			Once()

		mockMatchRepo.EXPECT().
			DeleteByID(mock.Anything, "m-1").
			Return(nil).
			Once()

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, session).
			Return(nil).
			Once()

		// When: the human completes the row
		match, err := manager.MakeTurn(ctx, "s-1", 5)

		// Then: the human wins and the session is unbound
		require.NoError(t, err)
		assert.True(t, match.IsFinished())
		assert.Equal(t, entity.WinnerHuman, match.Winner)
		assert.Empty(t, session.MatchID)
	})

	t.Run("Agent reply can finish the match", func(t *testing.T) {
		// Given: the agent one move from completing the top row
		manager, mockSessionRepo, mockMatchRepo, mockPolicy := newMatchManager(t)

		session := &entity.Session{ID: "s-1", MatchID: "m-1"}
		stored := entity.NewMatch("m-1")
		stored.Board = entity.Board{
			entity.AgentMark, entity.AgentMark, entity.EmptyCell,
			entity.OpponentMark, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		stored.Turn = entity.TurnHuman

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockMatchRepo.EXPECT().
			GetByID(mock.Anything, "m-1").
			Return(stored, nil).
			Once()

		mockPolicy.EXPECT().
			BestLegalAction(mock.AnythingOfType("entity.Board"), mock.AnythingOfType("[]int")).
			Return(2).
			Once()

		mockMatchRepo.EXPECT().
			DeleteByID(mock.Anything, "m-1").
			Return(nil).
			Once()

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, session).
			Return(nil).
			Once()

		// When: the human plays a harmless cell
		match, err := manager.MakeTurn(ctx, "s-1", 6)

		// Then: the agent completes the row and the match settles
		require.NoError(t, err)
		assert.True(t, match.IsFinished())
		assert.Equal(t, entity.WinnerAgent, match.Winner)
		assert.Empty(t, session.MatchID)
	})

	t.Run("Rejects a turn on a finished match", func(t *testing.T) {
		// Given: a finished match still in live storage
		manager, mockSessionRepo, mockMatchRepo, _ := newMatchManager(t)

		session := &entity.Session{ID: "s-1", MatchID: "m-1"}
		stored := entity.NewMatch("m-1")
		stored.Status = entity.StatusFinished
		stored.Winner = entity.WinnerTie

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "s-1").
			Return(session, nil).
			Once()

		mockMatchRepo.EXPECT().
			GetByID(mock.Anything, "m-1").
			Return(stored, nil).
			Once()

		// When: making a turn anyway
		match, err := manager.MakeTurn(ctx, "s-1", 0)

		// Then: the violation is reported
		require.ErrorIs(t, err, apperror.ErrMatchFinished)
		assert.Nil(t, match)
	})
}
