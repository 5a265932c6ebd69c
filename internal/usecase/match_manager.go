package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-gym/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
	"github.com/rocketscienceinc/tictactoe-gym/internal/pkg"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type matchPolicy interface {
	BestLegalAction(obs entity.Board, legal []int) int
}

// MatchManager - runs exhibition matches between a human and the
// current policy. The agent opens every match.
type MatchManager struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	matchRepo   matchRepo
	policy      matchPolicy
}

func NewMatchManager(logger *slog.Logger, sessionRepo sessionRepo, matchRepo matchRepo, policy matchPolicy) *MatchManager {
	return &MatchManager{
		logger: logger,

		sessionRepo: sessionRepo,
		matchRepo:   matchRepo,
		policy:      policy,
	}
}

// NewMatch - starts a fresh match for the session and plays the agent's
// opening move. An ongoing match is discarded silently.
func (that *MatchManager) NewMatch(ctx context.Context, sessionID string) (*entity.Match, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	if session.MatchID != "" {
		that.discardMatch(ctx, session.MatchID)
	}

	match := entity.NewMatch(pkg.GenerateMatchID())
	that.agentMove(match)

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	session.MatchID = match.ID
	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return match, nil
}

// MakeTurn - applies the human's move and answers with the agent's
// reply. A finished match is settled and unbound from the session.
func (that *MatchManager) MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Match, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	if session.MatchID == "" {
		return nil, apperror.ErrNoActiveMatch
	}

	match, err := that.matchRepo.GetByID(ctx, session.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	if match.IsFinished() {
		return nil, apperror.ErrMatchFinished
	}

	if match.Turn != entity.TurnHuman {
		return nil, apperror.ErrNotYourTurn
	}

	if cell < 0 || cell >= entity.BoardCells {
		return nil, fmt.Errorf("%w: cell %d", apperror.ErrActionOutOfRange, cell)
	}

	if match.Board[cell] != entity.EmptyCell {
		return nil, apperror.ErrCellOccupied
	}

	match.Board[cell] = entity.OpponentMark
	match.Turn = entity.TurnAgent
	match.UpdateState()

	if match.IsOngoing() {
		that.agentMove(match)
	}

	if match.IsFinished() {
		that.settleMatch(ctx, session, match)

		return match, nil
	}

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return match, nil
}

// agentMove - plays the policy's best legal cell and hands the turn to
// the human.
func (that *MatchManager) agentMove(match *entity.Match) {
	legal := match.Board.EmptyCells()
	if len(legal) == 0 {
		return
	}

	cell := that.policy.BestLegalAction(match.Board, legal)

	match.Board[cell] = entity.AgentMark
	match.Turn = entity.TurnHuman
	match.UpdateState()
}

// settleMatch - removes a finished match and unbinds the session.
func (that *MatchManager) settleMatch(ctx context.Context, session *entity.Session, match *entity.Match) {
	log := that.logger.With("method", "settleMatch")

	if err := that.matchRepo.DeleteByID(ctx, match.ID); err != nil {
		log.Error("failed to delete match", "error", err)
	}

	session.MatchID = ""
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		log.Error("failed to unbind session", "error", err)
	}

	log.Info("match finished", "matchID", match.ID, "winner", match.Winner)
}

// discardMatch - drops an abandoned match.
func (that *MatchManager) discardMatch(ctx context.Context, matchID string) {
	log := that.logger.With("method", "discardMatch")

	if err := that.matchRepo.DeleteByID(ctx, matchID); err != nil {
		log.Error("failed to delete abandoned match", "error", err)
	}

	log.Info("match discarded", "matchID", matchID)
}
