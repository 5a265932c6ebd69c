package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-gym/internal/apperror"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	var sessionID string
	if payloadReq.Session != nil {
		sessionID = payloadReq.Session.ID
	}

	session, err := that.envManager.GetOrCreateSession(ctx, sessionID)
	if err != nil {
		log.Error("failed to create or get session", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to create or get session")
	}

	payloadResp := Payload{
		Session: session,
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("session connected", "sessionID", session.ID)

	return nil
}

func (that *Server) handleEnvReset(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleEnvReset")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Session == nil {
		log.Error("Session is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Session is required")
	}

	episode, err := that.envManager.ResetEpisode(ctx, payloadReq.Session.ID)
	if err != nil {
		log.Error("failed to reset episode", "sessionID", payloadReq.Session.ID, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to reset episode")
	}

	payloadResp := Payload{
		Episode: episode,
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("episode reset", "sessionID", payloadReq.Session.ID, "episodeID", episode.ID)

	return nil
}

func (that *Server) handleEnvStep(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleEnvStep")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Session == nil {
		log.Error("Session is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Session is required")
	}

	if payloadReq.Action == nil {
		log.Error("Action is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Action is required")
	}

	result, err := that.envManager.StepEpisode(ctx, payloadReq.Session.ID, *payloadReq.Action)
	if err != nil {
		if apperr := knownStepError(err); apperr != "" {
			return that.sendErrorResponse(bufrw, msg.Action, apperr)
		}

		log.Error("failed to step episode", "sessionID", payloadReq.Session.ID, "error", err)

		return that.sendErrorResponse(bufrw, msg.Action, "failed to step episode")
	}

	payloadResp := Payload{
		Step: result,
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (that *Server) handleNewMatch(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleNewMatch")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Session == nil {
		log.Error("Session is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Session is required")
	}

	match, err := that.matchManager.NewMatch(ctx, payloadReq.Session.ID)
	if err != nil {
		log.Error("failed to create match", "sessionID", payloadReq.Session.ID, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to create match")
	}

	payloadResp := Payload{
		Match: match,
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("match started", "sessionID", payloadReq.Session.ID, "matchID", match.ID)

	return nil
}

func (that *Server) handleMatchTurn(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleMatchTurn")

	payloadReq, err := unmarshalPayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Session == nil {
		log.Error("Session is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Session is required")
	}

	if payloadReq.Cell == nil {
		log.Error("Cell is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Cell is required")
	}

	match, err := that.matchManager.MakeTurn(ctx, payloadReq.Session.ID, *payloadReq.Cell)
	if err != nil {
		if apperr := knownTurnError(err); apperr != "" {
			return that.sendErrorResponse(bufrw, msg.Action, apperr)
		}

		log.Error("failed to make turn", "sessionID", payloadReq.Session.ID, "error", err)

		return that.sendErrorResponse(bufrw, msg.Action, "failed to make turn")
	}

	payloadResp := Payload{
		Match: match,
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func unmarshalPayload(msg *Message) (*Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}

// knownStepError - maps step domain violations to client-facing text,
// empty for everything that should stay a server-side error.
func knownStepError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrNoActiveEpisode):
		return apperror.ErrNoActiveEpisode.Error()
	case errors.Is(err, apperror.ErrEpisodeFinished):
		return apperror.ErrEpisodeFinished.Error()
	case errors.Is(err, apperror.ErrActionOutOfRange):
		return apperror.ErrActionOutOfRange.Error()
	default:
		return ""
	}
}

// knownTurnError - same mapping for interactive match turns.
func knownTurnError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrNoActiveMatch):
		return apperror.ErrNoActiveMatch.Error()
	case errors.Is(err, apperror.ErrMatchFinished):
		return apperror.ErrMatchFinished.Error()
	case errors.Is(err, apperror.ErrNotYourTurn):
		return apperror.ErrNotYourTurn.Error()
	case errors.Is(err, apperror.ErrCellOccupied):
		return apperror.ErrCellOccupied.Error()
	case errors.Is(err, apperror.ErrActionOutOfRange):
		return apperror.ErrActionOutOfRange.Error()
	default:
		return ""
	}
}
