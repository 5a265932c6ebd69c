package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	PredictHandler(w http.ResponseWriter, r *http.Request)
	StatsHandler(w http.ResponseWriter, r *http.Request)
}

type predictPolicy interface {
	BestLegalAction(obs entity.Board, legal []int) int
}

type statsProvider interface {
	Stats(ctx context.Context) (*entity.ResultStats, error)
}

type handlers struct {
	policy  predictPolicy
	results statsProvider
}

func NewHandlers(policy predictPolicy, results statsProvider) Handlers {
	return &handlers{
		policy:  policy,
		results: results,
	}
}

type predictRequest struct {
	Observation []int `json:"observation"`
}

type predictResponse struct {
	Action int `json:"action"`
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// PredictHandler - serves the learned policy over plain HTTP: takes a board
// observation and answers with the greedy action among its empty cells.
func (that *handlers) PredictHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	observation, err := parseObservation(req.Observation)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	legal := observation.EmptyCells()
	if len(legal) == 0 {
		http.Error(w, "Board has no empty cell", http.StatusBadRequest)
		return
	}

	action := that.policy.BestLegalAction(observation, legal)

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(predictResponse{Action: action}); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// StatsHandler - answers with the aggregate training history grouped by
// episode outcome.
func (that *handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := that.results.Stats(r.Context())
	if err != nil {
		http.Error(w, "Failed to load training stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func parseObservation(values []int) (entity.Board, error) {
	var board entity.Board

	if len(values) != entity.BoardCells {
		return board, fmt.Errorf("observation must have %d cells, got %d", entity.BoardCells, len(values))
	}

	for i, value := range values {
		if value != int(entity.EmptyCell) && value != int(entity.AgentMark) && value != int(entity.OpponentMark) {
			return board, fmt.Errorf("observation cell %d has invalid value %d", i, value)
		}
		board[i] = entity.Mark(value)
	}

	return board, nil
}
