package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-gym/internal/entity"
	"github.com/rocketscienceinc/tictactoe-gym/internal/pkg"
)

type envManager interface {
	GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error)

	ResetEpisode(ctx context.Context, sessionID string) (*entity.Episode, error)
	StepEpisode(ctx context.Context, sessionID string, action int) (*entity.StepResult, error)
}

type matchManager interface {
	NewMatch(ctx context.Context, sessionID string) (*entity.Match, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Match, error)
}

type Server struct {
	logger       *slog.Logger
	envManager   envManager
	matchManager matchManager

	handlers map[string]func(ctx context.Context, message *Message, bufrw *bufio.ReadWriter) error
}

func New(logger *slog.Logger, envManager envManager, matchManager matchManager) *Server {
	server := &Server{
		logger:       logger,
		envManager:   envManager,
		matchManager: matchManager,

		handlers: make(map[string]func(context.Context, *Message, *bufio.ReadWriter) error),
	}

	server.handlers["connect"] = server.handleConnect
	server.handlers["env:reset"] = server.handleEnvReset
	server.handlers["env:step"] = server.handleEnvStep
	server.handlers["play:new"] = server.handleNewMatch
	server.handlers["play:turn"] = server.handleMatchTurn

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	if req.Header.Get("Upgrade") != "websocket" {
		http.Error(writer, "not a websocket upgrade", http.StatusBadRequest)
		return
	}

	key := req.Header.Get("Sec-WebSocket-Key")
	acceptKey := pkg.GenerateAcceptKey(key)

	writer.Header().Set("Upgrade", "websocket")
	writer.Header().Set("Connection", "Upgrade")
	writer.Header().Set("Sec-WebSocket-Accept", acceptKey)
	writer.WriteHeader(http.StatusSwitchingProtocols)

	hijacker, ok := writer.(http.Hijacker)
	if !ok {
		log.Error("web server does not support hijacking", "error", http.StatusText(http.StatusInternalServerError))
		return
	}

	conn, bufrw, err := hijacker.Hijack()
	if err != nil {
		log.Error("failed to hijack connection", "error", err)
		return
	}

	defer conn.Close()

	// server read/write deadlines must not follow the hijacked connection,
	// training sessions hold it open far longer
	if err = conn.SetDeadline(time.Time{}); err != nil {
		log.Error("failed to clear connection deadline", "error", err)
		return
	}

	log.Info("WebSocket connection established")

	if err = that.handleMessages(ctx, bufrw); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleMessages")

	for {
		f, err := readFrame(bufrw)
		if err != nil {
			return fmt.Errorf("failed to read frame: %w", err)
		}

		if f.opCode == opClose {
			log.Info("client closed the connection")
			return nil
		}

		var message Message
		if err = json.Unmarshal(f.payload, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)

			if err = that.sendErrorResponse(bufrw, message.Action, "unknown action"); err != nil {
				log.Error("failed to send error response", "error", err)
			}

			continue
		}

		if err = handler(ctx, &message, bufrw); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}
