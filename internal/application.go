package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-gym/internal/agent"
	"github.com/rocketscienceinc/tictactoe-gym/internal/config"
	"github.com/rocketscienceinc/tictactoe-gym/internal/env"
	"github.com/rocketscienceinc/tictactoe-gym/internal/repository"
	"github.com/rocketscienceinc/tictactoe-gym/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-gym/internal/trainer"
	"github.com/rocketscienceinc/tictactoe-gym/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-gym/transport/rest"
	"github.com/rocketscienceinc/tictactoe-gym/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	sessionRepo := repository.NewSessionRepository(redisStorage.Connection)
	episodeRepo := repository.NewEpisodeRepository(redisStorage.Connection)
	matchRepo := repository.NewMatchRepository(redisStorage.Connection)
	resultRepo := repository.NewResultRepository(sqliteStorage.Connection)

	rules := env.Rules{
		IllegalMovePenalty: conf.Environment.IllegalMovePenalty,
		ForfeitAfter:       conf.Environment.ForfeitAfter,
	}

	trainingRng := newRand(conf.Training.Seed)
	learner := agent.NewQLearner(conf.Training.Epsilon, conf.Training.LearningRate, conf.Training.Discount, trainingRng)

	envManager := usecase.NewEnvManager(logger, sessionRepo, episodeRepo, resultRepo, rules, newRand(conf.Environment.OpponentSeed))
	matchManager := usecase.NewMatchManager(logger, sessionRepo, matchRepo, learner)

	// train in-process so the policy behind /predict and play:turn keeps
	// improving while the servers run
	if conf.Training.Enabled {
		go func() {
			exploration := agent.NewRandomPolicy(trainingRng)
			episodeTrainer := trainer.New(logger, env.New(rules, trainingRng), exploration, learner, resultRepo,
				conf.Training.Episodes, conf.Training.WarmupEpisodes, conf.Training.ReportEvery)
			if trainErr := episodeTrainer.Run(ctx); trainErr != nil {
				log.Error("training run failed", "error", trainErr)
			}
		}()
	}

	restHandlers := rest.NewHandlers(learner, resultRepo)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(conf.HTTPPort, restHandlers); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, envManager, matchManager)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newRand - seeds a source for gameplay randomness, falling back to the
// wall clock when the configured seed is zero.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	//nolint: gosec // gameplay randomness, not secrets
	return rand.New(rand.NewSource(seed))
}
