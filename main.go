package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-gym/internal"
	"github.com/rocketscienceinc/tictactoe-gym/internal/config"
)

const configFile = "config.yml"

// main - is the entry point of the gym service. It loads the configuration,
// builds the logger and hands control to RunApp.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "tictactoe-gym panicked: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	logger.Info("Starting tictactoe-gym",
		"log_level", conf.LogLevel,
		"http_port", conf.HTTPPort,
		"socket_port", conf.SocketPort,
	)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("failed to run tictactoe-gym: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, configFile))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
