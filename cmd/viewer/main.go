// Package main is the entry point for the Affinity scene viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/affinity/internal/config"
	"github.com/Faultbox/affinity/internal/logger"
	"github.com/Faultbox/affinity/internal/viewer"
)

// app is the part of the viewer main drives.
type app interface {
	Run() error
	Close()
}

func main() {
	os.Exit(start())
}

// start sets up config and logging; deferred cleanup runs before main exits.
func start() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Affinity Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	return run(cfg, func(cfg *config.Config) (app, error) {
		return viewer.New(cfg)
	})
}

// run opens the viewer, runs it and always closes it once opened.
func run(cfg *config.Config, open func(*config.Config) (app, error)) int {
	v, err := open(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		return 1
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}
