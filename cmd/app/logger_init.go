package main

import (
	"github.com/osse101/FunSlots_Go/internal/config"
	"github.com/osse101/FunSlots_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only in dev
	addSource := cfg.IsDevelopment()

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
