// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger. level and format come from configuration; an empty
// level means info and an empty format means console. verbose forces the
// debug level.
func New(level string, format string, verbose bool) (logger *zap.Logger, err error) {
	config := zap.NewProductionConfig()
	config.DisableStacktrace = true

	switch format {
	case "", "console":
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case "json":
		config.Encoding = "json"
	default:
		err = fmt.Errorf("unknown log format %q", format)
		return
	}

	if len(level) != 0 {
		var lvl zapcore.Level
		lvl, err = zapcore.ParseLevel(level)
		if err != nil {
			err = fmt.Errorf("log level: %w", err)
			return
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err = config.Build()
	if err != nil {
		err = fmt.Errorf("failed to initialize logger: %w", err)
	}
	return
}
