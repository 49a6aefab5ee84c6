// Package logger builds configured slog.Logger instances.
//
// It wraps the standard library's structured logging with functional options
// for level, format and output, plus an environment-driven preset:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "personagen"),
//	)
//	slog.SetDefault(log)
package logger
