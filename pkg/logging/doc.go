// Package logging provides structured logging configuration for ulidgen.
//
// This package wraps log/slog so the generator, the ID stream and the CLI
// share one way of building loggers.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//
//	logger.Debug("clock regressed", "previous_ms", prev, "current_ms", now)
//
// # Integration
//
// Components accept a *slog.Logger through an option or constructor
// argument. If none is provided they use logging.Nop().
package logging
