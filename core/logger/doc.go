// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and tags every simulation run with a correlation identifier.
//
// # Run Correlation
//
// The WithRunID helper attaches a freshly generated run identifier to the
// logger, ensuring that all logs emitted by a single simulation run can be
// correlated after the fact.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Simulation started")
//
//	// For a single run:
//	l := logger.WithRunID(log)
//	l.Info("Nightly update applied", zap.Int("day", 1))
package logger
