// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance supporting development (console)
// and production (json) encodings.
//
// # Run Correlation
//
// WithRunID tags a logger with a generated run id so all entries from one
// CLI invocation can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("client ready")
package logger
