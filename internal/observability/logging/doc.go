// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the service.
//
// Example usage:
//
//	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, slog.Default())
//	    logger.Info("processing request")
//	}
package logging
