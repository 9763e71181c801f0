// Package logger provides a structured logging facility based on Zap.
//
// The debug level selects the development config. Every other level uses the
// production config with the parsed level. The console encoder prints ISO8601
// timestamps and no stack traces.
//
// # Request logging
//
// WithRayID extracts the RayID from a Fiber context and attaches it to the log entry,
// so all lines of one request can be correlated. Sync runs attach their run_id the same
// way through zap.Logger.With.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Failed to list places", zap.Error(err))
package logger
