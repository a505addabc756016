// Package logger provides structured logging based on Zap.
//
// New builds a logger from Config: the level (debug, info, warn, error) and the
// encoding (json for services, console for the CLI). WithRayID attaches the ray id
// set by the rayid middleware so every log line of a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Rebuild failed", zap.Error(err))
package logger
