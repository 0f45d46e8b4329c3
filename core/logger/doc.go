// Package logger builds the application's zap logger.
//
// Level accepts debug, info, warn and error. Format selects the json
// encoder (production) or the console encoder (local runs and the CLI).
//
// WithRayID returns a child logger carrying the ray id of a Fiber request,
// so every line logged while serving it can be correlated.
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Error("Timesheet update failed", zap.Error(err))
package logger
