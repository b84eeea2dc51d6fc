// Package log provides the logging abstraction used across paycalc.
//
// Components depend on the Logger interface only. The CLI wires the zerolog
// adapter; tests use the no-op logger:
//
//	logger, err := log.NewZerologLogger(os.Stderr, "debug")
//	logger = logger.With(log.String("session", id))
//
//	logger := log.NewNoopLogger()
package log
