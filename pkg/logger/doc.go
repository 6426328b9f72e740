// Package logger builds *slog.Logger instances with functional options,
// environment presets and context-aware attribute injection.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format, applies static attributes, and wraps the result in a
// LogHandlerDecorator that runs every registered ContextExtractor on each
// record. Helper constructors in attr.go (Error, SessionID, Operation, …)
// keep attribute keys consistent across packages.
//
// # Usage
//
//	import "github.com/dmitrymomot/sessionkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithDevelopment("sessiond"),
//	    logger.WithContextExtractors(session.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "session started",
//	    logger.SessionID(id),
//	    logger.Operation("start"),
//	)
//
// # Configuration
//
// Options: WithDevelopment / WithStaging / WithProduction / WithEnvironment
// for presets, WithFormat / WithTextFormatter / WithJSONFormatter for output,
// WithLevel, WithAttr, WithOutput, WithContextExtractors and
// WithContextValue. Config (LOG_SERVICE, APP_ENV, LOG_LEVEL, LOG_FORMAT) is
// translated into options by FromConfig.
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("operation finished", logger.Error(err))
//
// needs no nil check.
package logger
