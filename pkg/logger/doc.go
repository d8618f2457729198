// Package logger builds *slog.Logger instances for humanid binaries.
//
// New takes functional options to choose the output format (JSON or text), the
// minimum level, static attributes, and context extractors that copy
// request-scoped values (such as a request id) into every record.
//
//	log := logger.New(logger.WithEnvironment("production", "humanid"))
//	log.InfoContext(ctx, "identifier generated",
//		logger.HumanReadable(h),
//		logger.Original(id),
//	)
//
// Production and staging use JSON at INFO; anything else is treated as
// development and uses text at DEBUG.
package logger
