// Package logger builds *slog.Logger instances with functional options and
// keeps attribute naming consistent across the service.
//
// New selects a JSON or text handler, applies static attributes and wraps the
// result with LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record so request-scoped values (request ID, dispatch ID) are attached
// without threading them through every call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "pushd"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "dispatch finished",
//	    logger.DispatchID(report.ID),
//	    logger.Count("delivered", report.Delivered),
//	)
//
// Push endpoints are capability URLs; log them with Endpoint, which records
// only the host and a short fingerprint.
package logger
