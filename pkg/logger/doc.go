// Package logger builds *slog.Logger values from functional options and
// keeps attribute names consistent across GrowBuddy.
//
// New picks a text or JSON handler and wraps it in LogHandlerDecorator, which
// runs the registered ContextExtractor callbacks on every record. That is how
// request IDs set by pkg/requestid end up on every line logged while serving
// an HTTP request.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "growbuddy"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "plant created", logger.PlantID(p.ID))
//
// Helpers such as Error and PlantID return an empty attribute for zero input,
// so they can be passed unconditionally.
package logger
