// Package logger builds the structured slog loggers used by the api and worker
// binaries.
//
// New creates a *slog.Logger from functional options (format, level, static
// attributes) and wraps its handler so that it runs every
// registered ContextExtractor on each record. That is how request IDs and the
// environment name reach log lines without being passed around explicitly.
//
// FromConfig applies the per-environment defaults (text at debug in
// development, JSON at info in staging and production) and the LOG_LEVEL and
// LOG_FORMAT overrides:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.FromConfig(cfg, "worker", requestid.LoggerExtractor())
//	logger.SetAsDefault(log)
//
// The helpers in attr.go keep attribute keys consistent across packages:
//
//	log.ErrorContext(ctx, "job failed, discarding",
//	    logger.Component("worker"),
//	    logger.Queue("emailQueue"),
//	    logger.JobID(job.JobID()),
//	    logger.Error(err))
//
// Error, Errors, UserID, JobID and MessageID return an empty attribute for
// nil or empty input, so call sites need no nil checks.
package logger
