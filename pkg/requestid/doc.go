// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware reuses the client's X-Request-ID header when it is a short
// token of letters, digits, dashes and underscores, and otherwise generates a
// UUID. The ID is echoed in the response header and stored in the request
// context, where LoggerExtractor picks it up for structured logs:
//
//	log := logger.FromConfig(cfg, "api", requestid.LoggerExtractor())
//	router.Use(requestid.Middleware)
package requestid
