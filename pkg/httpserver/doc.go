// Package httpserver runs the API's http.Server with configured timeouts and
// graceful shutdown, and provides the liveness and readiness probe handlers.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	err := srv.Run(ctx, router) // returns after ctx is cancelled and requests drain
//
// Run does not install signal handlers; callers pass a context from
// signal.NotifyContext.
package httpserver
