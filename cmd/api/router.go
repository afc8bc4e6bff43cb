package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Sagar00752/hrms/pkg/auth"
	"github.com/Sagar00752/hrms/pkg/clientip"
	"github.com/Sagar00752/hrms/pkg/employee"
	"github.com/Sagar00752/hrms/pkg/environment"
	"github.com/Sagar00752/hrms/pkg/handler"
	"github.com/Sagar00752/hrms/pkg/httpserver"
	"github.com/Sagar00752/hrms/pkg/metrics"
	"github.com/Sagar00752/hrms/pkg/ratelimiter"
	"github.com/Sagar00752/hrms/pkg/requestid"
)

type routerDeps struct {
	env            environment.Environment
	log            *slog.Logger
	trustedHeaders []string
	auth           *auth.Service
	employees      *employee.Service
	reports        *employee.ReportWriter
	limiter        *ratelimiter.Bucket // nil disables throttling
	metrics        *metrics.Metrics    // nil disables /metrics
	readyTimeout   time.Duration
	checks         []httpserver.Check
}

func newRouter(d routerDeps) http.Handler {
	eh := handler.NewErrorHandler(d.log)
	authenticate := auth.Middleware(d.auth, d.log)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(d.trustedHeaders...),
		environment.Middleware(d.env),
		middleware.Recoverer,
	)
	if d.metrics != nil {
		r.Use(d.metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", d.metrics.Handler())
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.Fail(http.StatusNotFound, "Route not found").Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.Fail(http.StatusMethodNotAllowed, "Method not allowed").Render(w, r)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_ = handler.Text(http.StatusOK, "Hello World!").Render(w, r)
	})
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, d.readyTimeout, d.checks...))

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if d.limiter != nil {
				key := ratelimiter.Composite(ratelimiter.Static("auth"), ratelimiter.ByClientIP)
				r.Use(ratelimiter.Middleware(d.limiter, key, d.log))
			}
			auth.Routes(r, d.auth, authenticate, eh)
		})
		employee.Routes(r, d.employees, d.reports, authenticate, eh)
	})

	return r
}
