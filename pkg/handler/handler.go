package handler

import (
	"net/http"

	"github.com/Sagar00752/hrms/pkg/binder"
)

// HandlerFunc handles one decoded request of type R.
//
//	create := handler.HandlerFunc[CreateEmployeeRequest](
//		func(ctx handler.Context, req CreateEmployeeRequest) handler.Response {
//			emp, err := svc.Create(ctx, req)
//			if err != nil {
//				return handler.Error(err)
//			}
//			return handler.Created("Employee created successfully", emp)
//		},
//	)
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorHandler writes the response for an error raised while binding,
// handling or rendering.
type ErrorHandler func(ctx Context, err error)

// Option configures Wrap.
type Option func(*wrapConfig)

type wrapConfig struct {
	binder       binder.Func
	errorHandler ErrorHandler
}

// WithBinder sets the request binder. Without one the request value is left
// zero, which suits endpoints that take no body.
func WithBinder(b binder.Func) Option {
	return func(c *wrapConfig) {
		c.binder = b
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// Wrap converts a typed HandlerFunc to an http.HandlerFunc.
func Wrap[R any](h HandlerFunc[R], opts ...Option) http.HandlerFunc {
	cfg := &wrapConfig{errorHandler: NewErrorHandler(nil)}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		if cfg.binder != nil {
			if err := cfg.binder(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := h(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
