package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Sagar00752/hrms/pkg/binder"
	"github.com/Sagar00752/hrms/pkg/logger"
	"github.com/Sagar00752/hrms/pkg/validator"
)

// classify maps err to the envelope and status sent to the client.
func classify(err error) (int, Envelope) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return http.StatusUnprocessableEntity, Envelope{Message: "Validation failed", Errors: verrs}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, Envelope{Message: httpErr.Message}
	}

	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, Envelope{Message: "Request body too large"}
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, Envelope{Message: "Content-Type must be application/json"}
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return http.StatusBadRequest, Envelope{Message: "Malformed JSON request body"}
	}

	return http.StatusInternalServerError, Envelope{Message: "Internal server error"}
}

// NewErrorHandler returns the error handler that renders failures as JSON
// envelopes. Client errors are logged at warn level and server errors at error
// level; a nil log uses slog.Default.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	return func(ctx Context, err error) {
		status, body := classify(err)

		l := log
		if l == nil {
			l = slog.Default()
		}

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		r := ctx.Request()
		l.LogAttrs(ctx, level, "request failed",
			logger.Component("http"),
			slog.Int("status", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Error(err))

		if rerr := JSON(status, body).Render(ctx.ResponseWriter(), r); rerr != nil {
			l.ErrorContext(ctx, "failed to write error response",
				logger.Component("http"),
				logger.Error(rerr))
		}
	}
}
