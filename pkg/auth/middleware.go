package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Sagar00752/hrms/pkg/handler"
	"github.com/Sagar00752/hrms/pkg/jwt"
	"github.com/Sagar00752/hrms/pkg/logger"
)

// Authenticator resolves an access token to its caller.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

// Middleware rejects requests without a valid whitelisted bearer token with 401
// and stores the Principal in the context of the others.
func Middleware(a Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := jwt.BearerToken(r)
			if err != nil {
				reject(w, r, log, ErrNoToken)
				return
			}

			p, err := a.Authenticate(r.Context(), token)
			if err != nil {
				reject(w, r, log, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p, token)))
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, message := http.StatusUnauthorized, ""
	switch {
	case errors.Is(err, ErrNoToken):
		message = "No token provided"
	case errors.Is(err, ErrInvalidToken):
		message = "Invalid or expired token"
	case errors.Is(err, ErrUserNotFound):
		message = "User not found"
	case errors.Is(err, ErrTokenNotRecognized):
		message = "Token not recognized (please login again)"
	case errors.Is(err, ErrTokenExpired):
		message = "Token expired (please login again)"
	default:
		status, message = http.StatusInternalServerError, "Auth error"
		log.ErrorContext(r.Context(), "authentication failed",
			logger.Component("auth"),
			logger.Error(err))
	}

	if status == http.StatusUnauthorized {
		log.DebugContext(r.Context(), "request rejected",
			logger.Component("auth"),
			slog.String("reason", message))
	}

	_ = handler.Fail(status, message).Render(w, r)
}
