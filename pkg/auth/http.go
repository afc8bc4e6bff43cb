package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sagar00752/hrms/pkg/binder"
	"github.com/Sagar00752/hrms/pkg/handler"
	"github.com/Sagar00752/hrms/pkg/jwt"
)

// LoginResponse keeps the token next to the envelope fields so clients can
// copy it straight into the Authorization header.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Routes mounts /register, /login and the authenticated /logout on r.
func Routes(r chi.Router, svc *Service, authenticate func(http.Handler) http.Handler, eh handler.ErrorHandler) {
	opts := []handler.Option{handler.WithBinder(binder.JSON()), handler.WithErrorHandler(eh)}

	r.Post("/register", handler.Wrap(registerHandler(svc), opts...))
	r.Post("/login", handler.Wrap(loginHandler(svc), opts...))
	r.With(authenticate).Post("/logout", handler.Wrap(logoutHandler(svc), handler.WithErrorHandler(eh)))
}

func registerHandler(svc *Service) handler.HandlerFunc[RegisterInput] {
	return func(ctx handler.Context, in RegisterInput) handler.Response {
		user, err := svc.Register(ctx, in)
		if err != nil {
			if errors.Is(err, ErrEmailAlreadyExists) {
				return handler.Error(handler.NewHTTPError(http.StatusConflict, "Email already exists").Wrap(err))
			}
			return handler.Error(err)
		}
		return handler.Created("User registered successfully", user.View())
	}
}

func loginHandler(svc *Service) handler.HandlerFunc[LoginInput] {
	return func(ctx handler.Context, in LoginInput) handler.Response {
		token, err := svc.Login(ctx, in)
		switch {
		case errors.Is(err, ErrCredentialsRequired):
			return handler.Error(handler.NewHTTPError(http.StatusBadRequest, "Email and password required").Wrap(err))
		case errors.Is(err, ErrUserNotFound):
			return handler.Error(handler.NewHTTPError(http.StatusNotFound, "User not found").Wrap(err))
		case errors.Is(err, ErrInvalidCredentials):
			return handler.Error(handler.NewHTTPError(http.StatusBadRequest, "Invalid credentials").Wrap(err))
		case err != nil:
			return handler.Error(err)
		}

		return handler.JSON(http.StatusOK, LoginResponse{
			Success: true,
			Message: "Login successful",
			Token:   jwt.Bearer(token),
		})
	}
}

func logoutHandler(svc *Service) handler.HandlerFunc[struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		p, ok := PrincipalFromContext(ctx)
		if !ok {
			return handler.Error(handler.ErrUnauthorized)
		}
		if err := svc.Logout(ctx, p.UserID); err != nil {
			return handler.Error(err)
		}
		return handler.OK("Logout successful. Please remove your token on the client side.", nil)
	}
}
