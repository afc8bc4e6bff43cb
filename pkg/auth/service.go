package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sagar00752/hrms/pkg/jwt"
	"github.com/Sagar00752/hrms/pkg/logger"
	"github.com/Sagar00752/hrms/pkg/sanitizer"
	"github.com/Sagar00752/hrms/pkg/validator"
)

// RegisterInput is the body of a registration request.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginInput is the body of a login request.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Service registers users and issues, verifies and revokes access tokens.
type Service struct {
	storage Storage
	tokens  *jwt.Service
	now     func() time.Time
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service.
func NewService(storage Storage, tokens *jwt.Service, opts ...ServiceOption) *Service {
	s := &Service{
		storage: storage,
		tokens:  tokens,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates in, hashes the password and stores a new user.
// The role defaults to RoleUser.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.Email = sanitizer.NormalizeEmail(in.Email)
	if in.Role == "" {
		in.Role = RoleUser
	}

	if err := validator.Apply(
		validator.Required("name", in.Name),
		validator.Required("email", in.Email),
		validator.ValidEmail("email", in.Email),
		validator.MinLen("password", in.Password, 6),
		validator.OneOf("role", in.Role, Roles),
	); err != nil {
		return nil, err
	}

	_, err := s.storage.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.Component("auth"),
		logger.UserID(user.ID.Hex()),
		logger.Role(string(user.Role)))

	return user, nil
}

// Login checks the credentials and issues an access token. The token and its
// expiry replace whatever token the user held before, so only the latest
// login stays valid.
func (s *Service) Login(ctx context.Context, in LoginInput) (string, error) {
	email := sanitizer.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return "", ErrCredentialsRequired
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !ComparePassword(user.PasswordHash, in.Password) {
		return "", ErrInvalidCredentials
	}

	issuedAt, expiresAt := s.tokens.Lifetime(s.now())
	token, err := s.tokens.Generate(Claims{
		UserID: user.ID.Hex(),
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.storage.StoreToken(ctx, user.ID.Hex(), token, time.Unix(expiresAt.Unix(), 0).UTC()); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		logger.Component("auth"),
		logger.UserID(user.ID.Hex()))

	return token, nil
}

// Logout revokes the user's current token.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if err := s.storage.ClearToken(ctx, userID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "user logged out",
		logger.Component("auth"),
		logger.UserID(userID))
	return nil
}

// Authenticate verifies token and checks it against the user's whitelist
// entry. The returned error is one of ErrInvalidToken, ErrUserNotFound,
// ErrTokenNotRecognized or ErrTokenExpired, or a storage failure.
func (s *Service) Authenticate(ctx context.Context, token string) (Principal, error) {
	var claims Claims
	if err := s.tokens.Parse(token, &claims); err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	user, err := s.storage.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrInvalidUserID) {
			return Principal{}, ErrUserNotFound
		}
		return Principal{}, err
	}

	if user.Token == "" || user.Token != token {
		return Principal{}, ErrTokenNotRecognized
	}
	if user.TokenExpires != nil && !s.now().Before(*user.TokenExpires) {
		return Principal{}, ErrTokenExpired
	}

	return Principal{UserID: user.ID.Hex(), Role: user.Role}, nil
}
