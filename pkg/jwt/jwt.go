package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// StandardClaims carries the registered claims the API relies on.
// Temporal fields are Unix seconds; zero means unset.
type StandardClaims struct {
	Subject   string `json:"sub,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

var _ gojwt.Claims = StandardClaims{}

func (c StandardClaims) GetExpirationTime() (*gojwt.NumericDate, error) {
	return numericDate(c.ExpiresAt)
}
func (c StandardClaims) GetNotBefore() (*gojwt.NumericDate, error) { return numericDate(c.NotBefore) }
func (c StandardClaims) GetIssuedAt() (*gojwt.NumericDate, error)  { return numericDate(c.IssuedAt) }
func (c StandardClaims) GetIssuer() (string, error)                { return "", nil }
func (c StandardClaims) GetSubject() (string, error)               { return c.Subject, nil }
func (c StandardClaims) GetAudience() (gojwt.ClaimStrings, error)  { return nil, nil }

func numericDate(sec int64) (*gojwt.NumericDate, error) {
	if sec == 0 {
		return nil, nil
	}
	return gojwt.NewNumericDate(time.Unix(sec, 0)), nil
}

// Service signs and verifies HS256 tokens.
type Service struct {
	signingKey []byte
	ttl        time.Duration
	parser     *gojwt.Parser
}

// New creates a token service. ttl is the lifetime handed out by Lifetime;
// a non-positive ttl falls back to one hour.
func New(signingKey []byte, ttl time.Duration) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &Service{
		signingKey: signingKey,
		ttl:        ttl,
		parser:     gojwt.NewParser(),
	}, nil
}

// NewFromConfig creates a token service from Config.
func NewFromConfig(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New([]byte(cfg.Secret), cfg.TTL)
}

// Lifetime returns the issue and expiry times for a token issued at now.
func (s *Service) Lifetime(now time.Time) (issuedAt, expiresAt time.Time) {
	return now, now.Add(s.ttl)
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Generate signs claims. Embed StandardClaims to get the registered claims.
func (s *Service) Generate(claims gojwt.Claims) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Parse verifies token and decodes it into claims, which must be a pointer.
// Expiry and not-before are checked against the current time.
func (s *Service) Parse(token string, claims gojwt.Claims) error {
	if claims == nil {
		return ErrMissingClaims
	}

	_, err := s.parser.ParseWithClaims(token, claims, s.key)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUnexpectedSigningMethod):
		return ErrUnexpectedSigningMethod
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, gojwt.ErrTokenExpired):
		return ErrExpiredToken
	default:
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
}

func (s *Service) key(t *gojwt.Token) (any, error) {
	if t.Method != gojwt.SigningMethodHS256 {
		return nil, ErrUnexpectedSigningMethod
	}
	return s.signingKey, nil
}
