package auth

import "errors"

var (
	ErrUserNotFound        = errors.New("auth: user not found")
	ErrEmailAlreadyExists  = errors.New("auth: email already exists")
	ErrInvalidCredentials  = errors.New("auth: invalid credentials")
	ErrCredentialsRequired = errors.New("auth: email and password required")
	ErrInvalidUserID       = errors.New("auth: invalid user id")
)

// Reasons an access token is rejected. Each one is answered with 401.
var (
	ErrNoToken            = errors.New("auth: no token provided")
	ErrInvalidToken       = errors.New("auth: invalid or expired token")
	ErrTokenNotRecognized = errors.New("auth: token not recognized")
	ErrTokenExpired       = errors.New("auth: token expired")
)
