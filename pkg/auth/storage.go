package auth

import (
	"context"
	"time"
)

// Storage persists users and their whitelisted access token.
type Storage interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	StoreToken(ctx context.Context, id, token string, expires time.Time) error
	ClearToken(ctx context.Context, id string) error
}
