package ratelimiter

import "errors"

var (
	ErrInvalidConfig     = errors.New("ratelimiter: invalid configuration")
	ErrInvalidTokenCount = errors.New("ratelimiter: invalid token count")
	ErrStoreNil          = errors.New("ratelimiter: store is nil")
	ErrStoreUnavailable  = errors.New("ratelimiter: store unavailable")
)
