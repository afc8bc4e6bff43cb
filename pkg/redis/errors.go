package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrMissingAddress               = errors.New("redis host or url is required")
	ErrInvalidPort                  = errors.New("invalid redis port")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
)
