package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sagar00752/hrms/pkg/logger"
)

// Connect creates a Redis client and waits for the server to answer PING,
// retrying RetryAttempts times with RetryInterval between attempts.
//
// If the server never answers, the client is still returned together with
// ErrRedisNotReady: go-redis reconnects on demand, so callers may decide to
// keep running and let the queue recover once Redis is back.
// A nil client is only returned for an unparsable configuration.
func Connect(ctx context.Context, cfg Config, log *slog.Logger) (*redis.Client, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}

	client := redis.NewClient(opts)
	client.AddHook(newLogHook(log, opts.Addr))

	attempts := max(cfg.RetryAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		pingCtx := ctx
		var cancel context.CancelFunc = func() {}
		if cfg.ConnectTimeout > 0 {
			pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		}
		lastErr = client.Ping(pingCtx).Err()
		cancel()

		if lastErr == nil {
			log.InfoContext(ctx, "redis connected",
				logger.Component("redis"),
				slog.String("addr", opts.Addr),
				slog.Int("db", opts.DB))
			return client, nil
		}

		if attempt == attempts {
			break
		}

		log.WarnContext(ctx, "redis ping failed",
			logger.Component("redis"),
			slog.Int("attempt", attempt),
			slog.Int("attempts", attempts),
			logger.Error(lastErr))

		select {
		case <-ctx.Done():
			return client, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return client, errors.Join(ErrRedisNotReady, lastErr)
}
