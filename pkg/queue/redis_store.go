package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of Redis lists (RPUSH / BLPOP).
// The client is owned by the caller and shared by every store built from it.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore wraps an established Redis client.
func NewRedisStore(client redis.UniversalClient) (*RedisStore, error) {
	if client == nil {
		return nil, ErrStoreNil
	}
	return &RedisStore{client: client}, nil
}

// Append implements Store.
func (s *RedisStore) Append(ctx context.Context, queue string, payload []byte) error {
	if err := s.client.RPush(ctx, queue, payload).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// blockSlice bounds one BLPOP so cancellation is seen between calls.
// go-redis interrupts a blocked read only on a ctx deadline.
const blockSlice = time.Second

// BlockingRemoveHead implements Store.
// The wait is issued as a series of BLPOP calls no longer than blockSlice, and
// ctx is checked between them, so a cancelled ctx returns within one slice.
func (s *RedisStore) BlockingRemoveHead(ctx context.Context, queue string, timeout time.Duration) (string, []byte, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}

		wait := blockSlice
		if !deadline.IsZero() {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return "", nil, ErrQueueEmpty
			}
			wait = min(remaining, blockSlice)
		}

		res, err := s.client.BLPop(ctx, wait, queue).Result()
		switch {
		case errors.Is(err, redis.Nil):
			continue
		case err != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", nil, ctxErr
			}
			return "", nil, errors.Join(ErrStoreUnavailable, err)
		}

		// BLPOP replies with [key, element]
		if len(res) != 2 {
			return "", nil, fmt.Errorf("%w: unexpected BLPOP reply of %d elements", ErrStoreUnavailable, len(res))
		}
		return res[0], []byte(res[1]), nil
	}
}

// Len reports how many records are waiting in the queue.
func (s *RedisStore) Len(ctx context.Context, queue string) (int64, error) {
	n, err := s.client.LLen(ctx, queue).Result()
	if err != nil {
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	return n, nil
}
