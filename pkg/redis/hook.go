package redis

import (
	"context"
	"log/slog"
	"net"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	"github.com/Sagar00752/hrms/pkg/logger"
)

// logHook reports connection loss and recovery once per transition
// instead of once per failed dial.
type logHook struct {
	log  *slog.Logger
	addr string
	down atomic.Bool
}

func newLogHook(log *slog.Logger, addr string) *logHook {
	return &logHook{log: log, addr: addr}
}

func (h *logHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			if h.down.CompareAndSwap(false, true) {
				h.log.ErrorContext(ctx, "redis connection error",
					logger.Component("redis"),
					slog.String("addr", h.addr),
					logger.Error(err))
			}
			return nil, err
		}
		if h.down.CompareAndSwap(true, false) {
			h.log.InfoContext(ctx, "redis reconnected",
				logger.Component("redis"),
				slog.String("addr", h.addr))
		}
		return conn, nil
	}
}

func (h *logHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return next
}

func (h *logHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}
