package main

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sagar00752/hrms/pkg/httpserver"
	"github.com/Sagar00752/hrms/pkg/queue"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLoopWorker(t *testing.T, store queue.Store, seen chan<- string) *queue.Worker {
	t.Helper()

	w, err := queue.NewWorker(store, queue.WithBlockTimeout(20*time.Millisecond))
	require.NoError(t, err)
	if seen != nil {
		w.RegisterHandler(queue.NewHandler(func(_ context.Context, job queue.WelcomeEmail) error {
			seen <- job.To
			return nil
		}))
	}
	return w
}

func TestRunLoop(t *testing.T) {
	t.Parallel()

	t.Run("keeps draining when the ops listener cannot bind", func(t *testing.T) {
		t.Parallel()

		taken, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		t.Cleanup(func() { _ = taken.Close() })

		var logs lockedBuffer
		log := slog.New(slog.NewTextHandler(&logs, nil))

		store := queue.NewMemoryStore()
		seen := make(chan string, 1)
		w := newLoopWorker(t, store, seen)

		ops := &opsListener{
			srv:     httpserver.New(httpserver.WithAddr(taken.Addr().String()), httpserver.WithLogger(log)),
			handler: http.NotFoundHandler(),
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := make(chan error, 1)
		go func() { done <- runLoop(ctx, log, w, ops) }()

		require.Eventually(t, func() bool {
			return strings.Contains(logs.String(), "metrics listener stopped, worker keeps running")
		}, 2*time.Second, 10*time.Millisecond)

		data, err := queue.Encode(queue.NewWelcomeEmail("still-running@x.com", "", nil))
		require.NoError(t, err)
		require.NoError(t, store.Append(context.Background(), queue.DefaultQueueName, data))

		select {
		case to := <-seen:
			assert.Equal(t, "still-running@x.com", to)
		case <-time.After(2 * time.Second):
			t.Fatal("worker stopped with the listener")
		}

		cancel()
		assert.NoError(t, <-done)
	})

	t.Run("stops the ops listener when the worker cannot start", func(t *testing.T) {
		t.Parallel()

		log := slog.New(slog.NewTextHandler(&lockedBuffer{}, nil))
		w := newLoopWorker(t, queue.NewMemoryStore(), nil)
		ops := &opsListener{
			srv:     httpserver.New(httpserver.WithAddr("127.0.0.1:0"), httpserver.WithLogger(log)),
			handler: http.NotFoundHandler(),
		}

		done := make(chan error, 1)
		go func() { done <- runLoop(context.Background(), log, w, ops) }()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, queue.ErrNoHandlers)
		case <-time.After(3 * time.Second):
			t.Fatal("runLoop did not return")
		}
	})
}
