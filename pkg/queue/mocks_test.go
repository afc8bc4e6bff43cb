package queue_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Sagar00752/hrms/pkg/queue"
)

// MockStore is a mock implementation of queue.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Append(ctx context.Context, name string, payload []byte) error {
	args := m.Called(ctx, name, payload)
	return args.Error(0)
}

func (m *MockStore) BlockingRemoveHead(ctx context.Context, name string, timeout time.Duration) (string, []byte, error) {
	args := m.Called(ctx, name, timeout)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).([]byte), args.Error(2)
}

// flakyStore fails the first n removals with a transport error.
type flakyStore struct {
	*queue.MemoryStore
	failures atomic.Int32
	calls    atomic.Int32
}

func newFlakyStore(n int32) *flakyStore {
	s := &flakyStore{MemoryStore: queue.NewMemoryStore()}
	s.failures.Store(n)
	return s
}

func (s *flakyStore) BlockingRemoveHead(ctx context.Context, name string, timeout time.Duration) (string, []byte, error) {
	s.calls.Add(1)
	if s.failures.Add(-1) >= 0 {
		return "", nil, errors.Join(queue.ErrStoreUnavailable, errors.New("connection refused"))
	}
	return s.MemoryStore.BlockingRemoveHead(ctx, name, timeout)
}

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}
