package queue

import (
	"bytes"
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store in process memory for testing and local development.
// Records do not survive a restart.
type MemoryStore struct {
	mu     sync.Mutex
	queues map[string][][]byte

	// signal is closed and replaced on every append to wake blocked readers
	signal chan struct{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		queues: make(map[string][][]byte),
		signal: make(chan struct{}),
	}
}

// Append implements Store.
func (s *MemoryStore) Append(ctx context.Context, queue string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy so callers can reuse their buffer
	s.queues[queue] = append(s.queues[queue], bytes.Clone(payload))
	close(s.signal)
	s.signal = make(chan struct{})

	return nil
}

// BlockingRemoveHead implements Store.
func (s *MemoryStore) BlockingRemoveHead(ctx context.Context, queue string, timeout time.Duration) (string, []byte, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		s.mu.Lock()
		if items := s.queues[queue]; len(items) > 0 {
			head := items[0]
			items[0] = nil
			s.queues[queue] = items[1:]
			s.mu.Unlock()
			return queue, head, nil
		}
		wait := s.signal
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", nil, ctx.Err()
		case <-expired:
			return "", nil, ErrQueueEmpty
		case <-wait:
		}
	}
}

// Len reports how many records are waiting in the queue.
func (s *MemoryStore) Len(queue string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queues[queue])
}
