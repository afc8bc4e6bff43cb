package queue

import (
	"context"
	"time"
)

// Store is a durable FIFO of serialized job records addressed by queue name.
// Payloads are opaque to the store.
type Store interface {
	// Append pushes payload onto the tail of the queue and returns once the store acknowledged it.
	Append(ctx context.Context, queue string, payload []byte) error

	// BlockingRemoveHead removes and returns the head of the queue, waiting until an
	// element exists. A zero timeout waits until ctx is done. Cancelling ctx ends the
	// wait for any timeout. When the timeout elapses without an element
	// ErrQueueEmpty is returned.
	BlockingRemoveHead(ctx context.Context, queue string, timeout time.Duration) (string, []byte, error)
}
