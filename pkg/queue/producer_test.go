package queue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Sagar00752/hrms/pkg/queue"
)

func TestNewProducer(t *testing.T) {
	t.Parallel()

	t.Run("requires a store", func(t *testing.T) {
		t.Parallel()

		_, err := queue.NewProducer(nil)
		assert.ErrorIs(t, err, queue.ErrStoreNil)
	})

	t.Run("defaults to the email queue", func(t *testing.T) {
		t.Parallel()

		p, err := queue.NewProducer(queue.NewMemoryStore())
		require.NoError(t, err)
		assert.Equal(t, queue.DefaultQueueName, p.Queue())
	})

	t.Run("custom queue", func(t *testing.T) {
		t.Parallel()

		p, err := queue.NewProducer(queue.NewMemoryStore(), queue.WithProducerQueue("custom"), queue.WithProducerQueue(""))
		require.NoError(t, err)
		assert.Equal(t, "custom", p.Queue())
	})
}

func TestProducer_Enqueue(t *testing.T) {
	t.Parallel()

	t.Run("appends the encoded record", func(t *testing.T) {
		t.Parallel()

		store := queue.NewMemoryStore()
		p, err := queue.NewProducer(store)
		require.NoError(t, err)

		job := queue.NewWelcomeEmail("sam@example.com", "Welcome", map[string]string{"firstname": "Sam"})
		assert.True(t, p.Enqueue(context.Background(), job))
		require.Equal(t, 1, store.Len(queue.DefaultQueueName))

		_, payload, err := store.BlockingRemoveHead(context.Background(), queue.DefaultQueueName, time.Second)
		require.NoError(t, err)

		decoded, err := queue.Decode(payload)
		require.NoError(t, err)
		assert.Equal(t, job.ID, decoded.JobID())
	})

	t.Run("reports false when the store is unavailable", func(t *testing.T) {
		t.Parallel()

		log, buf := newTestLogger()
		store := &MockStore{}
		store.On("Append", mock.Anything, queue.DefaultQueueName, mock.Anything).
			Return(errors.Join(queue.ErrStoreUnavailable, errors.New("dial tcp: connection refused")))

		p, err := queue.NewProducer(store, queue.WithProducerLogger(log))
		require.NoError(t, err)

		assert.False(t, p.Enqueue(context.Background(), queue.NewWelcomeEmail("a@x.com", "", nil)))
		assert.Contains(t, buf.String(), "failed to enqueue job")
		store.AssertExpectations(t)
	})

	t.Run("reports false for jobs that cannot be encoded", func(t *testing.T) {
		t.Parallel()

		store := &MockStore{}
		p, err := queue.NewProducer(store)
		require.NoError(t, err)

		assert.False(t, p.Enqueue(context.Background(), nil))
		assert.False(t, p.Enqueue(context.Background(), smsJob{}))
		store.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProducer_EnqueueAsync(t *testing.T) {
	t.Parallel()

	t.Run("survives request cancellation", func(t *testing.T) {
		t.Parallel()

		store := queue.NewMemoryStore()
		p, err := queue.NewProducer(store)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		future := p.EnqueueAsync(ctx, queue.NewWelcomeEmail("a@x.com", "", nil))
		cancel()

		ok, err := future.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, store.Len(queue.DefaultQueueName))
	})

	t.Run("resolves to false on failure", func(t *testing.T) {
		t.Parallel()

		store := &MockStore{}
		store.On("Append", mock.Anything, mock.Anything, mock.Anything).Return(queue.ErrStoreUnavailable)

		p, err := queue.NewProducer(store, queue.WithEnqueueTimeout(100*time.Millisecond))
		require.NoError(t, err)

		ok, err := p.EnqueueAsync(context.Background(), queue.NewWelcomeEmail("a@x.com", "", nil)).AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("bounds the append with the enqueue timeout", func(t *testing.T) {
		t.Parallel()

		store := &MockStore{}
		store.On("Append", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				<-args.Get(0).(context.Context).Done()
			}).
			Return(context.DeadlineExceeded)

		p, err := queue.NewProducer(store, queue.WithEnqueueTimeout(30*time.Millisecond))
		require.NoError(t, err)

		ok, err := p.EnqueueAsync(context.Background(), queue.NewWelcomeEmail("a@x.com", "", nil)).AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
