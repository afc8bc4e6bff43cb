package queue_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Sagar00752/hrms/pkg/queue"
)

type observed struct {
	queue, jobType string
	ok             bool
	outcome        queue.Outcome
}

type fakeObserver struct {
	mu        sync.Mutex
	enqueued  []observed
	processed []observed
}

func (o *fakeObserver) JobEnqueued(q, jobType string, ok bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.enqueued = append(o.enqueued, observed{queue: q, jobType: jobType, ok: ok})
}

func (o *fakeObserver) JobProcessed(q, jobType string, outcome queue.Outcome, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.processed = append(o.processed, observed{queue: q, jobType: jobType, outcome: outcome})
}

func TestProducer_Observer(t *testing.T) {
	t.Parallel()

	obs := &fakeObserver{}
	store := &MockStore{}
	store.On("Append", mock.Anything, "q", mock.Anything).Return(nil).Once()
	store.On("Append", mock.Anything, "q", mock.Anything).Return(queue.ErrStoreUnavailable).Once()

	log, _ := newTestLogger()
	p, err := queue.NewProducer(store,
		queue.WithProducerQueue("q"),
		queue.WithProducerLogger(log),
		queue.WithProducerObserver(obs),
	)
	require.NoError(t, err)

	job := queue.NewWelcomeEmail("a@x.com", "", nil)
	assert.True(t, p.Enqueue(context.Background(), job))
	assert.False(t, p.Enqueue(context.Background(), job))
	assert.False(t, p.Enqueue(context.Background(), nil))

	assert.Equal(t, []observed{
		{queue: "q", jobType: "welcome_email", ok: true},
		{queue: "q", jobType: "welcome_email", ok: false},
		{queue: "q", jobType: "unknown", ok: false},
	}, obs.enqueued)
}

func TestWorker_Observer(t *testing.T) {
	t.Parallel()

	obs := &fakeObserver{}
	w, _ := newTestWorker(t, queue.NewMemoryStore(), queue.WithQueue("q"), queue.WithWorkerObserver(obs))

	fail := true
	w.RegisterHandler(queue.NewHandler(func(ctx context.Context, job queue.WelcomeEmail) error {
		if fail {
			return errors.New("smtp down")
		}
		return nil
	}))

	data, err := queue.Encode(queue.NewWelcomeEmail("a@x.com", "", nil))
	require.NoError(t, err)

	ctx := context.Background()
	_ = w.Process(ctx, data)
	fail = false
	_ = w.Process(ctx, data)
	_ = w.Process(ctx, []byte(`not json`))
	_ = w.Process(ctx, []byte(`{"type":"sms"}`))

	assert.Equal(t, []observed{
		{queue: "q", jobType: "welcome_email", outcome: queue.OutcomeFailed},
		{queue: "q", jobType: "welcome_email", outcome: queue.OutcomeCompleted},
		{queue: "q", jobType: "unknown", outcome: queue.OutcomeMalformed},
		{queue: "q", jobType: "unknown", outcome: queue.OutcomeSkipped},
	}, obs.processed)
}
