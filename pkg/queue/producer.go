package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sagar00752/hrms/pkg/async"
	"github.com/Sagar00752/hrms/pkg/logger"
)

// Producer serializes job records and appends them to the queue store.
// Enqueueing is best-effort: failures are logged and never returned as errors.
type Producer struct {
	store          Store
	queue          string
	enqueueTimeout time.Duration
	logger         *slog.Logger
	observer       Observer
}

// NewProducer creates a new Producer
func NewProducer(store Store, opts ...ProducerOption) (*Producer, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	options := &producerOptions{
		queue:          DefaultQueueName,
		enqueueTimeout: 5 * time.Second,
		logger:         slog.Default(),
		observer:       nopObserver{},
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Producer{
		store:          store,
		queue:          options.queue,
		enqueueTimeout: options.enqueueTimeout,
		logger:         options.logger,
		observer:       options.observer,
	}, nil
}

// Enqueue appends job to the tail of the queue and reports whether it was accepted.
// Encoding and store failures are logged and reported as false.
func (p *Producer) Enqueue(ctx context.Context, job Job) bool {
	payload, err := Encode(job)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to encode job",
			logger.Component("producer"),
			logger.Queue(p.queue),
			logger.Error(err))
		p.observer.JobEnqueued(p.queue, jobTypeOf(job), false)
		return false
	}

	if err := p.store.Append(ctx, p.queue, payload); err != nil {
		p.logger.ErrorContext(ctx, "failed to enqueue job",
			logger.Component("producer"),
			logger.Queue(p.queue),
			logger.JobType(string(job.JobType())),
			logger.JobID(job.JobID()),
			logger.Error(err))
		p.observer.JobEnqueued(p.queue, string(job.JobType()), false)
		return false
	}

	p.logger.DebugContext(ctx, "job enqueued",
		logger.Component("producer"),
		logger.Queue(p.queue),
		logger.JobType(string(job.JobType())),
		logger.JobID(job.JobID()))

	p.observer.JobEnqueued(p.queue, string(job.JobType()), true)
	return true
}

// EnqueueAsync enqueues job on its own goroutine and returns immediately.
// The work is detached from ctx cancellation so a finished HTTP request does not
// abort it; it is bounded by the enqueue timeout instead. Callers are not expected
// to await the returned future.
func (p *Producer) EnqueueAsync(ctx context.Context, job Job) *async.Future[bool] {
	detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.enqueueTimeout)
	return async.Async(detached, job, func(ctx context.Context, job Job) (bool, error) {
		defer cancel()
		return p.Enqueue(ctx, job), nil
	})
}

// Queue returns the name of the queue jobs are appended to.
func (p *Producer) Queue() string {
	return p.queue
}

func jobTypeOf(job Job) string {
	if job == nil {
		return "unknown"
	}
	return string(job.JobType())
}
