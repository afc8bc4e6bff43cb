package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Sagar00752/hrms/pkg/logger"
)

// State is the phase of the worker loop.
type State int32

const (
	StateIdle State = iota
	StateWaiting
	StateProcessing
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateProcessing:
		return "processing"
	default:
		return "idle"
	}
}

// maxPayloadPreview caps how much of an undecodable payload is logged
const maxPayloadPreview = 256

// Worker drains a single queue and dispatches each record to the handler
// registered for its type. Records are processed strictly one at a time and
// are discarded after their handler returns, whatever the outcome.
type Worker struct {
	store    Store
	handlers map[JobType]Handler
	mu       sync.RWMutex

	// Configuration
	queue          string
	retryBackoff   time.Duration
	blockTimeout   time.Duration
	handlerTimeout time.Duration
	logger         *slog.Logger
	observer       Observer

	// State management
	state   atomic.Int32
	running atomic.Bool
}

// NewWorker creates a new job worker
func NewWorker(store Store, opts ...WorkerOption) (*Worker, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	// Default options
	options := &workerOptions{
		queue:          DefaultQueueName,
		retryBackoff:   2 * time.Second,
		blockTimeout:   5 * time.Second,
		handlerTimeout: 30 * time.Second,
		logger:         slog.Default(),
		observer:       nopObserver{},
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Worker{
		store:          store,
		handlers:       make(map[JobType]Handler),
		queue:          options.queue,
		retryBackoff:   options.retryBackoff,
		blockTimeout:   options.blockTimeout,
		handlerTimeout: options.handlerTimeout,
		logger:         options.logger,
		observer:       options.observer,
	}, nil
}

// RegisterHandler registers a handler for the job type it reports.
// A later registration for the same type replaces the earlier one.
func (w *Worker) RegisterHandler(handler Handler) {
	if handler == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.handlers[handler.JobType()] = handler
}

// RegisterHandlers registers multiple job handlers
func (w *Worker) RegisterHandlers(handlers ...Handler) {
	for _, h := range handlers {
		w.RegisterHandler(h)
	}
}

// State reports the current phase of the loop.
func (w *Worker) State() State {
	return State(w.state.Load())
}

// Run drains the queue until ctx is cancelled.
// Store failures are retried after a fixed backoff and per-record failures are
// logged and discarded, so Run only returns on cancellation or misuse.
func (w *Worker) Run(ctx context.Context) error {
	w.mu.RLock()
	registered := len(w.handlers)
	w.mu.RUnlock()

	if registered == 0 {
		return ErrNoHandlers
	}
	if !w.running.CompareAndSwap(false, true) {
		return ErrWorkerRunning
	}
	defer w.running.Store(false)
	defer w.state.Store(int32(StateIdle))

	w.logger.InfoContext(ctx, "worker started",
		logger.Component("worker"),
		logger.Queue(w.queue),
		slog.Duration("block_timeout", w.blockTimeout),
		slog.Duration("retry_backoff", w.retryBackoff))

	for ctx.Err() == nil {
		w.next(ctx)
	}

	w.logger.Info("worker stopped",
		logger.Component("worker"),
		logger.Queue(w.queue))

	return nil
}

// next runs one Waiting -> Processing -> Waiting cycle
func (w *Worker) next(ctx context.Context) {
	w.state.Store(int32(StateWaiting))

	_, payload, err := w.store.BlockingRemoveHead(ctx, w.queue, w.blockTimeout)
	if err != nil {
		if errors.Is(err, ErrQueueEmpty) || ctx.Err() != nil {
			return
		}

		w.logger.ErrorContext(ctx, "failed to dequeue job, retrying after backoff",
			logger.Component("worker"),
			logger.Queue(w.queue),
			slog.Duration("backoff", w.retryBackoff),
			logger.Error(err))

		w.sleep(ctx, w.retryBackoff)
		return
	}

	w.state.Store(int32(StateProcessing))
	defer w.state.Store(int32(StateWaiting))

	// Errors are logged inside Process; nothing feeds back into the queue
	_ = w.Process(ctx, payload)
}

// Process decodes one payload and runs its handler.
// The returned error is informational: the record is never requeued.
func (w *Worker) Process(ctx context.Context, payload []byte) error {
	job, err := Decode(payload)
	if err != nil {
		if errors.Is(err, ErrUnknownJobType) {
			w.logger.WarnContext(ctx, "unknown job type, skipping",
				logger.Component("worker"),
				logger.Queue(w.queue),
				logger.Error(err))
			w.observer.JobProcessed(w.queue, "unknown", OutcomeSkipped, 0)
			return err
		}

		w.logger.ErrorContext(ctx, "failed to decode job, discarding",
			logger.Component("worker"),
			logger.Queue(w.queue),
			slog.String("payload", preview(payload)),
			logger.Error(err))
		w.observer.JobProcessed(w.queue, "unknown", OutcomeMalformed, 0)
		return err
	}

	w.mu.RLock()
	handler, ok := w.handlers[job.JobType()]
	w.mu.RUnlock()

	if !ok {
		err := fmt.Errorf("%w: no handler for %q", ErrUnknownJobType, job.JobType())
		w.logger.WarnContext(ctx, "no handler registered for job type, skipping",
			logger.Component("worker"),
			logger.Queue(w.queue),
			logger.JobType(string(job.JobType())),
			logger.JobID(job.JobID()))
		w.observer.JobProcessed(w.queue, string(job.JobType()), OutcomeSkipped, 0)
		return err
	}

	return w.handle(ctx, handler, job)
}

// handle executes a handler, converting panics into errors
func (w *Worker) handle(ctx context.Context, handler Handler, job Job) (retErr error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			retErr = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
			w.logger.ErrorContext(ctx, "job handler panicked",
				logger.Component("worker"),
				logger.Queue(w.queue),
				logger.JobType(string(job.JobType())),
				logger.JobID(job.JobID()),
				slog.Any("panic", r))
			w.observer.JobProcessed(w.queue, string(job.JobType()), OutcomeFailed, time.Since(start))
		}
	}()

	// Not tied to the loop context so a shutdown lets the job finish
	hctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.handlerTimeout)
	defer cancel()

	w.logger.InfoContext(ctx, "processing job",
		logger.Component("worker"),
		logger.Queue(w.queue),
		logger.JobType(string(job.JobType())),
		logger.JobID(job.JobID()))

	if err := handler.Handle(hctx, job); err != nil {
		w.logger.ErrorContext(ctx, "job failed, discarding",
			logger.Component("worker"),
			logger.Queue(w.queue),
			logger.JobType(string(job.JobType())),
			logger.JobID(job.JobID()),
			logger.Duration(time.Since(start)),
			logger.Error(err))
		w.observer.JobProcessed(w.queue, string(job.JobType()), OutcomeFailed, time.Since(start))
		return err
	}

	w.logger.InfoContext(ctx, "job completed",
		logger.Component("worker"),
		logger.Queue(w.queue),
		logger.JobType(string(job.JobType())),
		logger.JobID(job.JobID()),
		logger.Duration(time.Since(start)))

	w.observer.JobProcessed(w.queue, string(job.JobType()), OutcomeCompleted, time.Since(start))
	return nil
}

// sleep waits for d or until ctx is done
func (w *Worker) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func preview(payload []byte) string {
	if len(payload) > maxPayloadPreview {
		return string(payload[:maxPayloadPreview]) + "..."
	}
	return string(payload)
}
