package queue

import (
	"log/slog"
	"time"
)

// WorkerOption is a functional option for configuring a worker
type WorkerOption func(*workerOptions)

type workerOptions struct {
	queue          string
	retryBackoff   time.Duration
	blockTimeout   time.Duration
	handlerTimeout time.Duration
	logger         *slog.Logger
	observer       Observer
}

// WithQueue sets which queue the worker drains
func WithQueue(queue string) WorkerOption {
	return func(o *workerOptions) {
		if queue != "" {
			o.queue = queue
		}
	}
}

// WithRetryBackoff sets the fixed delay before waiting again after the store failed
func WithRetryBackoff(d time.Duration) WorkerOption {
	return func(o *workerOptions) {
		if d > 0 {
			o.retryBackoff = d
		}
	}
}

// WithBlockTimeout sets how long one blocking remove waits before it is reissued.
// Zero waits until the worker is stopped.
func WithBlockTimeout(d time.Duration) WorkerOption {
	return func(o *workerOptions) {
		if d >= 0 {
			o.blockTimeout = d
		}
	}
}

// WithHandlerTimeout bounds the time a single job may spend in its handler
func WithHandlerTimeout(d time.Duration) WorkerOption {
	return func(o *workerOptions) {
		if d > 0 {
			o.handlerTimeout = d
		}
	}
}

// WithWorkerLogger sets the logger for the worker
func WithWorkerLogger(logger *slog.Logger) WorkerOption {
	return func(o *workerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWorkerObserver reports the outcome of every record to o
func WithWorkerObserver(o Observer) WorkerOption {
	return func(opts *workerOptions) {
		if o != nil {
			opts.observer = o
		}
	}
}
