package queue

import (
	"log/slog"
	"time"
)

// ProducerOption is a functional option for configuring a Producer
type ProducerOption func(*producerOptions)

type producerOptions struct {
	queue          string
	enqueueTimeout time.Duration
	logger         *slog.Logger
	observer       Observer
}

// WithProducerQueue sets the queue jobs are appended to
func WithProducerQueue(queue string) ProducerOption {
	return func(o *producerOptions) {
		if queue != "" {
			o.queue = queue
		}
	}
}

// WithEnqueueTimeout bounds asynchronous enqueue calls
func WithEnqueueTimeout(d time.Duration) ProducerOption {
	return func(o *producerOptions) {
		if d > 0 {
			o.enqueueTimeout = d
		}
	}
}

// WithProducerLogger sets the logger for the producer
func WithProducerLogger(logger *slog.Logger) ProducerOption {
	return func(o *producerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithProducerObserver reports every enqueue result to o
func WithProducerObserver(o Observer) ProducerOption {
	return func(opts *producerOptions) {
		if o != nil {
			opts.observer = o
		}
	}
}
