package queue

import "errors"

// Common errors
var (
	// ErrStoreNil is returned when a nil store is provided
	ErrStoreNil = errors.New("queue store cannot be nil")

	// ErrStoreUnavailable is returned when the queue store cannot be reached.
	// Consumers retry after a backoff, producers swallow it.
	ErrStoreUnavailable = errors.New("queue store unavailable")

	// ErrQueueEmpty is returned when a blocking remove times out without an element
	ErrQueueEmpty = errors.New("queue is empty")

	// ErrJobNil is returned when attempting to enqueue a nil job
	ErrJobNil = errors.New("job cannot be nil")

	// ErrMalformedRecord is returned when a payload cannot be decoded into a job record
	ErrMalformedRecord = errors.New("malformed job record")

	// ErrUnknownJobType is returned when a record carries a type tag without a decoder or handler
	ErrUnknownJobType = errors.New("unknown job type")

	// ErrNoHandlers is returned when worker has no handlers registered
	ErrNoHandlers = errors.New("no job handlers registered")

	// ErrWorkerRunning is returned when Run is called on a worker that is already running
	ErrWorkerRunning = errors.New("worker already running")

	// ErrHandlerPanic is returned when a handler panics while processing a job
	ErrHandlerPanic = errors.New("panic in job handler")
)
