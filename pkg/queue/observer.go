package queue

import "time"

// Outcome is how the worker finished with one record.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeFailed    Outcome = "failed"
	OutcomeSkipped   Outcome = "skipped"   // no handler for the type
	OutcomeMalformed Outcome = "malformed" // undecodable payload
)

// Observer is notified of enqueue and processing results.
// Implementations must be safe for concurrent use.
type Observer interface {
	JobEnqueued(queue, jobType string, ok bool)
	JobProcessed(queue, jobType string, outcome Outcome, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) JobEnqueued(string, string, bool)                    {}
func (nopObserver) JobProcessed(string, string, Outcome, time.Duration) {}
