package queue

import (
	"context"
	"fmt"
)

type (
	// Handler processes one decoded job record of a single type.
	Handler interface {
		JobType() JobType
		Handle(ctx context.Context, job Job) error
	}

	JobHandlerFunc[J Job] func(ctx context.Context, job J) error
)

// NewHandler builds a Handler for the job variant J.
// The handler is registered under the tag J reports.
func NewHandler[J Job](handler JobHandlerFunc[J]) Handler {
	var zero J
	return &typedHandler[J]{
		jobType: zero.JobType(),
		handler: handler,
	}
}

type typedHandler[J Job] struct {
	jobType JobType
	handler JobHandlerFunc[J]
}

func (h *typedHandler[J]) JobType() JobType {
	return h.jobType
}

func (h *typedHandler[J]) Handle(ctx context.Context, job Job) error {
	j, ok := job.(J)
	if !ok {
		return fmt.Errorf("%w: handler for %q received %T", ErrUnknownJobType, h.jobType, job)
	}
	return h.handler(ctx, j)
}
