package queue

import "time"

// DefaultQueueName is the list every welcome email job is pushed to.
const DefaultQueueName = "emailQueue"

// Config holds the configuration for the job queue
type Config struct {
	QueueName      string        `env:"QUEUE_NAME" envDefault:"emailQueue"`
	RetryBackoff   time.Duration `env:"QUEUE_RETRY_BACKOFF" envDefault:"2s"`
	BlockTimeout   time.Duration `env:"QUEUE_BLOCK_TIMEOUT" envDefault:"5s"`
	HandlerTimeout time.Duration `env:"QUEUE_HANDLER_TIMEOUT" envDefault:"30s"`
	EnqueueTimeout time.Duration `env:"QUEUE_ENQUEUE_TIMEOUT" envDefault:"5s"`
}
