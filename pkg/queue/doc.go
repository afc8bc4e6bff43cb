// Package queue hands background jobs from the API process to the worker process
// through a shared list in Redis.
//
// The package is organised around three main components:
//
//   - Store    : durable FIFO of serialized records (RedisStore, MemoryStore)
//   - Producer : encodes a Job and appends it to the tail, best-effort
//   - Worker   : blocks on the head, decodes one record at a time and dispatches
//     it to the Handler registered for its type
//
// # Job records
//
// A Job is one variant of a tagged union. Each variant writes its tag into the
// "type" field of its JSON form; Decode reads the tag first and rejects payloads
// without one (ErrMalformedRecord) or with an unknown one (ErrUnknownJobType).
//
//	{"type":"welcome_email","to":"a@x.com","subject":"Welcome","templateData":{"firstname":"Sam"},"createdAt":"2025-01-02T15:04:05Z"}
//
// # Delivery semantics
//
// Dequeueing is destructive and there is no acknowledgement, so delivery is
// at-most-once: a worker crash between dequeue and handler completion loses
// that record. Failed records are logged and discarded; there are no retries
// and no dead-letter queue.
//
// # Usage
//
//	store, _ := queue.NewRedisStore(client)
//
//	producer, _ := queue.NewProducer(store, queue.WithProducerQueue("emailQueue"))
//	producer.EnqueueAsync(ctx, queue.NewWelcomeEmail("a@x.com", "Welcome", map[string]string{"firstname": "Sam"}))
//
//	worker, _ := queue.NewWorker(store, queue.WithQueue("emailQueue"))
//	worker.RegisterHandler(queue.NewHandler(func(ctx context.Context, job queue.WelcomeEmail) error {
//	    return send(ctx, job)
//	}))
//	err := worker.Run(ctx) // returns when ctx is cancelled
//
// # Error Handling
//
// Store transport failures wrap ErrStoreUnavailable. The worker retries them after
// a fixed backoff; the producer logs them and returns false.
package queue
