// Package ratelimiter throttles requests with a token bucket.
//
// The API puts the register and login endpoints behind a bucket keyed by
// client address, so password guessing is slowed down without touching the
// other routes. Bucket state lives in Redis (RedisStore) so all API
// instances share a limit; MemoryStore serves tests and single-instance
// development.
//
//	bucket, _ := ratelimiter.NewBucket(store, ratelimiter.Config{
//	    Capacity:       10,
//	    RefillRate:     1,
//	    RefillInterval: 6 * time.Second,
//	})
//	r.Use(ratelimiter.Middleware(bucket, ratelimiter.Composite(ratelimiter.Static("auth"), ratelimiter.ByClientIP), log))
//
// Denied requests get 429 with Retry-After and the usual JSON envelope.
// A failing store lets requests through.
package ratelimiter
