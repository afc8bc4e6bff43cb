// Package redis connects to the Redis server that backs the email job queue.
//
// Config is read from REDIS_URL or from the discrete REDIS_HOST, REDIS_PORT,
// REDIS_USERNAME, REDIS_PASSWORD, REDIS_DB and REDIS_TLS variables. Options
// turns it into go-redis options with ContextTimeoutEnabled set, so a context
// deadline can interrupt a blocking BLPOP.
//
// Connect pings with retries. A server that never answers yields the client
// and ErrRedisNotReady; the api process logs it and keeps serving because
// enqueueing is best-effort, while the worker simply keeps retrying through
// its backoff loop. A dial hook logs connection loss and recovery once per
// transition.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg, log)
//	if errors.Is(err, redis.ErrRedisNotReady) {
//	    log.Warn("redis not reachable yet", logger.Error(err))
//	}
//	defer client.Close()
//
// Healthcheck adapts the client for the readiness probe.
package redis
