// Package metrics exposes Prometheus counters for the HTTP API and the email
// queue.
//
// Each process builds its own Metrics with New and serves Handler on
// /metrics. The api mounts Middleware on its router and passes the value to
// queue.WithProducerObserver; the worker passes it to
// queue.WithWorkerObserver and serves Handler on METRICS_ADDR.
package metrics
