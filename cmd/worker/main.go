package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Sagar00752/hrms/pkg/config"
	"github.com/Sagar00752/hrms/pkg/email"
	"github.com/Sagar00752/hrms/pkg/httpserver"
	"github.com/Sagar00752/hrms/pkg/logger"
	"github.com/Sagar00752/hrms/pkg/metrics"
	"github.com/Sagar00752/hrms/pkg/notification"
	"github.com/Sagar00752/hrms/pkg/queue"
	"github.com/Sagar00752/hrms/pkg/redis"
)

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)

	log := logger.FromConfig(logCfg, "worker")
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.Error("worker stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		redisCfg  redis.Config
		queueCfg  queue.Config
		emailCfg  email.Config
		notifyCfg notification.Config
		metricCfg metrics.Config
	)
	if err := errors.Join(
		config.Load(&redisCfg),
		config.Load(&queueCfg),
		config.Load(&emailCfg),
		config.Load(&notifyCfg),
		config.Load(&metricCfg),
	); err != nil {
		return err
	}

	sender, transport, err := email.New(emailCfg)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "email transport ready",
		logger.Component("worker"),
		logger.Transport(string(transport)))

	if v, ok := sender.(email.Verifier); ok {
		vctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := v.Verify(vctx); err != nil {
			log.WarnContext(ctx, "email transport verification failed, sends may fail",
				logger.Component("worker"),
				logger.Transport(string(transport)),
				logger.Error(err))
		}
		cancel()
	}

	// The worker loop retries store failures itself, so a Redis that is not
	// up yet only delays the first dequeue.
	rdb, err := redis.Connect(ctx, redisCfg, log)
	if rdb == nil {
		return err
	}
	if err != nil {
		log.WarnContext(ctx, "redis not ready, worker will keep retrying",
			logger.Component("worker"),
			logger.Error(err))
	}
	defer rdb.Close()

	store, err := queue.NewRedisStore(rdb)
	if err != nil {
		return err
	}

	welcome, err := notification.NewWelcomeHandler(sender,
		notification.WithCompanyName(notifyCfg.CompanyName),
		notification.WithDefaultSubject(notifyCfg.WelcomeSubject),
		notification.WithLogger(log),
	)
	if err != nil {
		return err
	}

	workerOpts := []queue.WorkerOption{
		queue.WithQueue(queueCfg.QueueName),
		queue.WithRetryBackoff(queueCfg.RetryBackoff),
		queue.WithBlockTimeout(queueCfg.BlockTimeout),
		queue.WithHandlerTimeout(queueCfg.HandlerTimeout),
		queue.WithWorkerLogger(log),
	}

	var ops *opsListener
	if metricCfg.Enabled {
		m := metrics.New(metricCfg.Namespace)
		workerOpts = append(workerOpts, queue.WithWorkerObserver(m))

		mux := http.NewServeMux()
		mux.Handle("GET /metrics", m.Handler())
		mux.Handle("GET /health/live", httpserver.LivenessHandler())
		mux.Handle("GET /health/ready", httpserver.ReadinessHandler(log, 3*time.Second,
			httpserver.Check{Name: "redis", Fn: redis.Healthcheck(rdb)}))

		ops = &opsListener{
			srv:     httpserver.New(httpserver.WithAddr(metricCfg.Addr), httpserver.WithLogger(log)),
			handler: mux,
		}
	}

	worker, err := queue.NewWorker(store, workerOpts...)
	if err != nil {
		return err
	}
	worker.RegisterHandler(welcome.QueueHandler())

	return runLoop(ctx, log, worker, ops)
}

// opsListener serves metrics and health probes next to the worker loop.
type opsListener struct {
	srv     *httpserver.Server
	handler http.Handler
}

// runLoop runs worker until ctx is done, with ops alongside when set.
// An ops listener failure is logged and the loop keeps draining the queue.
func runLoop(ctx context.Context, log *slog.Logger, worker *queue.Worker, ops *opsListener) error {
	var g errgroup.Group
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if ops != nil {
		g.Go(func() error {
			if err := ops.srv.Run(runCtx, ops.handler); err != nil {
				log.ErrorContext(runCtx, "metrics listener stopped, worker keeps running",
					logger.Component("metrics"),
					logger.Error(err))
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		return worker.Run(runCtx)
	})

	return g.Wait()
}
