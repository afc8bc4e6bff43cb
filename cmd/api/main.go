package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sagar00752/hrms/pkg/auth"
	"github.com/Sagar00752/hrms/pkg/clientip"
	"github.com/Sagar00752/hrms/pkg/config"
	"github.com/Sagar00752/hrms/pkg/employee"
	"github.com/Sagar00752/hrms/pkg/environment"
	"github.com/Sagar00752/hrms/pkg/httpserver"
	"github.com/Sagar00752/hrms/pkg/jwt"
	"github.com/Sagar00752/hrms/pkg/logger"
	"github.com/Sagar00752/hrms/pkg/metrics"
	"github.com/Sagar00752/hrms/pkg/mongo"
	"github.com/Sagar00752/hrms/pkg/notification"
	"github.com/Sagar00752/hrms/pkg/queue"
	"github.com/Sagar00752/hrms/pkg/ratelimiter"
	"github.com/Sagar00752/hrms/pkg/redis"
	"github.com/Sagar00752/hrms/pkg/requestid"
)

type apiConfig struct {
	ReportTimezone   string        `env:"REPORT_TIMEZONE" envDefault:"Local"`
	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"3s"`
	RateLimitEnabled bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
}

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)

	log := logger.FromConfig(logCfg, "api",
		requestid.LoggerExtractor(),
		clientip.LoggerExtractor(),
		environment.LoggerExtractor(),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, environment.Parse(logCfg.Env)); err != nil {
		log.Error("api stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, env environment.Environment) error {
	var (
		appCfg    apiConfig
		httpCfg   httpserver.Config
		mongoCfg  mongo.Config
		redisCfg  redis.Config
		queueCfg  queue.Config
		jwtCfg    jwt.Config
		ipCfg     clientip.Config
		limitCfg  ratelimiter.Config
		notifyCfg notification.Config
		metricCfg metrics.Config
	)
	if err := errors.Join(
		config.Load(&appCfg),
		config.Load(&httpCfg),
		config.Load(&mongoCfg),
		config.Load(&redisCfg),
		config.Load(&queueCfg),
		config.Load(&jwtCfg),
		config.Load(&ipCfg),
		config.Load(&limitCfg),
		config.Load(&notifyCfg),
		config.Load(&metricCfg),
	); err != nil {
		return err
	}

	reportLoc, err := time.LoadLocation(appCfg.ReportTimezone)
	if err != nil {
		return fmt.Errorf("REPORT_TIMEZONE: %w", err)
	}

	// Records live in Mongo; without it there is nothing to serve.
	mongoClient, err := mongo.Connect(ctx, mongoCfg, log)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()
	db := mongoClient.Database(mongoCfg.Database)

	// Redis only carries welcome emails and throttle state, so the API starts
	// without it and go-redis reconnects once it is back.
	rdb, err := redis.Connect(ctx, redisCfg, log)
	if rdb == nil {
		return err
	}
	if err != nil {
		log.WarnContext(ctx, "redis not ready, welcome emails are dropped until it recovers",
			logger.Component("api"),
			logger.Error(err))
	}
	defer rdb.Close()

	var m *metrics.Metrics
	producerOpts := []queue.ProducerOption{
		queue.WithProducerQueue(queueCfg.QueueName),
		queue.WithEnqueueTimeout(queueCfg.EnqueueTimeout),
		queue.WithProducerLogger(log),
	}
	if metricCfg.Enabled {
		m = metrics.New(metricCfg.Namespace)
		producerOpts = append(producerOpts, queue.WithProducerObserver(m))
	}

	store, err := queue.NewRedisStore(rdb)
	if err != nil {
		return err
	}
	producer, err := queue.NewProducer(store, producerOpts...)
	if err != nil {
		return err
	}

	tokens, err := jwt.NewFromConfig(jwtCfg)
	if err != nil {
		return err
	}

	users, err := auth.NewMongoStorage(ctx, db)
	if err != nil {
		return err
	}
	employees, err := employee.NewMongoStorage(ctx, db)
	if err != nil {
		return err
	}

	var limiter *ratelimiter.Bucket
	if appCfg.RateLimitEnabled {
		limitStore, err := ratelimiter.NewRedisStore(rdb)
		if err != nil {
			return err
		}
		if limiter, err = ratelimiter.NewBucket(limitStore, limitCfg); err != nil {
			return err
		}
	}

	router := newRouter(routerDeps{
		env:            env,
		log:            log,
		trustedHeaders: ipCfg.TrustedHeaders,
		auth:           auth.NewService(users, tokens, auth.WithLogger(log)),
		employees: employee.NewService(employees, producer,
			employee.WithLogger(log),
			employee.WithWelcomeSubject(notifyCfg.WelcomeSubject),
		),
		reports:      employee.NewReportWriter(employee.WithLocation(reportLoc)),
		limiter:      limiter,
		metrics:      m,
		readyTimeout: appCfg.ReadinessTimeout,
		checks: []httpserver.Check{
			{Name: "mongo", Fn: mongo.Healthcheck(mongoClient)},
			{Name: "redis", Fn: redis.Healthcheck(rdb)},
		},
	})

	server := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return server.Run(ctx, router)
}
