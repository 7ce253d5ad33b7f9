package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/pushfan/pkg/api"
	"github.com/dmitrymomot/pushfan/pkg/config"
	"github.com/dmitrymomot/pushfan/pkg/dispatch"
	"github.com/dmitrymomot/pushfan/pkg/environment"
	"github.com/dmitrymomot/pushfan/pkg/httpserver"
	"github.com/dmitrymomot/pushfan/pkg/logger"
	"github.com/dmitrymomot/pushfan/pkg/mongo"
	"github.com/dmitrymomot/pushfan/pkg/redis"
	"github.com/dmitrymomot/pushfan/pkg/redisq"
	"github.com/dmitrymomot/pushfan/pkg/requestid"
	"github.com/dmitrymomot/pushfan/pkg/subscription"
	"github.com/dmitrymomot/pushfan/pkg/userstore"
	"github.com/dmitrymomot/pushfan/pkg/vapid"
	"github.com/dmitrymomot/pushfan/pkg/webpush"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	ServiceName     string `env:"SERVICE_NAME" envDefault:"pushd"`
	TriggerKey      string `env:"PUSH_TRIGGER_KEY"`
	UsersCollection string `env:"MONGODB_USERS_COLLECTION" envDefault:"users"`

	HTTP     httpserver.Config
	Registry subscription.Config
	Dispatch dispatch.Config
	WebPush  webpush.Config
	Mongo    mongo.Config
	Redis    redis.Config
	Queue    redisq.Config
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), dispatch.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	// VAPID credentials are read at dispatch time; a missing key only fails
	// dispatches, so it is reported here without stopping startup.
	credentials := vapid.EnvSource()
	if creds, err := credentials.Credentials(ctx); err != nil {
		log.WarnContext(ctx, "vapid credentials unreadable", logger.Error(err))
	} else if err := creds.Validate(); err != nil {
		log.WarnContext(ctx, "vapid credentials incomplete", logger.Error(err))
	}

	registry := subscription.NewRegistryFromConfig(cfg.Registry)
	engine := dispatch.NewEngineFromConfig(cfg.Dispatch, registry,
		webpush.NewClientFromConfig(cfg.WebPush),
		dispatch.WithLogger(log),
	)

	var checks []httpserver.Check

	var store userstore.Store
	if cfg.Mongo.Enabled() {
		client, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		store = userstore.NewMongoStore(client.Database(cfg.Mongo.Database), cfg.UsersCollection)
		checks = append(checks, httpserver.Check{Name: "mongo", Fn: mongo.Healthcheck(client)})
	} else {
		log.WarnContext(ctx, "MONGODB_URL not set, user documents are kept in memory")
		store = userstore.NewMemoryStore()
	}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})

		consumer := redisq.NewConsumerFromConfig(cfg.Queue, client,
			func(ctx context.Context, payload []byte) error {
				creds, err := credentials.Credentials(ctx)
				if err != nil {
					return err
				}
				// Let a dispatch that has started finish during shutdown.
				_, err = engine.Dispatch(context.WithoutCancel(ctx), payload, creds)
				return err
			},
			redisq.WithLogger(log),
		)
		g.Go(consumer.Run(ctx))
	}

	router := api.Router(api.RouterOptions{
		Registry:    registry,
		Store:       store,
		Dispatcher:  engine,
		Credentials: credentials,
		TriggerKey:  cfg.TriggerKey,
		Readiness:   checks,
		Logger:      log,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	g.Go(func() error {
		return srv.Run(ctx, router)
	})

	return g.Wait()
}
