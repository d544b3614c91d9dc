package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/logistics-tracker/docs"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/app"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/config"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/handler"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/jobs"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/postgres"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/service"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/sqlite"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/store"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/store/jsonfile"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/store/memory"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/store/sqlstore"
	"github.com/SergeyBogomolovv/logistics-tracker/pkg/cache"
	"github.com/SergeyBogomolovv/logistics-tracker/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Logistics Tracker API
// @version         1.0
// @description     Order registration, shipment and delivery tracking
func main() {
	conf, err := config.New()
	panicIfErr("failed to load config", err)
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	policy, err := service.ParseDeliveryPolicy(conf.Delivery.Policy)
	panicIfErr("invalid config", err)

	backend, txManager, closeStore, err := newStorage(conf.Storage, conf.Postgres)
	panicIfErr("failed to open storage", err)
	defer closeStore()
	logger.Info("storage opened", slog.String("driver", conf.Storage.Driver))

	orderRepo := store.NewRepo(backend)
	panicIfErr("failed to init storage", orderRepo.Init(context.Background()))

	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager, orderRepo, cache,
		service.WithDeliveryPolicy(policy),
	)

	handler.RegisterMetrics(prometheus.DefaultRegisterer)
	jobs.RegisterMetrics(prometheus.DefaultRegisterer)

	httpHandler := handler.NewHTTPHandler(logger, orderService)
	overdueJob := jobs.NewOverdueJob(logger, conf.Jobs.OverdueSchedule, orderService)

	app := app.New(logger, conf, prometheus.DefaultGatherer)

	app.SetHTTPHandlers(httpHandler)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	app.SetStarters(cache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetJobs(overdueJob)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	go func() {
		if err := app.Wait(); err != nil {
			logger.Error("application failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// newStorage opens the record store backend selected by the driver.
// PostgreSQL transitions run serializable so that several instances can share one database.
func newStorage(cfg config.Storage, pg config.Postgres) (store.Backend, trm.Manager, func() error, error) {
	nop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.New(pg)
		if err != nil {
			return nil, nil, nil, err
		}
		txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelSerializable))
		return sqlstore.New(db, sqlstore.Postgres), txManager, db.Close, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return sqlstore.New(db, sqlstore.SQLite), trm.NewManager(db), db.Close, nil
	case config.DriverJSON:
		backend, err := jsonfile.New(cfg.JSONDir)
		if err != nil {
			return nil, nil, nil, err
		}
		return backend, trm.Nop(), nop, nil
	case config.DriverMemory:
		return memory.New(), trm.Nop(), nop, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
