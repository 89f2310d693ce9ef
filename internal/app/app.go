package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/catalog-service/internal/cfg"
	v1Http "github.com/DRSN-tech/catalog-service/internal/delivery/v1/http"
	"github.com/DRSN-tech/catalog-service/internal/infrastructure/kafka"
	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/catalog-service/internal/repository/redis"
	redisConv "github.com/DRSN-tech/catalog-service/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/clients"
	"github.com/DRSN-tech/catalog-service/pkg/closer"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/DRSN-tech/catalog-service/pkg/postgres"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}

	gracefulCloser := closer.NewCloser(2 * time.Second)
	gracefulCloser.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	viewConv := redisConv.NewProductViewConverterImpl()

	ctxGetter := trmpgx.DefaultCtxGetter
	trManager := manager.Must(trmpgx.NewDefaultFactory(db.Pool))

	productRepo := pgdb.NewProductRepo(db.Pool, ctxGetter, prConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, ctxGetter, outboxConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	gracefulCloser.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, viewConv, cfg.Redis, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}
	gracefulCloser.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	workerCtx, workerCancel := context.WithCancel(context.Background())
	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	outboxWorker.Start(workerCtx)
	gracefulCloser.Add(func(ctx context.Context) error {
		workerCancel()
		outboxWorker.Stop()
		return nil
	})

	productUC := usecase.NewProductUC(productRepo, outboxRepo, cacheRepo, trManager, logger)
	summaryUC := usecase.NewSummaryUC(productRepo)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(productUC, summaryUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	gracefulCloser.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := gracefulCloser.Close(shutdownCtx); err != nil {
		logger.Warnf("Shutdown finished with errors: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
