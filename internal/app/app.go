package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	config "github.com/DRSN-tech/retail-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/retail-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/retail-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/retail-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/retail-backend/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/retail-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/retail-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/retail-backend/internal/usecase"
	"github.com/DRSN-tech/retail-backend/pkg/clients"
	"github.com/DRSN-tech/retail-backend/pkg/closer"
	"github.com/DRSN-tech/retail-backend/pkg/e"
	"github.com/DRSN-tech/retail-backend/pkg/logger"
	"github.com/DRSN-tech/retail-backend/pkg/postgres"
)

// App агрегирует ресурсы сервиса. Порядок регистрации в closer важен:
// закрытие идёт в обратном порядке, HTTP-сервер останавливается первым.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	worker  *kafka.OutboxWorker
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(5 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("postgres pool closed")
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	prConv := pgdbConv.NewProductConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool)
	historyRepo := pgdb.NewStockHistoryRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)
	txManager := pgdb.NewTxManager(db.Pool)
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, log)

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	cl.Add(func(ctx context.Context) error {
		worker.Stop()
		log.Infof("outbox worker stopped")
		return nil
	})

	orderUC := usecase.NewOrderUC(orderRepo, productRepo, outboxRepo, txManager, cacheRepo, log)
	inventoryUC := usecase.NewInventoryUC(productRepo, historyRepo, txManager, cacheRepo, log)
	catalogUC := usecase.NewCatalogUC(productRepo, cacheRepo, txManager, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(orderUC, inventoryUC, catalogUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		if err := httpSrv.Stop(ctx); err != nil {
			return err
		}
		log.Infof("HTTP server stopped")
		return nil
	})

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		worker:  worker,
		closer:  cl,
	}, nil
}

// Run запускает outbox-воркер и HTTP-сервер и блокируется до сигнала
// завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	a.worker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
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
