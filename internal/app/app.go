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

	config "github.com/narahe-ltd/recommendation-ai/internal/cfg"
	v1Http "github.com/narahe-ltd/recommendation-ai/internal/delivery/v1/http"
	"github.com/narahe-ltd/recommendation-ai/internal/infrastructure/kafka"
	ml_service "github.com/narahe-ltd/recommendation-ai/internal/infrastructure/ml-service"
	"github.com/narahe-ltd/recommendation-ai/internal/infrastructure/openai"
	"github.com/narahe-ltd/recommendation-ai/internal/infrastructure/queue"
	"github.com/narahe-ltd/recommendation-ai/internal/repository/pgdb"
	pgdbConv "github.com/narahe-ltd/recommendation-ai/internal/repository/pgdb/converter/generated"
	"github.com/narahe-ltd/recommendation-ai/internal/repository/redis"
	redisConv "github.com/narahe-ltd/recommendation-ai/internal/repository/redis/converter/generated"
	"github.com/narahe-ltd/recommendation-ai/internal/usecase"
	"github.com/narahe-ltd/recommendation-ai/pkg/clients"
	"github.com/narahe-ltd/recommendation-ai/pkg/closer"
	"github.com/narahe-ltd/recommendation-ai/pkg/e"
	"github.com/narahe-ltd/recommendation-ai/pkg/logger"
	"github.com/narahe-ltd/recommendation-ai/pkg/postgres"
)

const shutdownTimeout = 10 * time.Second

// App собирает зависимости сервиса рекомендаций и управляет их
// жизненным циклом. Порядок останова обратен порядку запуска.
type App struct {
	cfg      *config.Config
	logger   logger.Logger
	closer   *closer.Closer
	httpSrv  *v1Http.Server
	consumer *queue.ConsumerWorker
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(shutdownTimeout)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("Database connection closed")
		return nil
	})

	customerConv := pgdbConv.NewCustomerConverterImpl()
	productConv := pgdbConv.NewProductConverterImpl()
	recConv := redisConv.NewRecommendationConverterImpl()

	customerRepo := pgdb.NewCustomerRepo(db.Pool, customerConv)
	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	usageLogRepo := pgdb.NewUsageLogRepo(db.Pool)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, recConv, cfg.Redis, log)

	queueClient := clients.NewQueueRedisClient(cfg.Queue)
	if err := queueClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return queueClient.Client.Close()
	})

	usageQueue := queue.NewUsageQueue(queueClient, cfg.Queue)

	embedder := ml_service.NewMLService(cfg.Ml, log)

	// Без эмбеддера сервис не может ни считать профили, ни ранжировать
	// продукты, поэтому ждём его готовности до приёма трафика.
	readyCtx, readyCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Ml.StartupRetries+1)*cfg.Ml.StartupDelay+cfg.Ml.RequestTimeout)
	defer readyCancel()
	if err := embedder.WaitReady(readyCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	generator := openai.NewGenerator(cfg.Generator, log)

	metric, err := usecase.ParseMetric(cfg.Search.Metric)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	retriever := usecase.NewRetriever(productRepo, embedder, metric, log)
	explainer := usecase.NewExplainer(cacheRepo, generator, log, cfg.Generator.MaxAttempts, cfg.Generator.BackoffUnit)

	var publisher usecase.EventPublisher
	if cfg.Kafka != nil {
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
		publisher = producer
	} else {
		log.Infof("Kafka brokers not configured, event publishing disabled")
	}

	recommendationUC := usecase.NewRecommendationUC(customerRepo, retriever, explainer, cacheRepo, embedder, log, cfg.Search.TopK)
	ingestUC := usecase.NewIngestUC(usageLogRepo, customerRepo, db.Pool, publisher, log)
	catalogUC := usecase.NewCatalogUC(productRepo, db.Pool, embedder, log)
	simulateUC := usecase.NewSimulateUC(customerRepo, usageQueue, log)

	warmCtx, warmCancel := context.WithTimeout(context.Background(), time.Minute)
	defer warmCancel()
	if err := catalogUC.WarmProductEmbeddings(warmCtx); err != nil {
		log.Warnf("Product embedding warmup failed: %v", err)
	}

	consumer := queue.NewConsumerWorker(usageQueue, ingestUC, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(recommendationUC, catalogUC, simulateUC, db.Ping, cacheRepo.Ping, usageQueue.Ping)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:      cfg,
		logger:   log,
		closer:   cl,
		httpSrv:  httpSrv,
		consumer: consumer,
	}, nil
}

// Run запускает consumer и HTTP-сервер и блокируется до сигнала
// остановки или фатальной ошибки сервера.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.consumer.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	// Consumer останавливается до закрытия соединений: начатая
	// обработка события доводится до конца.
	cancel()
	a.consumer.Stop()
	a.logger.Infof("Usage queue consumer drained")

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("Shutdown finished with errors: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := db.Ping(pingCtx); err != nil {
		log.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
