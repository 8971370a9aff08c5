package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tair/shopping-advisor/docs"
	"github.com/tair/shopping-advisor/internal/config"
	"github.com/tair/shopping-advisor/internal/recommendation"
	grpcDelivery "github.com/tair/shopping-advisor/internal/recommendation/delivery/grpc"
	httpDelivery "github.com/tair/shopping-advisor/internal/recommendation/delivery/http"
	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/repository"
	"github.com/tair/shopping-advisor/internal/recommendation/usecase/command"
	"github.com/tair/shopping-advisor/internal/recommendation/usecase/query"
	"github.com/tair/shopping-advisor/kafka"
	"github.com/tair/shopping-advisor/pkg/auth"
	"github.com/tair/shopping-advisor/pkg/cache"
	"github.com/tair/shopping-advisor/pkg/database"
	"github.com/tair/shopping-advisor/pkg/logger"
	"github.com/tair/shopping-advisor/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Config{Service: "shopping-advisor", Environment: "development"})
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(logger.Config{
		Service:     cfg.Service.Name,
		Environment: cfg.Service.Environment,
		Level:       cfg.Service.LogLevel,
	})

	logger.Logger.Info().
		Str("service", cfg.Service.Name).
		Str("environment", cfg.Service.Environment).
		Str("log_level", cfg.Service.LogLevel).
		Msg("Starting shopping advisor")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.Tracing)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	if cfg.Auth.JWTSecret != "" {
		auth.SetSecret(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	} else {
		logger.Logger.Warn().Msg("JWT_SECRET not set, requests will be served anonymously")
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient := connectRedis(ctx, cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	var publisher domain.EventPublisher
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka publisher unavailable, recommendation events disabled")
		} else {
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
		}
	}

	settings := query.Settings{
		ChatLimit: cfg.Recommendation.ChatLimit,
		MoodLimit: cfg.Recommendation.MoodLimit,
	}

	// Initialize the recommendation context with Wire DI
	advisor, err := recommendation.InitializeAdvisor(
		db,
		redisClient,
		publisher,
		prometheus.DefaultRegisterer,
		settings,
		recommendation.MoodProfilesPath(cfg.Recommendation.MoodProfilesPath),
		recommendation.CatalogTTL(cfg.Redis.CatalogTTL),
	)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize advisor")
	}

	// Run migrations
	if err := advisor.Catalog.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	if err := seedCatalog(ctx, advisor, cfg.Recommendation.CatalogSeedFile); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed catalog")
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	if cfg.Kafka.Enabled {
		startConsumer(ctx, cfg.Kafka, advisor.Invalidate)
	}

	limiter := httpDelivery.NewRateLimiter(redisClient, cfg.Redis.RateLimit, cfg.Redis.RateWindow)
	httpServer := newHTTPServer(advisor, limiter, cfg.Service.HTTPPort)
	grpcServer := grpcDelivery.NewServer(grpcDelivery.NewMetrics(prometheus.DefaultRegisterer))

	errCh := make(chan error, 2)
	go func() {
		logger.Logger.Info().
			Str("port", cfg.Service.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		lis, err := net.Listen("tcp", ":"+cfg.Service.GRPCPort)
		if err != nil {
			errCh <- err
			return
		}
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or a server failure
	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Logger.Error().Err(err).Msg("Server failed")
	}

	logger.Logger.Info().Msg("Shutting down server...")
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server forced to shutdown")
	}
}

func connectRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}
	client, err := cache.NewRedisClient(ctx, cfg.Conn)
	if err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", cfg.Conn.Addr).
			Msg("Failed to connect to Redis - catalog cache and rate limiting will be disabled")
		client.Close()
		return nil
	}
	return client
}

func seedCatalog(ctx context.Context, advisor *recommendation.Advisor, path string) error {
	if path == "" {
		return nil
	}
	items, err := repository.LoadSeedFile(path)
	if err != nil {
		return err
	}
	if err := advisor.Catalog.Upsert(ctx, items); err != nil {
		return err
	}
	logger.Logger.Info().Int("items", len(items)).Str("file", path).Msg("Catalog seeded")
	if err := advisor.Invalidate.Handle(ctx, command.InvalidateCatalogCommand{Change: "seed"}); err != nil {
		logger.Logger.Warn().Err(err).Msg("Cached catalog may be stale until it expires")
	}
	return nil
}

func startConsumer(ctx context.Context, cfg config.KafkaConfig, invalidate *command.InvalidateCatalogHandler) {
	consumer, err := kafka.NewConsumer(cfg.Brokers, cfg.GroupID, []string{kafka.TopicCatalogChanged})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka consumer unavailable, catalog changes will wait for cache expiry")
		return
	}

	consumer.RegisterHandler(kafka.EventTypeCatalogChanged, kafka.OnCatalogChanged(
		func(ctx context.Context, event kafka.CatalogChangedEvent) error {
			return invalidate.Handle(ctx, command.InvalidateCatalogCommand{
				ProductID: event.ProductID,
				Change:    event.Change,
			})
		},
	))

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to start Kafka consumer")
		consumer.Close()
		return
	}
	go func() {
		<-ctx.Done()
		consumer.Close()
	}()
}

func newHTTPServer(advisor *recommendation.Advisor, limiter *httpDelivery.RateLimiter, port string) *http.Server {
	router := mux.NewRouter()

	mwConfig := httpDelivery.DefaultMiddlewareConfig(limiter)
	httpDelivery.RegisterMiddlewares(router, mwConfig)

	advisor.Handler.RegisterRoutes(router)
	advisor.Handler.RegisterHealthCheck(router, advisor.Catalog)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	docs.SwaggerInfo.Host = "localhost:" + port
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return &http.Server{
		Addr:              ":" + port,
		Handler:           httpDelivery.SetupCORS(mwConfig)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
