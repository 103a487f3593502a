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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"example.com/gymcheckin/internal/api"
	"example.com/gymcheckin/internal/auth"
	"example.com/gymcheckin/internal/config"
	"example.com/gymcheckin/internal/domain"
	"example.com/gymcheckin/internal/outbox"
	"example.com/gymcheckin/internal/persistence/memory"
	"example.com/gymcheckin/internal/persistence/postgres"
	"example.com/gymcheckin/internal/persistence/rediscache"
	httptransport "example.com/gymcheckin/internal/transport/http"
	"example.com/gymcheckin/internal/usecase"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).With("service", "checkin-api")
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	loc, _ := cfg.Location()
	clock := domain.SystemClock{Location: loc}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		gyms       domain.GymRepository
		checkIns   domain.CheckInRepository
		dispatcher *outbox.Dispatcher
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		gyms = memory.NewGymRepository()
		checkIns = memory.NewCheckInRepository(clock)
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		gyms = postgres.NewGymRepository(pool)
		checkIns = postgres.NewCheckInRepository(pool, clock)

		producer := outbox.NewKafkaProducer(cfg.KafkaBrokers)
		defer producer.Close()

		registry := outbox.NewSchemaRegistryClient(cfg.SchemaRegistryURL, nil)
		dispatcher = outbox.NewDispatcher(pool, producer, registry, cfg.OutboxPollInterval, cfg.OutboxBatchSize,
			outbox.WithLogger(logger.With("component", "outbox")))
		go dispatcher.Start(ctx)
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, nearby cache will fall through", "error", err)
		}
		gyms = rediscache.NewGymRepository(gyms, client, cfg.NearbyCacheTTL,
			rediscache.WithLogger(logger.With("component", "nearby-cache")))
	}

	useCases := usecase.NewUseCases(gyms, checkIns, clock)
	handler := api.NewHandler(useCases, logger)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	authMiddleware := auth.NewMiddleware(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer})

	server := httptransport.NewServer(
		httptransport.DefaultServerConfig(cfg.HTTPAddress),
		httptransport.RequestLogger(logger, httptransport.CORS(cfg.CORSOrigin, authMiddleware.Wrap(mux))),
	)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("checkin-api listening", "address", cfg.HTTPAddress, "storage", cfg.StorageDriver, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	if dispatcher != nil {
		dispatcher.Wait()
	}
}
