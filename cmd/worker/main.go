package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avialab/aircatalog/config"
	"github.com/avialab/aircatalog/internal/cache"
	"github.com/avialab/aircatalog/internal/kafka"
	"github.com/avialab/aircatalog/internal/notify"
	"github.com/avialab/aircatalog/internal/repository"
	"github.com/avialab/aircatalog/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.NewLogger("info").Fatal("load config", "error", err)
	}

	log := logger.NewLogger(cfg.Log.Level)
	log.Info("starting airline catalog worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.AirlineEventsTopic)
	defer consumer.Close()

	notifier := notify.NewNotifier(log)

	go func() {
		err := consumer.Consume(ctx, notifier.Notify)
		if err != nil && ctx.Err() == nil {
			log.Error("consumer stopped", "error", err)
		}
	}()

	// Cache re-warming needs a store shared with the API process, so it only
	// runs against the postgres driver with redis enabled.
	var (
		repo       repository.AirlineRepository
		redisCache *cache.RedisCache
	)
	if cfg.Storage.Driver == config.StorageDriverPostgres && cfg.Redis.Enabled {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatal("connect postgres", "error", err)
		}
		defer pool.Close()
		repo = repository.NewPGAirlineRepository(pool)
		redisCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	} else {
		log.Info("cache refresh disabled", "driver", cfg.Storage.Driver, "redis_enabled", cfg.Redis.Enabled)
	}

	refreshTicker := time.NewTicker(time.Duration(cfg.Worker.CacheRefreshSeconds) * time.Second)
	defer refreshTicker.Stop()

	for {
		select {
		case <-refreshTicker.C:
			if repo == nil || redisCache == nil {
				continue
			}
			refreshCache(ctx, repo, redisCache, log)
		case <-ctx.Done():
			log.Info("shutting down")
			return
		}
	}
}

func refreshCache(ctx context.Context, repo repository.AirlineRepository, redisCache *cache.RedisCache, log logger.Logger) {
	all, err := repo.FindAll(ctx)
	if err != nil {
		log.Warn("refresh cache: list airlines", "error", err)
		return
	}
	active, err := repo.FindActive(ctx)
	if err != nil {
		log.Warn("refresh cache: list active airlines", "error", err)
		return
	}
	if err := redisCache.SetAirlines(ctx, false, all); err != nil {
		log.Warn("refresh cache: store snapshot", "error", err)
		return
	}
	if err := redisCache.SetAirlines(ctx, true, active); err != nil {
		log.Warn("refresh cache: store active snapshot", "error", err)
		return
	}
	log.Info("airline cache refreshed", "total", len(all), "active", len(active))
}
