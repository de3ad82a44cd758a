package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avialab/aircatalog/config"
	"github.com/avialab/aircatalog/internal/bootstrap"
	"github.com/avialab/aircatalog/internal/cache"
	"github.com/avialab/aircatalog/internal/id"
	"github.com/avialab/aircatalog/internal/kafka"
	"github.com/avialab/aircatalog/internal/repository"
	"github.com/avialab/aircatalog/internal/service/airlines"
	"github.com/avialab/aircatalog/pkg/logger"
	"github.com/avialab/aircatalog/pkg/metrics"
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
	log.Info("starting airline catalog service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repo repository.AirlineRepository
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatal("connect postgres", "error", err)
		}
		defer pool.Close()
		repo = repository.NewPGAirlineRepository(pool)
	default:
		repo = repository.NewMemoryAirlineRepository()
	}
	log.Info("storage ready", "driver", cfg.Storage.Driver)

	m := metrics.NewMetrics("aircatalog")

	opts := []airlines.AirlineServiceOption{airlines.WithMetrics(m)}
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
		opts = append(opts, airlines.WithCache(redisCache))
	}
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts, airlines.WithProducer(producer, cfg.Kafka.AirlineEventsTopic))
	}

	airlineSvc := airlines.NewAirlineService(repo, id.NewUUIDGenerator(), log, opts...)

	if err := bootstrap.Run(ctx, cfg, log, m, airlineSvc); err != nil {
		log.Fatal("server error", "error", err)
	}
}
