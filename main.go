package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"edivaldoleitao/tracksave/config"
	"edivaldoleitao/tracksave/internal/browser"
	"edivaldoleitao/tracksave/internal/store"
	"edivaldoleitao/tracksave/logger"
	"edivaldoleitao/tracksave/services/cache"
	"edivaldoleitao/tracksave/services/publisher"
	"edivaldoleitao/tracksave/services/sink"
	"edivaldoleitao/tracksave/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Strs("categories", cfg.Categories).
		Dur("crawl_interval", cfg.CrawlInterval).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize services
	services, err := initializeServices(ctx, &cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer services.Cleanup()

	sessions := func() (browser.Session, error) {
		return browser.NewChromeSession(cfg.Headless)
	}

	// Create and start worker
	w := worker.NewWorker(
		ctx,
		&cfg,
		sessions,
		services.History,
		services.Cache,
		services.Publisher,
		services.Ingest,
	)

	workerDone := make(chan error, 1)
	go func() {
		log.Info().Msg("Starting price tracking worker")
		workerDone <- w.Start()
	}()

	// Wait for shutdown signal or worker exit
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
	case err := <-workerDone:
		if err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Worker exited with error")
		} else {
			log.Info().Msg("Worker exited normally")
		}
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
}

// Services holds all the initialized services
type Services struct {
	History   *store.Store
	Cache     cache.CacheService
	Publisher publisher.Publisher
	Ingest    *sink.IngestClient
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		s.Publisher.Close()
	}
	if s.History != nil {
		s.History.Close()
	}
}

// initializeServices initializes all required services
func initializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	services := &Services{}

	history, err := store.Open(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	services.History = history

	logger.Info("Price history store at %s", cfg.SQLitePath)

	services.Cache = cache.NewMemcacheService(cfg.MemcacheAddr)
	logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)

	services.Publisher = publisher.NewRedisPublisher(
		ctx,
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamCount,
		cfg.RedisStreamMaxLength,
	)
	logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

	services.Ingest = sink.NewIngestClient(cfg.IngestBaseURL, cfg.IngestTimeout)
	logger.Info("Ingestion API at %s", cfg.IngestBaseURL)

	return services, nil
}
