// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/listing"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront/internal/infrastructure/database/redis"
	"github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
	"github.com/your-org/storefront/internal/pkg/logger"
	"github.com/your-org/storefront/internal/pkg/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.Logging)
	log.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting")

	backends := map[string]http.Pinger{}

	// Connect to Redis when any store lives there
	var redisClient *redis.Client
	if cfg.UsesRedis() {
		redisClient, err = redis.NewConnection(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		backends["redis"] = redisClient
	}

	var sessionStore session.Store = session.NewMemoryStore()
	if cfg.Session.Store == config.BackendRedis {
		sessionStore = redisClient
	}
	backends["session_store"] = sessionStore

	// Cart repository
	var cartRepo cart.Repository
	switch cfg.Cart.Store {
	case config.BackendDatabase:
		db, err := postgres.NewConnection(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		migration := postgres.NewMigration(db.GetDB(), log)
		if err := migration.RunAutoMigrations(); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		if err := migration.CreateIndexes(); err != nil {
			log.WithError(err).Warn("Index creation failed")
		}

		dbCarts := postgres.NewCartRepository(db.GetDB(), cfg.Cart.TTL)
		purgeCtx, stopPurge := context.WithCancel(context.Background())
		defer stopPurge()
		go purgeExpiredCarts(purgeCtx, dbCarts, log)

		cartRepo = dbCarts
		backends["database"] = db
	case config.BackendRedis:
		cartRepo = cart.NewSessionRepository(redisClient, cfg.Cart.TTL)
	default:
		cartRepo = cart.NewSessionRepository(sessionStore, cfg.Cart.TTL)
	}

	// Mount the catalog: one fetch for the life of the process
	loader := catalog.NewLoader(catalog.NewHTTPSource(cfg.Catalog.URL, cfg.Catalog.FetchTimeout), log)
	loader.Start(context.Background())
	defer loader.Close()

	if cfg.Catalog.WaitOnStartup {
		waitCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := loader.Wait(waitCtx); err != nil {
			log.WithError(err).Warn("Catalog not loaded before serving")
		}
		cancel()
	}

	deps := routes.Dependencies{
		Catalog:     loader,
		UserService: user.NewService(sessionStore, cfg.Session.TTL, log),
		CartService: cart.NewService(cartRepo, cfg.Cart.TaxRate, log),
		ListingService: listing.NewService(sessionStore, loader, listing.Options{
			DefaultPageSize: cfg.Catalog.DefaultPageSize,
			PageSizeOptions: cfg.Catalog.PageSizeOptions,
			TTL:             cfg.Session.TTL,
		}, log),
		Logger: log,
	}

	var rateLimitClient *goredis.Client
	if redisClient != nil {
		rateLimitClient = redisClient.GetClient()
	}

	server := http.NewServer(cfg, http.Options{
		Routes:      deps,
		Backends:    backends,
		RedisClient: rateLimitClient,
	}, log)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	log.Info("Server shutdown completed")
}

// purgeExpiredCarts deletes stale database carts at startup and then hourly
func purgeExpiredCarts(ctx context.Context, repo *postgres.CartRepository, log *logrus.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		purged, err := repo.PurgeExpired(ctx)
		if err != nil {
			log.WithError(err).Warn("Expired cart purge failed")
		} else if purged > 0 {
			log.WithField("rows", purged).Info("Purged expired carts")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
