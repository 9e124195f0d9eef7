// Package main is the entry point for the Rental Desk API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/rentaldesk/backend/config"
	"github.com/rentaldesk/backend/internal/infra/db"
	"github.com/rentaldesk/backend/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Rental Desk API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
	)

	database, err := db.Open(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")
	}

	redisClient := connectRedis(cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	injector, err := dependency.NewInjector(cfg, database, redisClient)
	if err != nil {
		slog.Error("Failed to wire application", "error", err)
		os.Exit(1)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(ctx)
	}

	if cfg.Scheduler.Enabled {
		if err := injector.Scheduler.Register(cfg.Scheduler); err != nil {
			slog.Error("Failed to register maintenance jobs", "error", err)
			os.Exit(1)
		}
		injector.Scheduler.Start()
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stop()

	if cfg.Scheduler.Enabled {
		if err := injector.Scheduler.Shutdown(); err != nil {
			slog.Error("Scheduler shutdown failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server exited properly")
}

// connectRedis returns nil when Redis is not configured or unreachable.
func connectRedis(cfg config.RedisConfig) *redis.Client {
	if cfg.URL == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid REDIS_URL, continuing without Redis", "error", err)
		return nil
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unreachable, rate limiting will use memory", "error", err)
	}
	return client
}
