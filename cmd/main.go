package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"popforge/internal/adapter/adsterra"
	httpadapter "popforge/internal/adapter/http"
	"popforge/internal/adapter/postgres"
	"popforge/internal/adapter/usecase"
	"popforge/internal/config"
	"popforge/internal/db"
	"popforge/internal/snippet"
)

// main is the entry point of the popforge dashboard backend. It loads
// configuration, optionally runs database migrations, initializes the
// database pool and repositories, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded", slog.String("owner", db.DemoOwnerID))
		}
	}

	credRepo := postgres.NewCredentialRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	scriptRepo := postgres.NewScriptRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	source := adsterra.NewClient(cfg.Adsterra, logger)
	generator := snippet.NewGenerator(snippet.Options{
		AnalyticsURL: cfg.Snippet.AnalyticsURL,
		SessionKey:   cfg.Snippet.SessionKey,
		WindowWidth:  cfg.Snippet.WindowWidth,
		WindowHeight: cfg.Snippet.WindowHeight,
	})
	svc := usecase.NewDashboardService(credRepo, campaignRepo, scriptRepo, profileRepo, source, generator)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
