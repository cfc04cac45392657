// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	appConfig "github.com/festy23/pr_reviewer/internal/config"
	"github.com/festy23/pr_reviewer/internal/database/database"
	"github.com/festy23/pr_reviewer/internal/database/migrate"
	"github.com/festy23/pr_reviewer/internal/server"
	"github.com/festy23/pr_reviewer/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("failed to load .env file: %v", err)
	}

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = sugar.Sync()
	}()

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("server stopped with error", "error", err)
	}
}

func run(cfg appConfig.Config, sugar *zap.SugaredLogger) error {
	gin.SetMode(cfg.GinMode)

	db, err := database.New(sugar)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			sugar.Warnw("failed to close database", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		return err
	}
	sugar.Info("database migrations applied")

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      server.NewRouter(db, sugar),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		sugar.Infow("starting HTTP server", "address", srv.Addr, "gin_mode", cfg.GinMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	sugar.Infow("shutting down HTTP server", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	sugar.Info("server stopped")
	return nil
}
