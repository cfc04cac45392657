// Package database provides database connection management for PostgreSQL.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/festy23/pr_reviewer/internal/database/config"
	"github.com/festy23/pr_reviewer/internal/database/pool"
	"github.com/festy23/pr_reviewer/pkg/retry"
)

// ErrNilDatabase is returned by helpers that receive a nil connection.
var ErrNilDatabase = errors.New("database connection is nil")

const connectTimeout = 2 * time.Minute

// Options tune how a connection is established.
type Options struct {
	Retry retry.Config
	Pool  pool.Config
}

// OptionsFromEnv loads retry and pool settings from environment variables.
func OptionsFromEnv() Options {
	return Options{
		Retry: config.LoadRetryConfigFromEnv(),
		Pool:  config.LoadPoolConfigFromEnv(),
	}
}

// GormConfig returns the gorm settings shared by every dialect the service opens.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// New connects to PostgreSQL using environment configuration.
func New(logger *zap.SugaredLogger) (*gorm.DB, error) {
	return NewWithConfig(config.LoadConfigFromEnv(), OptionsFromEnv(), logger)
}

// NewWithConfig connects to PostgreSQL, retrying transient failures, and configures the pool.
func NewWithConfig(cfg config.Config, opts Options, logger *zap.SugaredLogger) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	retryCfg := opts.Retry
	retryCfg.Notify = func(attempt int, err error, delay time.Duration) {
		logger.Warnw("database not ready, retrying",
			"attempt", attempt,
			"delay", delay,
			"error", config.SanitizeError(err, cfg),
		)
	}

	dsn := config.BuildDSN(cfg)
	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		conn, openErr := gorm.Open(postgres.Open(dsn), GormConfig())
		if openErr != nil {
			return nil, openErr
		}
		if pingErr := HealthCheck(ctx, conn); pingErr != nil {
			_ = Close(conn)
			return nil, pingErr
		}
		return conn, nil
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	if err := pool.SetupConnectionPool(db, opts.Pool); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	logger.Infow("connected to database", "host", cfg.Host, "port", cfg.Port, "database", cfg.DBName)
	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return ErrNilDatabase
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close gracefully closes database connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
