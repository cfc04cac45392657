// Package migrate applies the SQL schema with golang-migrate.
package migrate

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	appConfig "github.com/festy23/pr_reviewer/internal/config"
)

//go:embed migrations/*.sql
var embedded embed.FS

// ErrNilDatabase is returned when Migrate is called without a connection.
var ErrNilDatabase = errors.New("database connection is nil")

// GetMigrationsPath returns the on-disk migrations directory, or "" to use the embedded set.
func GetMigrationsPath() string {
	return appConfig.GetEnv("MIGRATIONS_PATH", "")
}

// Source opens the migration source: MIGRATIONS_PATH when set, the embedded files otherwise.
// The returned URL is empty for the embedded source.
func Source() (source.Driver, string, error) {
	dir := GetMigrationsPath()
	if dir == "" {
		drv, err := iofs.New(embedded, "migrations")
		if err != nil {
			return nil, "", fmt.Errorf("failed to open embedded migrations: %w", err)
		}
		return drv, "", nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}
	if _, statErr := os.Stat(abs); os.IsNotExist(statErr) {
		return nil, "", fmt.Errorf("migrations directory does not exist: %s", abs)
	}
	return nil, "file://" + abs, nil
}

// Migrate applies all pending migrations to a PostgreSQL database.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return ErrNilDatabase
	}

	src, sourceURL, err := Source()
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	var m *migrate.Migrate
	if src != nil {
		m, err = migrate.NewWithInstance("iofs", src, "postgres", driver)
	} else {
		m, err = migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	// m.Close is not called: it would close the shared sql.DB.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
