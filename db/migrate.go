package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	// migrate's postgres driver talks to the server through database/sql.
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/config"
)

//go:embed migrations
var migrationsFS embed.FS

// migrationTarget returns the embedded directory and database URL for the
// configured engine. ok is false for engines without a schema.
func migrationTarget(cfg *config.DatabaseConfig) (dir, databaseURL string, ok bool, err error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return "migrations/postgres", getDSN(cfg.Postgres), true, nil
	case config.DriverSQLite:
		return "migrations/sqlite", "sqlite://" + cfg.SQLitePath, true, nil
	case config.DriverMemory:
		return "", "", false, nil
	default:
		return "", "", false, apperror.NewConfigError(fmt.Sprintf("unsupported database driver %q", cfg.Driver), nil)
	}
}

// RunMigrations applies every pending migration for the configured engine.
// It is a no-op for the in-memory engine.
func RunMigrations(cfg *config.DatabaseConfig) error {
	dir, databaseURL, ok, err := migrationTarget(cfg)
	if err != nil || !ok {
		return err
	}

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return apperror.NewMigrationError("failed to load embedded migrations", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return apperror.NewMigrationError("failed to create migrator", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logrus.WithFields(logrus.Fields{
				"source_error":   srcErr,
				"database_error": dbErr,
			}).Warn("error closing migrator")
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewMigrationError("failed to run migrations", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return apperror.NewMigrationError("failed to read schema version", err)
	}
	logrus.WithFields(logrus.Fields{
		"driver":  cfg.Driver,
		"version": version,
		"dirty":   dirty,
	}).Info("database schema is up to date")

	return nil
}
