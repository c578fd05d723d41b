package db

import (
	"context"
	"fmt"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/config"
	"github.com/user/fitfusion-go/store"
	"github.com/user/fitfusion-go/store/memory"
	"github.com/user/fitfusion-go/store/postgres"
	"github.com/user/fitfusion-go/store/sqlite"
)

// OpenStore connects to the configured engine, migrating it first when
// AutoMigrate is set.
func OpenStore(ctx context.Context, cfg *config.DatabaseConfig) (store.Store, error) {
	if cfg.AutoMigrate {
		if err := RunMigrations(cfg); err != nil {
			return nil, err
		}
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return postgres.New(pool), nil
	case config.DriverSQLite:
		conn, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return sqlite.New(conn), nil
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, apperror.NewConfigError(fmt.Sprintf("unsupported database driver %q", cfg.Driver), nil)
	}
}
