package main

import (
	"context"
	"fmt"

	"tavernkeep/internal/config"
	"tavernkeep/internal/store"
	"tavernkeep/internal/store/bolt"
	"tavernkeep/internal/store/postgres"
	"tavernkeep/internal/store/sqlite"
)

func openDataStore(ctx context.Context, cfg config.StoreConfig) (store.DataStore, error) {
	switch cfg.Driver {
	case config.DriverNone, "":
		return store.NullDataStore{}, nil
	case config.DriverMemory:
		return store.NewMemoryDataStore(), nil
	case config.DriverBolt:
		return bolt.Open(cfg.DSN)
	case config.DriverSQLite:
		return sqlite.New(ctx, cfg.DSN)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Driver)
	}
}
