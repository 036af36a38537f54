package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/Veraticus/catsync/internal/common"
	"github.com/Veraticus/catsync/internal/config"
	"github.com/Veraticus/catsync/internal/service"
	"github.com/Veraticus/catsync/internal/storage"
	"github.com/Veraticus/catsync/internal/storage/gormstore"
)

const (
	driverSQLite = "sqlite"
	driverMySQL  = "mysql"
)

func databaseDriver() string {
	driver := viper.GetString("database.driver")
	if driver == "" {
		return driverSQLite
	}
	return driver
}

// databasePath returns the SQLite path with tilde and environment variables expanded.
func databasePath() string {
	return config.ExpandPath(viper.GetString("database.path"))
}

// openStorage opens the configured backend. SQLite databases are migrated on open;
// MySQL schemas are only changed by the migrate command.
func openStorage(ctx context.Context) (service.Storage, error) {
	switch driver := databaseDriver(); driver {
	case driverSQLite:
		return storage.Open(ctx, databasePath())
	case driverMySQL:
		return gormstore.Open(viper.GetString("database.dsn"))
	default:
		return nil, fmt.Errorf("%w: unknown database driver %q", common.ErrInvalidConfig, driver)
	}
}
