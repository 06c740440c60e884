package database

import (
	"embed"
	"errors"
	"fmt"

	"event-portal/core/constants"
	"event-portal/core/logger"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations applies all pending migrations for the database driver.
// The migrate instance is not closed: its database driver shares db's
// connection pool and would close it.
func RunMigrations(db *Database) error {
	driverName := db.DriverName()

	src, err := iofs.New(migrationsFS, "migrations/"+driverName)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	var target migratedb.Driver
	switch driverName {
	case constants.DriverPostgres:
		target, err = postgres.WithInstance(db.SQLx().DB, &postgres.Config{})
	case constants.DriverSQLite:
		target, err = sqlite.WithInstance(db.SQLx().DB, &sqlite.Config{})
	default:
		return fmt.Errorf("migration: unsupported driver %q", driverName)
	}
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driverName, target)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Info("Database:RunMigrations:Applied", "version", version, "dirty", dirty)
	return nil
}
