package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"event-portal/core/config"
	"event-portal/core/constants"
	"event-portal/core/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type IDatabase interface {
	ExecContext(ctx context.Context, query string, args ...any) error
	ExecResultContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
	Rebind(query string) string
	DriverName() string
	SQLx() *sqlx.DB
	Close() error
}

// Database wraps a sqlx handle. Queries are written with '?' placeholders and
// rebound for the active driver, so the same repository code serves postgres
// and sqlite.
type Database struct {
	sqlx *sqlx.DB
}

var _ IDatabase = (*Database)(nil)

// DSN builds the driver specific data source name.
func DSN(cfg config.DatabaseConfig) string {
	if cfg.Driver == constants.DriverSQLite {
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.SQLitePath)
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = constants.DatabaseSSLMode
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode)
}

func InitDB(cfg config.DatabaseConfig) (*Database, error) {
	logger.Info("Initializing database...", "driver", cfg.Driver)

	db, err := Open(cfg.Driver, DSN(cfg))
	if err != nil {
		return nil, err
	}

	logger.Info("Database initialized successfully",
		"driver", cfg.Driver,
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
		"sqlitePath", cfg.SQLitePath,
	)
	return db, nil
}

// Open connects with the given driver and verifies the connection.
func Open(driver, dsn string) (*Database, error) {
	sqlxDB, err := sqlx.Connect(driver, dsn)
	if err != nil {
		logger.Error("Database:Open:Connect:Error", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == constants.DriverSQLite {
		// sqlite serializes writers; a single connection avoids "database is locked"
		// and keeps in-memory databases alive for the lifetime of the handle.
		sqlxDB.SetMaxOpenConns(1)
	} else {
		sqlxDB.SetMaxOpenConns(constants.DatabaseMaxOpenConns)
		sqlxDB.SetMaxIdleConns(constants.DatabaseMaxIdleConns)
		sqlxDB.SetConnMaxLifetime(time.Duration(constants.DatabaseConnMaxLifetime) * time.Minute)
	}

	if err = sqlxDB.Ping(); err != nil {
		logger.Error("Database:Open:Ping:Error", "error", err)
		_ = sqlxDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{sqlx: sqlxDB}, nil
}

func (d *Database) ExecContext(ctx context.Context, query string, args ...any) error {
	_, err := d.sqlx.ExecContext(ctx, d.sqlx.Rebind(query), args...)
	return err
}

func (d *Database) ExecResultContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.sqlx.ExecContext(ctx, d.sqlx.Rebind(query), args...)
}

func (d *Database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.sqlx.GetContext(ctx, dest, d.sqlx.Rebind(query), args...)
}

func (d *Database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.sqlx.SelectContext(ctx, dest, d.sqlx.Rebind(query), args...)
}

func (d *Database) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	return d.sqlx.NamedExecContext(ctx, query, arg)
}

func (d *Database) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return d.sqlx.BeginTxx(ctx, opts)
}

func (d *Database) Rebind(query string) string {
	return d.sqlx.Rebind(query)
}

func (d *Database) DriverName() string {
	return d.sqlx.DriverName()
}

func (d *Database) SQLx() *sqlx.DB {
	return d.sqlx
}

func (d *Database) Close() error {
	return d.sqlx.Close()
}
