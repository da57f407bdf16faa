package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/Rana718/groundwork/internal/config"
)

var ErrUnsupportedProvider = errors.New("unsupported database provider")

// Connection is an open database handle plus the statement builder that
// matches its placeholder style.
type Connection struct {
	DB       *sql.DB
	Provider string
	Driver   string
	Builder  squirrel.StatementBuilderType
}

// Connect opens the database described by cfg.
func Connect(ctx context.Context, cfg *config.Config) (*Connection, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}
	return Open(ctx, cfg.Database.Provider, cfg.Database.Driver, dbURL)
}

// Open resolves the driver for provider (honouring override), opens the
// pool and pings it.
func Open(ctx context.Context, provider, override, url string) (*Connection, error) {
	driverName, err := ResolveDriver(provider, override)
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	switch driverName {
	case "pgx":
		connConfig, err := pgx.ParseConfig(url)
		if err != nil {
			return nil, fmt.Errorf("failed to parse connection URL: %w", err)
		}
		connConfig.DefaultQueryExecMode = pgx.QueryExecModeExec
		db = stdlib.OpenDB(*connConfig)
	default:
		dsn, err := NormalizeDSN(driverName, url)
		if err != nil {
			return nil, err
		}
		db, err = sql.Open(driverName, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s connection: %w", provider, err)
		}
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{
		DB:       db,
		Provider: provider,
		Driver:   driverName,
		Builder:  squirrel.StatementBuilder.PlaceholderFormat(Placeholder(provider)),
	}, nil
}

func (c *Connection) Close() error {
	return c.DB.Close()
}

// ResolveDriver maps a provider and an optional driver override to a
// registered database/sql driver name.
func ResolveDriver(provider, override string) (string, error) {
	switch provider {
	case "postgresql", "postgres":
		switch override {
		case "", "pgx":
			return "pgx", nil
		case "pq":
			return "postgres", nil
		}
	case "mysql":
		if override == "" || override == "mysql" {
			return "mysql", nil
		}
	case "sqlite", "sqlite3":
		switch override {
		case "", "sqlite3":
			return "sqlite3", nil
		case "modernc":
			return "sqlite", nil
		}
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
	return "", fmt.Errorf("%w: driver %q cannot serve %s", ErrUnsupportedProvider, override, provider)
}

// Placeholder returns the bind parameter style of provider.
func Placeholder(provider string) squirrel.PlaceholderFormat {
	switch provider {
	case "postgresql", "postgres":
		return squirrel.Dollar
	default:
		return squirrel.Question
	}
}

// NormalizeDSN rewrites URL-style connection strings into what each
// database/sql driver expects.
func NormalizeDSN(driverName, url string) (string, error) {
	switch driverName {
	case "mysql":
		dsn := strings.TrimPrefix(url, "mysql://")
		parsed, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid MySQL DSN: %w", err)
		}
		parsed.ParseTime = true
		parsed.MultiStatements = false
		return parsed.FormatDSN(), nil
	case "sqlite3", "sqlite":
		path := strings.TrimPrefix(url, "sqlite://")
		path = strings.TrimPrefix(path, "file:")
		if strings.Contains(path, "?") {
			return path, nil
		}
		if driverName == "sqlite3" {
			return path + "?_journal_mode=WAL&_busy_timeout=5000", nil
		}
		return path + "?_pragma=busy_timeout(5000)", nil
	default:
		return url, nil
	}
}
