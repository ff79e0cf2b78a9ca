// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/migrations"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect identifies the SQL flavour behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// DB is a database handle bound to its dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ParseDSN resolves the database/sql driver name, the driver-specific data
// source and the dialect of dsn.
//
// Supported forms:
//   - postgres://… and postgresql://… → pgx, dsn unchanged;
//   - sqlite://<path> → sqlite3, <path> (a leading "/" is dropped, so
//     sqlite:///./app.db opens ./app.db and sqlite:////tmp/app.db opens
//     /tmp/app.db);
//   - file:… → sqlite3, dsn unchanged.
func ParseDSN(dsn string) (driver, source string, dialect Dialect, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "pgx", dsn, DialectPostgres, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		source = strings.TrimPrefix(dsn, "sqlite://")
		source = strings.TrimPrefix(source, "/")
		if source == "" {
			return "", "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
		}
		return "sqlite3", source, DialectSQLite, nil
	case strings.HasPrefix(dsn, "file:"):
		return "sqlite3", dsn, DialectSQLite, nil
	default:
		return "", "", "", ErrUnsupportedDSN
	}
}

// Open connects to the database described by cfg.DSN and verifies the
// connection with a ping.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, source, dialect, err := ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "store.Open").Msg("unsupported database DSN")
		return nil, err
	}

	// establish connection
	conn, err := sql.Open(driver, source)
	if err != nil {
		log.Err(err).Str("func", "store.Open").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	db := newDB(conn, dialect, log)

	// setup connections
	switch dialect {
	case DialectPostgres:
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	case DialectSQLite:
		// a single writer avoids "database is locked" and keeps
		// in-memory databases on one connection
		conn.SetMaxOpenConns(1)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.Open").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "store.Open").Str("dialect", string(dialect)).Msg("connected to database successfully")

	return db, nil
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}
	if dialect == DialectPostgres {
		db.errorClassificator = NewPostgresErrorClassifier()
	} else {
		db.errorClassificator = nopErrorClassifier{}
	}

	return db
}

// Dialect reports the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect), db.logger)
}

// Close closes the connection pool.
func (db *DB) Close() error {
	db.logger.Info().Str("func", "*DB.Close").Msg("closing database connection")
	return db.DB.Close()
}

// placeholder returns the bind-variable format of the dialect.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// querier is the subset of *sql.DB and *sql.Tx used by repositories.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn returns the transaction of the session bound to ctx, or the pool when
// ctx carries none.
func (db *DB) conn(ctx context.Context) querier {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return db.DB
}
