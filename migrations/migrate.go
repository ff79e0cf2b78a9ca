// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of every supported database and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/pressly/goose/v3"
)

// Supported dialects. Each one has its own directory of migrations.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	// ErrNilDB is returned when Migrate is called without a connection.
	ErrNilDB = errors.New("db is nil")
	// ErrUnknownDialect is returned for dialects without migrations.
	ErrUnknownDialect = errors.New("unknown migration dialect")
)

// gooseDialects maps a dialect to the goose dialect name.
var gooseDialects = map[string]goose.Dialect{
	DialectPostgres: goose.DialectPostgres,
	DialectSQLite:   goose.DialectSQLite3,
}

// Migrate applies all pending migrations of dialect to db.
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(string(gooseDialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output into the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.log.Fatal().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
