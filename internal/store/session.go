// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-api-scaffold/internal/logger"
)

type txCtxKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}

// sessionManager is the [SessionManager] backed by database/sql transactions.
type sessionManager struct {
	db *DB
}

// NewSessionManager returns a [SessionManager] opening its sessions on db.
func NewSessionManager(db *DB) SessionManager {
	return &sessionManager{db: db}
}

// WithSession runs fn inside a transaction bound to the context passed to fn.
//
// The transaction is committed when fn returns nil and rolled back when fn
// returns an error or panics; the panic is re-raised after the rollback.
// Repositories called with the derived context join the transaction. A
// nested call reuses the outer session. Failures the dialect reports as
// transient are marked with [ErrTransient]; the session itself never retries.
func (m *sessionManager) WithSession(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	err := m.run(ctx, fn)
	if err != nil && m.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}

	return err
}

func (m *sessionManager) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sessionManager.WithSession").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Str("func", "*sessionManager.WithSession").Msg("error rolling back transaction after panic")
			}
			panic(p)
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "*sessionManager.WithSession").Msg("error rolling back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sessionManager.WithSession").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
