package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/corebank/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common transaction handling for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, storageErr("failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return storageErr("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Safe to call after a commit.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return storageErr("failed to rollback transaction", err)
	}
	return nil
}

// storageErr wraps a lower-level store failure so callers can match
// apperrors.ErrStorageUnavailable while keeping the cause in the chain.
func storageErr(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, apperrors.ErrStorageUnavailable, err)
}
