package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is the unit-of-work contract. All repository calls made
// with an open tx commit or roll back together.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}
