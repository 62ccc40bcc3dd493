package repositories

import (
	"context"

	"github.com/example/corebank/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerEntryReader defines read operations for the transaction log.
type LedgerEntryReader interface {
	// RecentEntries retrieves up to limit entries for an account, newest
	// first.
	RecentEntries(ctx context.Context, accountNumber int64, limit int) ([]domain.LedgerEntry, error)
}

// LedgerEntryWriter defines the append operation for the transaction log.
// The log is append-only; no update or delete exists.
type LedgerEntryWriter interface {
	// AppendEntry persists one entry within the caller's unit of work and
	// returns the store-assigned sequence id.
	AppendEntry(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (int64, error)
}

// LedgerRepositoryFacade combines the transaction log interfaces.
type LedgerRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}
