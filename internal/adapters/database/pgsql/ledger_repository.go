package pgsql

import (
	"context"
	"fmt"

	"github.com/example/corebank/internal/core/domain"
	portsrepo "github.com/example/corebank/internal/core/ports/repositories"
	"github.com/example/corebank/internal/models"
	"github.com/example/corebank/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the transaction log.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// AppendEntry inserts one ledger row within the caller's transaction and
// returns the assigned sequence id. The table carries no UPDATE or DELETE
// path anywhere in this codebase.
func (r *PgxLedgerRepository) AppendEntry(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (int64, error) {
	m := mapping.ToModelLedgerEntry(entry)

	query := `
		INSERT INTO ledger_entries (account_number, entry_type, amount, balance_after, recorded_at, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING sequence_id;
	`
	var sequenceID int64
	err := tx.QueryRow(ctx, query,
		m.AccountNumber,
		m.EntryType,
		m.Amount,
		m.BalanceAfter,
		m.Timestamp,
		m.Description,
	).Scan(&sequenceID)
	if err != nil {
		return 0, storageErr(fmt.Sprintf("failed to append ledger entry for account %d", m.AccountNumber), err)
	}
	return sequenceID, nil
}

// RecentEntries retrieves up to limit entries for an account, newest first.
func (r *PgxLedgerRepository) RecentEntries(ctx context.Context, accountNumber int64, limit int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT sequence_id, account_number, entry_type, amount, balance_after, recorded_at, description
		FROM ledger_entries
		WHERE account_number = $1
		ORDER BY sequence_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, accountNumber, limit)
	if err != nil {
		return nil, storageErr(fmt.Sprintf("failed to query ledger entries for account %d", accountNumber), err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.SequenceID,
			&m.AccountNumber,
			&m.EntryType,
			&m.Amount,
			&m.BalanceAfter,
			&m.Timestamp,
			&m.Description,
		); err != nil {
			return nil, storageErr("failed to scan ledger entry row", err)
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("error iterating ledger entry rows", err)
	}
	return entries, nil
}
