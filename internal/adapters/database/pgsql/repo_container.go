package pgsql

import (
	portsrepo "github.com/example/corebank/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryProvider bundles the storage collaborators consumed by the
// ledger engine.
type RepositoryProvider struct {
	AccountRepo portsrepo.AccountRepositoryWithTx
	LedgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewRepositoryProvider wires the pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) RepositoryProvider {
	return RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		LedgerRepo:  newPgxLedgerRepository(dbPool),
	}
}
