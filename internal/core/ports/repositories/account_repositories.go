package repositories

import (
	"context"
	"time"

	"github.com/example/corebank/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByNumber retrieves a specific account by its number.
	// Returns apperrors.ErrAccountNotFound when no row exists.
	FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error)

	// ListAccounts retrieves all accounts, ordered by account number.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data. Writes run inside
// a unit of work owned by the caller.
type AccountWriter interface {
	// CreateAccount persists a new account and returns the store-assigned
	// account number.
	CreateAccount(ctx context.Context, tx pgx.Tx, account domain.Account) (int64, error)

	// UpdateBalance conditionally sets the balance of an account. The write
	// only applies when the stored balance still equals expectedPrior;
	// otherwise apperrors.ErrConcurrentModification is returned.
	UpdateBalance(ctx context.Context, tx pgx.Tx, accountNumber int64, newBalance, expectedPrior decimal.Decimal, now time.Time) error

	// SetStatus transitions an account's lifecycle status.
	SetStatus(ctx context.Context, tx pgx.Tx, accountNumber int64, status domain.AccountStatus, now time.Time) error
}

// AccountTransactionSupport defines operations that support multi-account
// units of work.
type AccountTransactionSupport interface {
	// FindAccountsForUpdate selects the given accounts and locks their rows
	// for the duration of the transaction. Missing numbers are absent from
	// the returned map.
	FindAccountsForUpdate(ctx context.Context, tx pgx.Tx, accountNumbers []int64) (map[int64]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction
// capabilities.
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
