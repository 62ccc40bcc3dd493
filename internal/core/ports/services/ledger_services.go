package services

import (
	"context"

	"github.com/example/corebank/internal/core/domain"
	"github.com/example/corebank/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the engine surface consumed by handlers (and tests).
// Every operation is synchronous and atomic with respect to the account
// store and transaction log it touches.
type LedgerSvcFacade interface {
	// OpenAccount creates an Active account with a caller-supplied initial
	// deposit and records the opening Deposit entry.
	OpenAccount(ctx context.Context, req dto.OpenAccountRequest) (*domain.Account, error)

	// Deposit credits an account and returns the new balance.
	Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error)

	// Withdraw debits an account, enforcing the minimum-balance rule before
	// the insufficient-funds check, and returns the new balance.
	Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error)

	// Transfer moves amount between two accounts as a single atomic unit and
	// returns the source's new balance.
	Transfer(ctx context.Context, fromAccount, toAccount int64, amount decimal.Decimal) (decimal.Decimal, error)

	// CloseAccount transitions a zero-balance account to Closed.
	CloseAccount(ctx context.Context, accountNumber int64) error

	// GetAccount retrieves one account. Closed accounts remain readable.
	GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, error)

	// ListAccounts retrieves all account summaries at call time.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// TransactionHistory retrieves the newest limit entries for an account.
	TransactionHistory(ctx context.Context, accountNumber int64, limit int) ([]domain.LedgerEntry, error)

	// ReportInterest computes (never posts) annual interest for all Savings
	// accounts.
	ReportInterest(ctx context.Context) ([]domain.InterestLine, error)
}
