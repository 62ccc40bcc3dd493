package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/example/corebank/internal/apperrors"
	"github.com/example/corebank/internal/core/domain"
	portsrepo "github.com/example/corebank/internal/core/ports/repositories"
	portssvc "github.com/example/corebank/internal/core/ports/services"
	"github.com/example/corebank/internal/dto"
	"github.com/example/corebank/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// defaultHistoryLimit caps the transaction history when the caller does not
// supply a limit.
const defaultHistoryLimit = 10

// ledgerService is the ledger engine. It is stateless between calls: every
// operation reads current state from the account store, validates the
// business rules, writes the new state and appends the matching ledger
// entries within one unit of work.
type ledgerService struct {
	accountRepo portsrepo.AccountRepositoryWithTx
	ledgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates the ledger engine over the given storage
// collaborators.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryWithTx, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// lockAccount fetches one account under a row lock for the duration of tx.
func (s *ledgerService) lockAccount(ctx context.Context, tx pgx.Tx, accountNumber int64) (*domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsForUpdate(ctx, tx, []int64{accountNumber})
	if err != nil {
		return nil, err
	}
	acc, ok := accounts[accountNumber]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", accountNumber, apperrors.ErrAccountNotFound)
	}
	return &acc, nil
}

// OpenAccount creates an Active account and records the opening deposit.
func (s *ledgerService) OpenAccount(ctx context.Context, req dto.OpenAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.InitialDeposit.IsNegative() {
		return nil, fmt.Errorf("initial deposit cannot be negative: %w", apperrors.ErrInvalidAmount)
	}
	if req.Kind == domain.Current && req.InitialDeposit.LessThan(domain.CurrentMinimumBalance) {
		return nil, fmt.Errorf("current accounts require an initial deposit of at least %s: %w",
			domain.CurrentMinimumBalance.StringFixed(2), apperrors.ErrMinimumBalance)
	}

	now := time.Now().UTC()
	account := domain.Account{
		HolderName: req.HolderName,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Kind:       req.Kind,
		Balance:    req.InitialDeposit,
		Status:     domain.Active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	number, err := s.accountRepo.CreateAccount(ctx, tx, account)
	if err != nil {
		logger.Error("Failed to create account", slog.String("error", err.Error()))
		return nil, err
	}
	account.AccountNumber = number

	// An account opened with nothing has no monetary event to record;
	// ledger entry amounts stay strictly positive.
	if req.InitialDeposit.IsPositive() {
		_, err = s.ledgerRepo.AppendEntry(ctx, tx, domain.LedgerEntry{
			AccountNumber: number,
			Type:          domain.Deposit,
			Amount:        req.InitialDeposit,
			BalanceAfter:  req.InitialDeposit,
			Timestamp:     now,
			Description:   "Initial Deposit",
		})
		if err != nil {
			logger.Error("Failed to append opening entry", slog.Int64("account_number", number), slog.String("error", err.Error()))
			return nil, err
		}
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Account opened",
		slog.Int64("account_number", number),
		slog.String("kind", string(account.Kind)),
		slog.String("initial_deposit", req.InitialDeposit.StringFixed(2)))
	return &account, nil
}

// Deposit credits an active account.
func (s *ledgerService) Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("deposit amount must be positive: %w", apperrors.ErrInvalidAmount)
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	acc, err := s.lockAccount(ctx, tx, accountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	if acc.IsClosed() {
		return decimal.Zero, fmt.Errorf("account %d: %w", accountNumber, apperrors.ErrAccountClosed)
	}

	now := time.Now().UTC()
	newBalance := acc.Balance.Add(amount)
	if err := s.accountRepo.UpdateBalance(ctx, tx, accountNumber, newBalance, acc.Balance, now); err != nil {
		return decimal.Zero, err
	}
	if _, err := s.ledgerRepo.AppendEntry(ctx, tx, domain.LedgerEntry{
		AccountNumber: accountNumber,
		Type:          domain.Deposit,
		Amount:        amount,
		BalanceAfter:  newBalance,
		Timestamp:     now,
		Description:   "Cash Deposit",
	}); err != nil {
		return decimal.Zero, err
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}

	logger.Info("Deposit applied",
		slog.Int64("account_number", accountNumber),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("balance", newBalance.StringFixed(2)))
	return newBalance, nil
}

// Withdraw debits an active account. The minimum-balance check runs before
// the insufficient-funds check so that a Current account sitting at its floor
// reports the more precise error.
func (s *ledgerService) Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("withdrawal amount must be positive: %w", apperrors.ErrInvalidAmount)
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	acc, err := s.lockAccount(ctx, tx, accountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	if acc.IsClosed() {
		return decimal.Zero, fmt.Errorf("account %d: %w", accountNumber, apperrors.ErrAccountClosed)
	}

	newBalance := acc.Balance.Sub(amount)
	if !domain.MinimumBalanceSatisfied(acc.Kind, newBalance) {
		return decimal.Zero, fmt.Errorf("withdrawal would leave balance %s below the %s minimum: %w",
			newBalance.StringFixed(2), domain.CurrentMinimumBalance.StringFixed(2), apperrors.ErrMinimumBalance)
	}
	if acc.Balance.LessThan(amount) {
		return decimal.Zero, fmt.Errorf("balance %s cannot cover %s: %w",
			acc.Balance.StringFixed(2), amount.StringFixed(2), apperrors.ErrInsufficientFunds)
	}

	now := time.Now().UTC()
	if err := s.accountRepo.UpdateBalance(ctx, tx, accountNumber, newBalance, acc.Balance, now); err != nil {
		return decimal.Zero, err
	}
	if _, err := s.ledgerRepo.AppendEntry(ctx, tx, domain.LedgerEntry{
		AccountNumber: accountNumber,
		Type:          domain.Withdrawal,
		Amount:        amount,
		BalanceAfter:  newBalance,
		Timestamp:     now,
		Description:   "Cash Withdrawal",
	}); err != nil {
		return decimal.Zero, err
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}

	logger.Info("Withdrawal applied",
		slog.Int64("account_number", accountNumber),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("balance", newBalance.StringFixed(2)))
	return newBalance, nil
}

// Transfer debits fromAccount and credits toAccount as one atomic unit:
// either both balance updates and both ledger entries are durable, or none.
func (s *ledgerService) Transfer(ctx context.Context, fromAccount, toAccount int64, amount decimal.Decimal) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("transfer amount must be positive: %w", apperrors.ErrInvalidAmount)
	}
	if fromAccount == toAccount {
		return decimal.Zero, fmt.Errorf("account %d: %w", fromAccount, apperrors.ErrSameAccount)
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	// Lock both rows in ascending account number order to avoid deadlocks
	// between opposite-direction transfers.
	numbers := []int64{fromAccount, toAccount}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	accounts, err := s.accountRepo.FindAccountsForUpdate(ctx, tx, numbers)
	if err != nil {
		return decimal.Zero, err
	}
	for _, n := range numbers {
		if _, ok := accounts[n]; !ok {
			return decimal.Zero, fmt.Errorf("account %d: %w", n, apperrors.ErrAccountNotFound)
		}
	}
	src := accounts[fromAccount]
	dst := accounts[toAccount]
	if src.IsClosed() {
		return decimal.Zero, fmt.Errorf("account %d: %w", fromAccount, apperrors.ErrAccountClosed)
	}
	if dst.IsClosed() {
		return decimal.Zero, fmt.Errorf("account %d: %w", toAccount, apperrors.ErrAccountClosed)
	}

	newFromBalance := src.Balance.Sub(amount)
	if !domain.MinimumBalanceSatisfied(src.Kind, newFromBalance) {
		return decimal.Zero, fmt.Errorf("transfer would leave balance %s below the %s minimum: %w",
			newFromBalance.StringFixed(2), domain.CurrentMinimumBalance.StringFixed(2), apperrors.ErrMinimumBalance)
	}
	if src.Balance.LessThan(amount) {
		return decimal.Zero, fmt.Errorf("balance %s cannot cover %s: %w",
			src.Balance.StringFixed(2), amount.StringFixed(2), apperrors.ErrInsufficientFunds)
	}
	newToBalance := dst.Balance.Add(amount)

	now := time.Now().UTC()
	if err := s.accountRepo.UpdateBalance(ctx, tx, fromAccount, newFromBalance, src.Balance, now); err != nil {
		return decimal.Zero, err
	}
	if err := s.accountRepo.UpdateBalance(ctx, tx, toAccount, newToBalance, dst.Balance, now); err != nil {
		return decimal.Zero, err
	}
	if _, err := s.ledgerRepo.AppendEntry(ctx, tx, domain.LedgerEntry{
		AccountNumber: fromAccount,
		Type:          domain.Transfer,
		Amount:        amount,
		BalanceAfter:  newFromBalance,
		Timestamp:     now,
		Description:   fmt.Sprintf("Transfer to account %d", toAccount),
	}); err != nil {
		return decimal.Zero, err
	}
	if _, err := s.ledgerRepo.AppendEntry(ctx, tx, domain.LedgerEntry{
		AccountNumber: toAccount,
		Type:          domain.Transfer,
		Amount:        amount,
		BalanceAfter:  newToBalance,
		Timestamp:     now,
		Description:   fmt.Sprintf("Transfer from account %d", fromAccount),
	}); err != nil {
		return decimal.Zero, err
	}

	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}

	logger.Info("Transfer applied",
		slog.Int64("from_account", fromAccount),
		slog.Int64("to_account", toAccount),
		slog.String("amount", amount.StringFixed(2)))
	return newFromBalance, nil
}

// CloseAccount transitions an account to Closed. Closure requires an exactly
// zero balance and appends no ledger entry: it is a status transition, not a
// monetary event.
func (s *ledgerService) CloseAccount(ctx context.Context, accountNumber int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.accountRepo.Rollback(ctx, tx)

	acc, err := s.lockAccount(ctx, tx, accountNumber)
	if err != nil {
		return err
	}
	if acc.IsClosed() {
		return fmt.Errorf("account %d: %w", accountNumber, apperrors.ErrAccountClosed)
	}
	if !acc.Balance.IsZero() {
		return fmt.Errorf("account %d holds %s: %w", accountNumber, acc.Balance.StringFixed(2), apperrors.ErrNonZeroBalance)
	}

	if err := s.accountRepo.SetStatus(ctx, tx, accountNumber, domain.Closed, time.Now().UTC()); err != nil {
		return err
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Account closed", slog.Int64("account_number", accountNumber))
	return nil
}

// GetAccount retrieves one account. Closed accounts remain readable.
func (s *ledgerService) GetAccount(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByNumber(ctx, accountNumber)
}

// ListAccounts retrieves all accounts as of the underlying store's state at
// call time.
func (s *ledgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// TransactionHistory returns the newest entries for an account, truncated to
// limit (default 10).
func (s *ledgerService) TransactionHistory(ctx context.Context, accountNumber int64, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	// Closed accounts keep their history; only nonexistent accounts fail.
	if _, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber); err != nil {
		return nil, err
	}
	return s.ledgerRepo.RecentEntries(ctx, accountNumber, limit)
}

// ReportInterest computes annual interest for every Savings account. Pure
// read; nothing is posted.
func (s *ledgerService) ReportInterest(ctx context.Context) ([]domain.InterestLine, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.InterestLine, 0, len(accounts))
	for _, acc := range accounts {
		if acc.Kind != domain.Savings {
			continue
		}
		lines = append(lines, domain.InterestLine{
			AccountNumber: acc.AccountNumber,
			HolderName:    acc.HolderName,
			Balance:       acc.Balance,
			Interest:      domain.InterestFor(acc.Kind, acc.Balance),
		})
	}
	return lines, nil
}
