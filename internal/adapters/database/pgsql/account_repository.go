package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/corebank/internal/apperrors"
	"github.com/example/corebank/internal/core/domain"
	portsrepo "github.com/example/corebank/internal/core/ports/repositories"
	"github.com/example/corebank/internal/models"
	"github.com/example/corebank/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

const accountColumns = `account_number, holder_name, phone, email, address, kind, balance, status, created_at, last_updated_at`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountNumber,
		&m.HolderName,
		&m.Phone,
		&m.Email,
		&m.Address,
		&m.Kind,
		&m.Balance,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// FindAccountByNumber retrieves a single account row.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_number = $1;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %d: %w", accountNumber, apperrors.ErrAccountNotFound)
		}
		return nil, storageErr(fmt.Sprintf("failed to find account %d", accountNumber), err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves every account ordered by account number.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		ORDER BY account_number;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, storageErr("failed to list accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, storageErr("failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("error iterating account rows", err)
	}
	return accounts, nil
}

// FindAccountsForUpdate retrieves accounts by number and locks their rows
// until the surrounding transaction ends. Missing numbers are simply absent
// from the result.
func (r *PgxAccountRepository) FindAccountsForUpdate(ctx context.Context, tx pgx.Tx, accountNumbers []int64) (map[int64]domain.Account, error) {
	if len(accountNumbers) == 0 {
		return map[int64]domain.Account{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_number = ANY($1)
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, accountNumbers)
	if err != nil {
		return nil, storageErr("failed to query accounts for update", err)
	}
	defer rows.Close()

	accountsMap := make(map[int64]domain.Account)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, storageErr("failed to scan locked account row", err)
		}
		accountsMap[m.AccountNumber] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("error iterating locked account rows", err)
	}
	return accountsMap, nil
}

// CreateAccount inserts a new account and returns the store-assigned number.
func (r *PgxAccountRepository) CreateAccount(ctx context.Context, tx pgx.Tx, account domain.Account) (int64, error) {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (holder_name, phone, email, address, kind, balance, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING account_number;
	`
	var number int64
	err := tx.QueryRow(ctx, query,
		m.HolderName,
		m.Phone,
		m.Email,
		m.Address,
		m.Kind,
		m.Balance,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&number)
	if err != nil {
		return 0, storageErr("failed to create account", err)
	}
	return number, nil
}

// UpdateBalance conditionally writes a new balance. The update only applies
// while the stored balance still equals expectedPrior; a zero row count means
// a concurrent mutation won the race.
func (r *PgxAccountRepository) UpdateBalance(ctx context.Context, tx pgx.Tx, accountNumber int64, newBalance, expectedPrior decimal.Decimal, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $1, last_updated_at = $2
		WHERE account_number = $3 AND balance = $4;
	`
	tag, err := tx.Exec(ctx, query, newBalance, now, accountNumber, expectedPrior)
	if err != nil {
		return storageErr(fmt.Sprintf("failed to update balance of account %d", accountNumber), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %d: %w", accountNumber, apperrors.ErrConcurrentModification)
	}
	return nil
}

// SetStatus transitions the lifecycle status of an account.
func (r *PgxAccountRepository) SetStatus(ctx context.Context, tx pgx.Tx, accountNumber int64, status domain.AccountStatus, now time.Time) error {
	query := `
		UPDATE accounts
		SET status = $1, last_updated_at = $2
		WHERE account_number = $3;
	`
	tag, err := tx.Exec(ctx, query, string(status), now, accountNumber)
	if err != nil {
		return storageErr(fmt.Sprintf("failed to set status of account %d", accountNumber), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %d: %w", accountNumber, apperrors.ErrAccountNotFound)
	}
	return nil
}
