package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the database representation of one transaction log row.
// Rows are insert-only.
type LedgerEntry struct {
	SequenceID    int64           `db:"sequence_id"`
	AccountNumber int64           `db:"account_number"`
	EntryType     string          `db:"entry_type"`
	Amount        decimal.Decimal `db:"amount"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	Timestamp     time.Time       `db:"recorded_at"`
	Description   string          `db:"description"`
}
