package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry.
type EntryType string

const (
	Deposit    EntryType = "DEPOSIT"
	Withdrawal EntryType = "WITHDRAWAL"
	Transfer   EntryType = "TRANSFER"
)

// LedgerEntry is one immutable record of a balance-affecting event.
// Entries are append-only: no update or delete operation exists.
type LedgerEntry struct {
	SequenceID    int64           `json:"sequenceID"` // Store-assigned, monotonic per append order
	AccountNumber int64           `json:"accountNumber"`
	Type          EntryType       `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Always positive
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	Timestamp     time.Time       `json:"timestamp"`
	Description   string          `json:"description"`
}
