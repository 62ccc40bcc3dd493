package dto

import (
	"time"

	"github.com/example/corebank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountRequest carries the amount for a deposit or withdrawal.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// TransferRequest defines a transfer between two accounts.
type TransferRequest struct {
	FromAccount int64           `json:"fromAccount" binding:"required"`
	ToAccount   int64           `json:"toAccount" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// BalanceResponse is returned by balance-mutating operations.
type BalanceResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}

// LedgerEntryResponse is one row of the transaction history.
type LedgerEntryResponse struct {
	SequenceID    int64            `json:"sequenceID"`
	AccountNumber int64            `json:"accountNumber"`
	Type          domain.EntryType `json:"type"`
	Amount        decimal.Decimal  `json:"amount"`
	BalanceAfter  decimal.Decimal  `json:"balanceAfter"`
	Timestamp     time.Time        `json:"timestamp"`
	Description   string           `json:"description"`
}

// InterestLineResponse is one row of the savings interest report.
type InterestLineResponse struct {
	AccountNumber int64           `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	Balance       decimal.Decimal `json:"balance"`
	Interest      decimal.Decimal `json:"interest"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response row.
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		SequenceID:    e.SequenceID,
		AccountNumber: e.AccountNumber,
		Type:          e.Type,
		Amount:        e.Amount,
		BalanceAfter:  e.BalanceAfter,
		Timestamp:     e.Timestamp,
		Description:   e.Description,
	}
}

// ToInterestLineResponse converts a domain.InterestLine to its response row.
func ToInterestLineResponse(l domain.InterestLine) InterestLineResponse {
	return InterestLineResponse{
		AccountNumber: l.AccountNumber,
		HolderName:    l.HolderName,
		Balance:       l.Balance,
		Interest:      l.Interest,
	}
}
