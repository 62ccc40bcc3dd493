package mapping

import (
	"github.com/example/corebank/internal/core/domain"
	"github.com/example/corebank/internal/models"
)

// ToModelLedgerEntry converts a domain.LedgerEntry to its database row.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		SequenceID:    d.SequenceID,
		AccountNumber: d.AccountNumber,
		EntryType:     string(d.Type),
		Amount:        d.Amount,
		BalanceAfter:  d.BalanceAfter,
		Timestamp:     d.Timestamp,
		Description:   d.Description,
	}
}

// ToDomainLedgerEntry converts a database row to the domain model.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		SequenceID:    m.SequenceID,
		AccountNumber: m.AccountNumber,
		Type:          domain.EntryType(m.EntryType),
		Amount:        m.Amount,
		BalanceAfter:  m.BalanceAfter,
		Timestamp:     m.Timestamp,
		Description:   m.Description,
	}
}
