package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind is the variant of an account, fixed at creation.
type AccountKind string

const (
	Savings AccountKind = "SAVINGS"
	Current AccountKind = "CURRENT"
)

// AccountStatus is the lifecycle state of an account. Closed is terminal.
type AccountStatus string

const (
	Active AccountStatus = "ACTIVE"
	Closed AccountStatus = "CLOSED"
)

// SavingsInterestRate is the annual, non-compounding rate applied to Savings
// balances. Interest is computed on demand and never posted.
var SavingsInterestRate = decimal.NewFromFloat(0.04)

// CurrentMinimumBalance is the floor a Current account must keep after any
// withdrawal or outgoing transfer.
var CurrentMinimumBalance = decimal.NewFromInt(1000)

// Account represents a stored account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountNumber int64           `json:"accountNumber"` // Store-assigned positive identifier
	HolderName    string          `json:"holderName"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	Kind          AccountKind     `json:"kind"`
	Balance       decimal.Decimal `json:"balance"` // Major currency units, 2dp
	Status        AccountStatus   `json:"status"`
	AuditFields
}

// IsClosed reports whether the account has reached its terminal state.
func (a Account) IsClosed() bool {
	return a.Status == Closed
}

// InterestFor returns the annual interest a balance would earn for the given
// kind. Savings earn SavingsInterestRate; Current accounts earn nothing.
// Purely informational, never posted to the balance.
func InterestFor(kind AccountKind, balance decimal.Decimal) decimal.Decimal {
	switch kind {
	case Savings:
		return balance.Mul(SavingsInterestRate)
	default:
		return decimal.Zero
	}
}

// MinimumBalanceSatisfied reports whether a balance honors the kind's floor.
// Savings accounts have no minimum.
func MinimumBalanceSatisfied(kind AccountKind, balance decimal.Decimal) bool {
	if kind == Current {
		return balance.GreaterThanOrEqual(CurrentMinimumBalance)
	}
	return true
}
