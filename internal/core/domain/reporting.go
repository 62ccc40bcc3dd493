package domain

import "github.com/shopspring/decimal"

// InterestLine is one row of the on-demand interest report for a Savings
// account. Derived from current state; producing it mutates nothing.
type InterestLine struct {
	AccountNumber int64           `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	Balance       decimal.Decimal `json:"balance"`
	Interest      decimal.Decimal `json:"interest"`
}
