package models

import (
	"github.com/shopspring/decimal"
)

// Account is the database representation of an account row.
type Account struct {
	AccountNumber int64           `db:"account_number"`
	HolderName    string          `db:"holder_name"`
	Phone         string          `db:"phone"`
	Email         string          `db:"email"`
	Address       string          `db:"address"`
	Kind          string          `db:"kind"`
	Balance       decimal.Decimal `db:"balance"`
	Status        string          `db:"status"`
	AuditFields                   // Embed common audit fields
}
