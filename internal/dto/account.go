package dto

import (
	"time"

	"github.com/example/corebank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenAccountRequest defines the data needed to open a new account.
type OpenAccountRequest struct {
	HolderName     string             `json:"holderName" binding:"required"`
	Phone          string             `json:"phone"`
	Email          string             `json:"email"`
	Address        string             `json:"address"`
	Kind           domain.AccountKind `json:"kind" binding:"required,oneof=SAVINGS CURRENT"`
	InitialDeposit decimal.Decimal    `json:"initialDeposit"`
}

// AccountResponse defines the data returned for a single account, including
// the derived interest and minimum-balance figures.
type AccountResponse struct {
	AccountNumber           int64              `json:"accountNumber"`
	HolderName              string             `json:"holderName"`
	Phone                   string             `json:"phone"`
	Email                   string             `json:"email"`
	Address                 string             `json:"address"`
	Kind                    domain.AccountKind `json:"kind"`
	Balance                 decimal.Decimal    `json:"balance"`
	Status                  domain.AccountStatus `json:"status"`
	AnnualInterest          decimal.Decimal    `json:"annualInterest"`
	MinimumBalanceSatisfied bool               `json:"minimumBalanceSatisfied"`
	CreatedAt               time.Time          `json:"createdAt"`
	LastUpdatedAt           time.Time          `json:"lastUpdatedAt"`
}

// AccountSummaryResponse is the trimmed listing row.
type AccountSummaryResponse struct {
	AccountNumber int64                `json:"accountNumber"`
	HolderName    string               `json:"holderName"`
	Kind          domain.AccountKind   `json:"kind"`
	Balance       decimal.Decimal      `json:"balance"`
	Status        domain.AccountStatus `json:"status"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber:           acc.AccountNumber,
		HolderName:              acc.HolderName,
		Phone:                   acc.Phone,
		Email:                   acc.Email,
		Address:                 acc.Address,
		Kind:                    acc.Kind,
		Balance:                 acc.Balance,
		Status:                  acc.Status,
		AnnualInterest:          domain.InterestFor(acc.Kind, acc.Balance),
		MinimumBalanceSatisfied: domain.MinimumBalanceSatisfied(acc.Kind, acc.Balance),
		CreatedAt:               acc.CreatedAt,
		LastUpdatedAt:           acc.LastUpdatedAt,
	}
}

// ToAccountSummaryResponse converts a domain.Account to its listing row.
func ToAccountSummaryResponse(acc domain.Account) AccountSummaryResponse {
	return AccountSummaryResponse{
		AccountNumber: acc.AccountNumber,
		HolderName:    acc.HolderName,
		Kind:          acc.Kind,
		Balance:       acc.Balance,
		Status:        acc.Status,
	}
}
