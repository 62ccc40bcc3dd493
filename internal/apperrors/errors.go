package apperrors

import "errors"

// Business errors returned by the ledger engine. Each one is a rejected
// operation on an otherwise-live instance; none are fatal. Callers match
// them with errors.Is.
var (
	// ErrInvalidAmount indicates a non-positive amount (or a negative initial deposit).
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAccountNotFound indicates no account exists for the given number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountClosed indicates a mutating operation targeted a closed account.
	// Closure is terminal; closed accounts remain readable.
	ErrAccountClosed = errors.New("account is closed")

	// ErrMinimumBalance indicates a Current account would drop below its
	// minimum balance after a withdrawal or outgoing transfer.
	ErrMinimumBalance = errors.New("minimum balance violation")

	// ErrInsufficientFunds indicates the balance cannot cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameAccount indicates a transfer where source and destination match.
	ErrSameAccount = errors.New("cannot transfer to the same account")

	// ErrNonZeroBalance indicates an attempt to close an account whose
	// balance is not exactly zero.
	ErrNonZeroBalance = errors.New("account balance must be zero to close")

	// ErrConcurrentModification indicates a conditional balance update lost
	// a race with another mutation of the same account.
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrStorageUnavailable wraps lower-level connectivity failures of the
	// backing store.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
