package domain

import "errors"

// Domain errors. Handlers translate these into HTTP status codes; the core
// never formats output itself.
var (
	// ErrNonPositiveAmount rejects zero and negative amounts on credit,
	// debit and transfer. The input layer only checks that an amount is a
	// number, so the core guards sign itself.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrAuthenticationFailed covers both an unknown user ID and a PIN
	// mismatch, indistinguishably, so callers cannot enumerate user IDs.
	ErrAuthenticationFailed = errors.New("user ID or PIN is incorrect")

	// ErrSameAccount rejects a transfer whose source and destination are
	// the same account, before any balance check.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNonZeroBalance     = errors.New("account balance is not zero")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountNotOwned    = errors.New("account does not belong to user")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnknownAccountType = errors.New("unknown account type")
)
