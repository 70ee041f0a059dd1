// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound                = errors.New("resource not found")
	ErrInvalidInput            = errors.New("invalid input provided")
	ErrAccountNotFound         = errors.New("account not found")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInvalidAmount           = errors.New("invalid transfer amount")
	ErrSameAccountTransfer     = errors.New("cannot transfer to the same account")
	ErrTransferNotAllowed      = errors.New("account is not allowed to transfer")
	ErrVersionConflict         = errors.New("account was modified concurrently")
	ErrConflictExceededRetries = errors.New("could not commit transfer after retries")
	ErrNegativeBalance         = errors.New("balance cannot be negative")
	ErrForbidden               = errors.New("operation not permitted")
	// ErrStoreUnavailable marks infrastructure failure, as opposed to a
	// business-rule rejection. Callers may retry with backoff.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// IsError reports whether err matches the given sentinel error.
// Thin wrapper around errors.Is so callers don't import errors everywhere.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
