package token

import (
	"github.com/iov-one/swapkit/errors"
)

var (
	// ErrAccountFrozen is returned when a custody operation involves a
	// frozen account.
	ErrAccountFrozen = errors.Register(1200, "account frozen")

	// ErrTickerMismatch is returned when tokens are moved between
	// accounts of different tickers.
	ErrTickerMismatch = errors.Register(1201, "ticker mismatch")

	// ErrNonEmptyAccount is returned when closing an account that still
	// holds tokens.
	ErrNonEmptyAccount = errors.Register(1202, "account not empty")
)

var transferErrors = []*errors.Error{
	errors.ErrUnauthorized,
	errors.ErrNotFound,
	errors.ErrInsufficientAmount,
	errors.ErrOverflow,
	ErrAccountFrozen,
	ErrTickerMismatch,
	ErrNonEmptyAccount,
}

// IsTransferError returns true if given error was caused by a failed
// custody operation as opposed to for example a malformed request.
func IsTransferError(err error) bool {
	for _, e := range transferErrors {
		if e.Is(err) {
			return true
		}
	}
	return false
}
