package escrow

import (
	"github.com/iov-one/swapkit/errors"
)

// Escrow extension takes 1100-1199 codes.
var (
	ErrAlreadyInitialized    = errors.Register(1100, "escrow already initialized")
	ErrInvalidAccount        = errors.Register(1101, "invalid account")
	ErrInvalidExchangeAmount = errors.Register(1102, "invalid exchange amount")
	ErrRecordNotFound        = errors.Register(1103, "escrow record not found")
)
