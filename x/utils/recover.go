package utils

import (
	"fmt"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
)

// Recovery is a decorator to recover from panics in transactions. A
// recovered panic is logged together with the message path and returned
// as ErrPanic, so that a single broken handler cannot halt the chain.
type Recovery struct{}

var _ swapkit.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (Recovery) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx, next swapkit.Checker) (_ *swapkit.CheckResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Check(ctx, db, tx)
}

// Deliver turns panics into normal errors
func (Recovery) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx, next swapkit.Deliverer) (_ *swapkit.DeliverResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Deliver(ctx, db, tx)
}

func recoverTx(ctx swapkit.Context, tx swapkit.Tx, err *error) {
	if r := recover(); r != nil {
		swapkit.GetLogger(ctx).Error("panic recovered",
			"path", swapkit.GetPath(tx),
			"panic", fmt.Sprintf("%v", r))
		*err = errors.Wrapf(errors.ErrPanic, "%v", r)
	}
}
