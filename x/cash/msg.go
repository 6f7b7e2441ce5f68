package cash

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
)

var _ swapkit.Msg = (*SendMsg)(nil)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrAmount, "non-positive amount"))
	}
	errs = errors.Append(errs, errors.Wrap(m.Source.Validate(), "source"))
	errs = errors.Append(errs, errors.Wrap(m.Destination.Validate(), "destination"))
	if len(m.Memo) > maxMemoSize {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "memo too long"))
	}
	return errs
}
