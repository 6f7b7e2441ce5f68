package token

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
)

var (
	_ swapkit.Msg = (*CreateAccountMsg)(nil)
	_ swapkit.Msg = (*TransferMsg)(nil)
	_ swapkit.Msg = (*SetAuthorityMsg)(nil)
	_ swapkit.Msg = (*CloseAccountMsg)(nil)
)

func (CreateAccountMsg) Path() string {
	return "token/create_account"
}

func (m *CreateAccountMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, errors.Wrap(m.ID.Validate(), "id"))
	errs = errors.Append(errs, errors.Wrap(m.Owner.Validate(), "owner"))
	errs = errors.Append(errs, errors.Wrap(m.Payer.Validate(), "payer"))
	if !IsTicker(m.Ticker) {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrInput, "invalid ticker %q", m.Ticker))
	}
	return errs
}

func (TransferMsg) Path() string {
	return "token/transfer"
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, errors.Wrap(m.Source.Validate(), "source"))
	errs = errors.Append(errs, errors.Wrap(m.Destination.Validate(), "destination"))
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrAmount, "non-positive amount"))
	}
	return errs
}

func (SetAuthorityMsg) Path() string {
	return "token/set_authority"
}

func (m *SetAuthorityMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, errors.Wrap(m.Account.Validate(), "account"))
	errs = errors.Append(errs, errors.Wrap(m.NewOwner.Validate(), "new owner"))
	return errs
}

func (CloseAccountMsg) Path() string {
	return "token/close_account"
}

func (m *CloseAccountMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, errors.Wrap(m.Account.Validate(), "account"))
	errs = errors.Append(errs, errors.Wrap(m.Destination.Validate(), "destination"))
	return errs
}
