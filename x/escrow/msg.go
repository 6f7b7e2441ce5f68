package escrow

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
)

var (
	_ swapkit.Msg = (*InitMsg)(nil)
	_ swapkit.Msg = (*ExchangeMsg)(nil)
	_ swapkit.Msg = (*CancelMsg)(nil)
)

func (InitMsg) Path() string {
	return "escrow/init"
}

func (m *InitMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, validateEscrowID(m.EscrowID))
	errs = errors.Append(errs, errors.Wrap(m.InitializerReceive.Validate(), "initializer receive"))
	errs = errors.Append(errs, errors.Wrap(m.Vault.Validate(), "vault"))
	if m.ExpectedAmount == 0 {
		errs = errors.Append(errs, errors.Wrap(ErrInvalidExchangeAmount, "expected amount must be positive"))
	}
	return errs
}

func (ExchangeMsg) Path() string {
	return "escrow/exchange"
}

func (m *ExchangeMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, validateEscrowID(m.EscrowID))
	errs = errors.Append(errs, errors.Wrap(m.Initializer.Validate(), "initializer"))
	errs = errors.Append(errs, errors.Wrap(m.InitializerReceive.Validate(), "initializer receive"))
	errs = errors.Append(errs, errors.Wrap(m.Vault.Validate(), "vault"))
	errs = errors.Append(errs, errors.Wrap(m.VaultAuthority.Validate(), "vault authority"))
	errs = errors.Append(errs, errors.Wrap(m.TakerSource.Validate(), "taker source"))
	errs = errors.Append(errs, errors.Wrap(m.TakerReceive.Validate(), "taker receive"))
	return errs
}

func (CancelMsg) Path() string {
	return "escrow/cancel"
}

func (m *CancelMsg) Validate() error {
	var errs error
	errs = errors.Append(errs, errors.Wrap(m.Metadata.Validate(), "metadata"))
	errs = errors.Append(errs, validateEscrowID(m.EscrowID))
	errs = errors.Append(errs, errors.Wrap(m.Initializer.Validate(), "initializer"))
	errs = errors.Append(errs, errors.Wrap(m.RefundDestination.Validate(), "refund destination"))
	errs = errors.Append(errs, errors.Wrap(m.Vault.Validate(), "vault"))
	errs = errors.Append(errs, errors.Wrap(m.VaultAuthority.Validate(), "vault authority"))
	return errs
}
