package token

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
)

const (
	createAccountCost = 100
	transferCost      = 50
	setAuthorityCost  = 50
	closeAccountCost  = 50
)

// RegisterQuery will register the account bucket as "/tokens"
func RegisterQuery(qr swapkit.QueryRouter) {
	NewAccountBucket().Register("tokens", qr)
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r swapkit.Registry, ctrl *Controller) {
	r.Handle(CreateAccountMsg{}.Path(), &CreateAccountHandler{ctrl: ctrl})
	r.Handle(TransferMsg{}.Path(), &TransferHandler{ctrl: ctrl})
	r.Handle(SetAuthorityMsg{}.Path(), &SetAuthorityHandler{ctrl: ctrl})
	r.Handle(CloseAccountMsg{}.Path(), &CloseAccountHandler{ctrl: ctrl})
}

// CreateAccountHandler creates token accounts.
type CreateAccountHandler struct {
	ctrl *Controller
}

var _ swapkit.Handler = (*CreateAccountHandler)(nil)

// Check ensures the payer signed the transaction.
func (h *CreateAccountHandler) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return swapkit.NewCheck(createAccountCost, ""), nil
}

// Deliver creates the account and charges the deposit.
func (h *CreateAccountHandler) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.CreateAccount(ctx, db, msg.Payer, msg.ID, msg.Ticker, msg.Owner); err != nil {
		return nil, err
	}
	return &swapkit.DeliverResult{Data: msg.ID}, nil
}

func (h *CreateAccountHandler) validate(ctx swapkit.Context, tx swapkit.Tx) (*CreateAccountMsg, error) {
	var msg CreateAccountMsg
	if err := swapkit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.ctrl.auth.HasAddress(ctx, msg.Payer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "payer signature missing")
	}
	return &msg, nil
}

// TransferHandler moves tokens between accounts.
type TransferHandler struct {
	ctrl *Controller
}

var _ swapkit.Handler = (*TransferHandler)(nil)

// Check ensures the owner of the source account signed the transaction.
func (h *TransferHandler) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return swapkit.NewCheck(transferCost, ""), nil
}

// Deliver moves the tokens.
func (h *TransferHandler) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Transfer(ctx, db, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &swapkit.DeliverResult{}, nil
}

func (h *TransferHandler) validate(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*TransferMsg, error) {
	var msg TransferMsg
	if err := swapkit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.Authorize(ctx, db, msg.Source); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SetAuthorityHandler changes account owners.
type SetAuthorityHandler struct {
	ctrl *Controller
}

var _ swapkit.Handler = (*SetAuthorityHandler)(nil)

// Check ensures the current owner signed the transaction.
func (h *SetAuthorityHandler) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return swapkit.NewCheck(setAuthorityCost, ""), nil
}

// Deliver hands the account over to the new owner.
func (h *SetAuthorityHandler) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.SetAuthority(ctx, db, msg.Account, msg.NewOwner); err != nil {
		return nil, err
	}
	return &swapkit.DeliverResult{}, nil
}

func (h *SetAuthorityHandler) validate(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*SetAuthorityMsg, error) {
	var msg SetAuthorityMsg
	if err := swapkit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.Authorize(ctx, db, msg.Account); err != nil {
		return nil, err
	}
	return &msg, nil
}

// CloseAccountHandler removes empty accounts.
type CloseAccountHandler struct {
	ctrl *Controller
}

var _ swapkit.Handler = (*CloseAccountHandler)(nil)

// Check ensures the owner signed the transaction.
func (h *CloseAccountHandler) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return swapkit.NewCheck(closeAccountCost, ""), nil
}

// Deliver removes the account and refunds its deposit.
func (h *CloseAccountHandler) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.CloseAccount(ctx, db, msg.Account, msg.Destination); err != nil {
		return nil, err
	}
	return &swapkit.DeliverResult{}, nil
}

func (h *CloseAccountHandler) validate(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*CloseAccountMsg, error) {
	var msg CloseAccountMsg
	if err := swapkit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.Authorize(ctx, db, msg.Account); err != nil {
		return nil, err
	}
	return &msg, nil
}
