package token

import (
	"testing"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/swaptest"
	"github.com/iov-one/swapkit/swaptest/assert"
)

type router map[string]swapkit.Handler

func (r router) Handle(path string, h swapkit.Handler) {
	r[path] = h
}

func TestHandlers(t *testing.T) {
	f := newFixture(t)
	r := make(router)
	RegisterRoutes(r, f.ctrl)

	meta := &swapkit.Metadata{Schema: 1}
	vault := swaptest.NewCondition().Address()
	dest := f.account(t, f.bob, "ABC", 0)
	refund := swaptest.NewCondition().Address()

	deliver := func(msg swapkit.Msg, signers ...swapkit.Condition) error {
		h, ok := r[msg.Path()]
		if !ok {
			t.Fatalf("no handler for %q", msg.Path())
		}
		tx := &swaptest.Tx{Msg: msg}
		ctx := f.ctx(signers...)
		if _, err := h.Check(ctx, f.db, tx); err != nil {
			return err
		}
		_, err := h.Deliver(ctx, f.db, tx)
		return err
	}

	create := &CreateAccountMsg{
		Metadata: meta,
		ID:       vault,
		Ticker:   "ABC",
		Owner:    f.alice.Address(),
		Payer:    f.alice.Address(),
	}
	assert.Nil(t, deliver(create, f.alice))
	assert.Nil(t, f.ctrl.Issue(f.db, vault, 20))

	// handing over the vault locks out the depositor
	authority := swaptest.NewCondition()
	assert.Nil(t, deliver(&SetAuthorityMsg{Metadata: meta, Account: vault, NewOwner: authority.Address()}, f.alice))

	transfer := &TransferMsg{Metadata: meta, Source: vault, Destination: dest, Amount: 20}
	check := func(msg swapkit.Msg, signers ...swapkit.Condition) error {
		_, err := r[msg.Path()].Check(f.ctx(signers...), f.db, &swaptest.Tx{Msg: msg})
		return err
	}
	assert.IsErr(t, errors.ErrUnauthorized, check(transfer, f.alice))
	assert.IsErr(t, errors.ErrUnauthorized, check(transfer, f.bob))
	assert.IsErr(t, errors.ErrUnauthorized, check(&SetAuthorityMsg{Metadata: meta, Account: vault, NewOwner: f.alice.Address()}, f.alice))
	assert.IsErr(t, errors.ErrUnauthorized, check(&CreateAccountMsg{Metadata: meta, ID: refund, Ticker: "ABC", Owner: f.bob.Address(), Payer: f.alice.Address()}, f.bob))
	assert.Nil(t, check(transfer, authority))
	assert.IsErr(t, errors.ErrUnauthorized, deliver(transfer, f.alice))
	assert.Nil(t, deliver(transfer, authority))

	closeMsg := &CloseAccountMsg{Metadata: meta, Account: vault, Destination: refund}
	assert.IsErr(t, errors.ErrUnauthorized, deliver(closeMsg, f.alice))
	assert.Nil(t, deliver(closeMsg, authority))

	got, err := f.cash.Balance(f.db, refund)
	assert.Nil(t, err)
	assert.Equal(t, uint64(10), got)

	assert.IsErr(t, errors.ErrAmount, deliver(&TransferMsg{Metadata: meta, Source: dest, Destination: vault}, f.bob))
	assert.IsErr(t, errors.ErrMetadata, deliver(&CloseAccountMsg{Account: dest, Destination: refund}, f.bob))
}
