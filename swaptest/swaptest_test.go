package swaptest

import (
	"context"
	"testing"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/store"
	"github.com/iov-one/swapkit/swaptest/assert"
)

func TestDecoratedHandlerCounts(t *testing.T) {
	h := &Handler{WriteKey: []byte("k"), WriteValue: []byte("v")}
	d := &Decorator{}
	handler := Decorate(h, d)

	db := store.MemStore()
	tx := &Tx{Msg: &Msg{RoutePath: "test/msg"}}

	_, err := handler.Check(context.Background(), db, tx)
	assert.Nil(t, err)
	_, err = handler.Deliver(context.Background(), db, tx)
	assert.Nil(t, err)

	assert.Equal(t, 1, d.CheckCallCount())
	assert.Equal(t, 1, d.DeliverCallCount())
	assert.Equal(t, 2, h.CallCount())

	val, err := db.Get([]byte("k"))
	assert.Nil(t, err)
	assert.EqualBytes(t, []byte("v"), val)

	d.DeliverErr = errors.ErrUnauthorized
	_, err = handler.Deliver(context.Background(), db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 2, h.CallCount())
}

func TestCtxAuth(t *testing.T) {
	a, b := NewCondition(), NewCondition()
	auth := &CtxAuth{Key: "auth"}
	ctx := auth.SetConditions(context.Background(), a)

	assert.Equal(t, true, auth.HasAddress(ctx, a.Address()))
	assert.Equal(t, false, auth.HasAddress(ctx, b.Address()))

	static := &Auth{Signers: []swapkit.Condition{b}}
	assert.Equal(t, true, static.HasAddress(ctx, b.Address()))
}
