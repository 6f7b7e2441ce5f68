package swapkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopQuery struct{}

func (nopQuery) Query(ReadOnlyKVStore, string, []byte) ([]Model, error) { return nil, nil }

func TestQueryRouter(t *testing.T) {
	r := NewQueryRouter()
	r.RegisterAll(
		func(qr QueryRouter) { qr.Register("/tokens", nopQuery{}) },
		func(qr QueryRouter) { qr.Register("/escrows", nopQuery{}) },
	)

	assert.Equal(t, []string{"/escrows", "/tokens"}, r.Paths())
	assert.NotNil(t, r.Handler("/escrows"))
	assert.Nil(t, r.Handler("/wallets"))

	assert.Panics(t, func() { r.Register("/tokens", nopQuery{}) })
	assert.Panics(t, func() { r.Register("tokens", nopQuery{}) })
	assert.Panics(t, func() { r.Register("/tokens?prefix", nopQuery{}) })
}
