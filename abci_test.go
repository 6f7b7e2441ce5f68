package swapkit

import (
	"fmt"
	"testing"

	"github.com/iov-one/swapkit/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/common"
)

func TestDeliverOrError(t *testing.T) {
	res := &DeliverResult{
		Data: []byte("escrow-1"),
		Tags: []common.KVPair{ActionTag("escrow", "init")},
	}
	resp := DeliverOrError(res, nil, false)
	assert.EqualValues(t, 0, resp.Code)
	assert.Equal(t, []byte("escrow-1"), resp.Data)
	assert.Len(t, resp.Tags, 1)

	resp = DeliverOrError(nil, errors.Wrap(errors.ErrUnauthorized, "vault"), false)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), resp.Code)
	assert.Equal(t, "cannot deliver tx: vault: unauthorized", resp.Log)

	parsed, err := ParseDeliverOrError(resp)
	assert.Nil(t, parsed)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestCheckOrErrorHidesInternal(t *testing.T) {
	resp := CheckOrError(nil, fmt.Errorf("disk on fire"), false)
	assert.EqualValues(t, 1, resp.Code)
	assert.Equal(t, "cannot check tx: internal error", resp.Log)

	resp = CheckOrError(NewCheck(10, "ok"), nil, false)
	assert.EqualValues(t, 0, resp.Code)
	assert.EqualValues(t, 10, resp.GasWanted)
}
