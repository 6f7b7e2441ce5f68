package app

import (
	"testing"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/swaptest"
	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	var (
		first  = &swaptest.Decorator{}
		second = &swaptest.Decorator{}
		h      = &swaptest.Handler{}
		tx     = &swaptest.Tx{}
	)

	stack := ChainDecorators(first, nil).Chain(second).WithHandler(h)

	_, err := stack.Check(nil, nil, tx)
	assert.NoError(t, err)
	_, err = stack.Deliver(nil, nil, tx)
	assert.NoError(t, err)

	assert.Equal(t, 2, first.CallCount())
	assert.Equal(t, 2, second.CallCount())
	assert.Equal(t, 2, h.CallCount())

	second.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(nil, nil, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 2, first.DeliverCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestCutoffNil(t *testing.T) {
	var typedNil *swaptest.Decorator
	d := &swaptest.Decorator{}

	cases := map[string]struct {
		in   []swapkit.Decorator
		want int
	}{
		"empty":       {in: nil, want: 0},
		"no nils":     {in: []swapkit.Decorator{d, d}, want: 2},
		"only nils":   {in: []swapkit.Decorator{nil, typedNil}, want: 0},
		"mixed":       {in: []swapkit.Decorator{nil, d, typedNil, d, nil}, want: 2},
		"nil at tail": {in: []swapkit.Decorator{d, nil}, want: 1},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := cutoffNil(tc.in)
			assert.Equal(t, tc.want, len(got))
			for _, g := range got {
				assert.NotNil(t, g)
			}
		})
	}
}
