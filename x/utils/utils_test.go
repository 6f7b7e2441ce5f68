package utils

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/store"
	"github.com/iov-one/swapkit/swaptest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestSavepoint(t *testing.T) {
	// always written before calling the decorator
	ok, ov := []byte("demo"), []byte("data")
	// written by the handler
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}
	derr := errors.ErrState.New("something went wrong")

	cases := map[string]struct {
		save    Savepoint
		fail    bool
		check   bool
		written [][]byte
		missing [][]byte
	}{
		"disabled savepoint keeps failed writes": {
			save:    NewSavepoint(),
			fail:    true,
			check:   true,
			written: [][]byte{ok, nk},
		},
		"check savepoint drops failed writes": {
			save:    NewSavepoint().OnCheck(),
			fail:    true,
			check:   true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"deliver savepoint drops failed writes": {
			save:    NewSavepoint().OnDeliver(),
			fail:    true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"both phases enabled": {
			save:    NewSavepoint().OnDeliver().OnCheck(),
			fail:    true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"check savepoint does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			fail:    true,
			written: [][]byte{ok, nk},
		},
		"success is written": {
			save:    NewSavepoint().OnCheck().OnDeliver(),
			written: [][]byte{ok, nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kv := store.MemStore()
			require.NoError(t, kv.Set(ok, ov))

			h := &swaptest.Handler{WriteKey: nk, WriteValue: nv}
			if tc.fail {
				h.CheckErr = derr
				h.DeliverErr = derr
			}

			var err error
			if tc.check {
				_, err = tc.save.Check(context.Background(), kv, nil, h)
			} else {
				_, err = tc.save.Deliver(context.Background(), kv, nil, h)
			}
			if tc.fail {
				assert.True(t, errors.ErrState.Is(err))
			} else {
				assert.NoError(t, err)
			}

			for _, k := range tc.written {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.True(t, has, "%x", k)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.False(t, has, "%x", k)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	h := swaptest.Decorate(&swaptest.Handler{Panic: "boom"}, NewRecovery())
	ctx := context.Background()
	db := store.MemStore()
	tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "test/msg"}}

	_, err := h.Check(ctx, db, tx)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "boom")

	_, err = h.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrPanic.Is(err))
}

func TestActionTagger(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "escrow/exchange"}}

	h := swaptest.Decorate(&swaptest.Handler{}, NewActionTagger())
	res, err := h.Deliver(ctx, db, tx)
	require.NoError(t, err)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, []byte(ActionKey), res.Tags[0].Key)
	assert.Equal(t, []byte("escrow/exchange"), res.Tags[0].Value)

	failing := swaptest.Decorate(&swaptest.Handler{DeliverErr: errors.ErrState}, NewActionTagger())
	_, err = failing.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrState.Is(err))

	broken := &swaptest.Tx{Err: errors.ErrInput}
	_, err = h.Deliver(ctx, db, broken)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := swapkit.WithLogger(context.Background(), log.NewTMLogger(log.NewSyncWriter(&buf)))
	db := store.MemStore()
	tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "token/transfer"}}

	h := swaptest.Decorate(&swaptest.Handler{
		DeliverResult: swapkit.DeliverResult{Log: "all good"},
	}, NewLogging())
	_, err := h.Deliver(ctx, db, tx)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "all good")
	assert.Contains(t, buf.String(), "token/transfer")

	buf.Reset()
	failing := swaptest.Decorate(&swaptest.Handler{
		CheckErr: errors.ErrUnauthorized.New("no signature"),
	}, NewLogging())
	_, err = failing.Check(ctx, db, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Contains(t, buf.String(), "no signature")
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	ctx := context.Background()
	db := store.MemStore()
	tx := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "escrow/init"}}

	ok := swaptest.Decorate(&swaptest.Handler{}, m)
	for i := 0; i < 3; i++ {
		_, err := ok.Deliver(ctx, db, tx)
		require.NoError(t, err)
	}
	failing := swaptest.Decorate(&swaptest.Handler{DeliverErr: errors.ErrUnauthorized}, m)
	_, err = failing.Deliver(ctx, db, tx)
	require.Error(t, err)
	// check calls are not counted
	_, err = ok.Check(ctx, db, tx)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := make(map[string]float64)
	var observed uint64
	for _, f := range families {
		switch f.GetName() {
		case "swapkit_tx_total":
			for _, metric := range f.GetMetric() {
				var path, code string
				for _, l := range metric.GetLabel() {
					switch l.GetName() {
					case "path":
						path = l.GetValue()
					case "code":
						code = l.GetValue()
					}
				}
				counts[fmt.Sprintf("%s:%s", path, code)] = metric.GetCounter().GetValue()
			}
		case "swapkit_tx_duration_seconds":
			for _, metric := range f.GetMetric() {
				observed += metric.GetHistogram().GetSampleCount()
			}
		}
	}

	assert.Equal(t, map[string]float64{
		"escrow/init:0": 3,
		"escrow/init:2": 1,
	}, counts)
	assert.Equal(t, uint64(4), observed)

	_, err = NewMetrics(reg)
	assert.True(t, errors.ErrHuman.Is(err))
}
