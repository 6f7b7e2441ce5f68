package cash

import (
	"context"
	"testing"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/store"
	"github.com/iov-one/swapkit/swaptest"
	"github.com/iov-one/swapkit/swaptest/assert"
)

func TestSendHandler(t *testing.T) {
	alice := swaptest.NewCondition()
	bob := swaptest.NewCondition()

	msg := &SendMsg{
		Metadata:    &swapkit.Metadata{Schema: 1},
		Source:      alice.Address(),
		Destination: bob.Address(),
		Amount:      25,
	}

	cases := map[string]struct {
		signers []swapkit.Condition
		msg     swapkit.Msg
		wantErr *errors.Error
		wantBob uint64
	}{
		"signed by the source": {
			signers: []swapkit.Condition{alice},
			msg:     msg,
			wantBob: 25,
		},
		"signed by the destination": {
			signers: []swapkit.Condition{bob},
			msg:     msg,
			wantErr: errors.ErrUnauthorized,
		},
		"invalid message": {
			signers: []swapkit.Condition{alice},
			msg:     &SendMsg{Metadata: &swapkit.Metadata{Schema: 1}, Source: alice.Address()},
			wantErr: errors.ErrAmount,
		},
		"wrong message type": {
			signers: []swapkit.Condition{alice},
			msg:     &swaptest.Msg{RoutePath: "cash/send"},
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewWalletBucket())
			assert.Nil(t, ctrl.IssueCoins(db, alice.Address(), 100))

			auth := &swaptest.Auth{Signers: tc.signers}
			h := NewSendHandler(auth, ctrl)
			tx := &swaptest.Tx{Msg: tc.msg}

			_, err := h.Check(context.Background(), db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			_, err = h.Deliver(context.Background(), db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			got, err := ctrl.Balance(db, bob.Address())
			assert.Nil(t, err)
			assert.Equal(t, tc.wantBob, got)
		})
	}
}
