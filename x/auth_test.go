package x

import (
	"context"
	"testing"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/swaptest"
	"github.com/iov-one/swapkit/swaptest/assert"
)

func TestAuth(t *testing.T) {
	a := swaptest.NewCondition()
	b := swaptest.NewCondition()
	c := swaptest.NewCondition()

	ctx1 := &swaptest.CtxAuth{Key: "initializer"}
	ctx2 := &swaptest.CtxAuth{Key: "taker"}

	cases := map[string]struct {
		ctx          swapkit.Context
		auth         Authenticator
		mainSigner   swapkit.Condition
		wantInCtx    swapkit.Condition
		wantNotInCtx swapkit.Condition
		wantAll      []swapkit.Condition
	}{
		"empty context": {
			ctx:          context.Background(),
			auth:         &swaptest.Auth{},
			wantNotInCtx: b,
		},
		"signer a": {
			ctx:          context.Background(),
			auth:         &swaptest.Auth{Signer: a},
			mainSigner:   a,
			wantInCtx:    a,
			wantNotInCtx: b,
			wantAll:      []swapkit.Condition{a},
		},
		"chained signers keep order": {
			ctx: context.Background(),
			auth: ChainAuth(
				&swaptest.Auth{Signer: b},
				&swaptest.Auth{Signer: a}),
			mainSigner:   b,
			wantInCtx:    a,
			wantNotInCtx: c,
			wantAll:      []swapkit.Condition{b, a},
		},
		"ctxAuth checks what is set by same key": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx1,
			mainSigner:   a,
			wantInCtx:    b,
			wantNotInCtx: c,
			wantAll:      []swapkit.Condition{a, b},
		},
		"ctxAuth with different key sees nothing": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx2,
			wantNotInCtx: a,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.mainSigner, MainSigner(tc.ctx, tc.auth))
			if tc.wantInCtx != nil && !tc.auth.HasAddress(tc.ctx, tc.wantInCtx.Address()) {
				t.Fatal("condition address that was expected in context not found")
			}
			if tc.wantNotInCtx != nil && tc.auth.HasAddress(tc.ctx, tc.wantNotInCtx.Address()) {
				t.Fatal("condition address that was expected not to be in context found")
			}

			all := tc.auth.GetConditions(tc.ctx)
			assert.Equal(t, tc.wantAll, all)
			for _, c := range all {
				if !tc.auth.HasAddress(tc.ctx, c.Address()) {
					t.Fatalf("revealed condition %s has no address match", c)
				}
			}
		})
	}
}
