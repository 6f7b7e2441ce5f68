/*
Package swaptest provides fakes and helpers for testing extensions: static
and context based authenticators, keys, handlers, decorators and
transactions.
*/
package swaptest

import (
	"context"
	"fmt"

	"github.com/iov-one/swapkit"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions. Use Signer for
// a single signer and Signers for more. Both attributes are always
// considered.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer swapkit.Condition

	// Signers represents an authentication of multiple signers.
	Signers []swapkit.Condition
}

func (a *Auth) GetConditions(swapkit.Context) []swapkit.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx swapkit.Context, addr swapkit.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetConditions(ctx swapkit.Context, permissions ...swapkit.Condition) swapkit.Context {
	return context.WithValue(ctx, a.Key, permissions)
}

func (a *CtxAuth) GetConditions(ctx swapkit.Context) []swapkit.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]swapkit.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []swapkit.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx swapkit.Context, addr swapkit.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
