package escrow

import (
	"context"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/x"
)

// AuthoritySeed is the seed the vault authority is derived from.
const AuthoritySeed = "escrow"

// VaultAuthority derives the condition that holds the custody of all
// vaults locked by the given program. There is no key for this condition.
// It is recomputed on every use and never stored.
func VaultAuthority(program swapkit.Address) (swapkit.Condition, error) {
	if err := program.Validate(); err != nil {
		return nil, errors.Wrap(err, "program id")
	}
	seeds := [][]byte{[]byte(AuthoritySeed)}
	cond, bump, err := swapkit.DeriveProgramCondition(seeds, program)
	if err != nil {
		return nil, errors.Wrap(err, "derive vault authority")
	}
	// The bump is the proof that the condition belongs to the program.
	if _, err := swapkit.CreateProgramCondition(seeds, bump, program); err != nil {
		return nil, errors.Wrap(err, "vault authority proof")
	}
	return cond, nil
}

type contextKey int

const (
	contextKeyAuthority contextKey = iota
)

// withAuthority grants the vault authority to the context. Only this
// package can do it and only for the custody calls of a terminal
// operation.
func withAuthority(ctx swapkit.Context, authority swapkit.Condition) swapkit.Context {
	return context.WithValue(ctx, contextKeyAuthority, authority)
}

// Authenticate reveals the vault authority when this extension acts on
// behalf of it. Chain it with the signature authenticator for the token
// extension.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the vault authority if granted to the context.
func (Authenticate) GetConditions(ctx swapkit.Context) []swapkit.Condition {
	val, ok := ctx.Value(contextKeyAuthority).(swapkit.Condition)
	if !ok {
		return nil
	}
	return []swapkit.Condition{val}
}

// HasAddress returns true if the vault authority with given address is
// granted to the context.
func (a Authenticate) HasAddress(ctx swapkit.Context, addr swapkit.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
