package swaptest

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/crypto"
)

// NewKey returns a fresh random ed25519 key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a fresh random key.
func NewCondition() swapkit.Condition {
	return NewKey().PublicKey().Condition()
}

// SequenceID returns a fixed length, human readable identifier useful as an
// escrow or account key in tests.
func SequenceID(prefix string, n uint8) []byte {
	return append([]byte(prefix), n)
}
