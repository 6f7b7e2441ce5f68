package crypto

import (
	"bytes"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swapkit/swaptest/assert"
)

func TestEd25519Signing(t *testing.T) {
	private := GenPrivKeyEd25519()
	public := private.PublicKey()
	assert.Nil(t, public.Validate())

	msg := []byte("init escrow")
	msg2 := []byte("cancel escrow")

	sig, err := private.Sign(msg)
	assert.Nil(t, err)
	sig2, err := private.Sign(msg2)
	assert.Nil(t, err)

	bz, err := proto.Marshal(sig)
	assert.Nil(t, err)
	bz2, err := proto.Marshal(sig2)
	assert.Nil(t, err)
	if bytes.Equal(bz, bz2) {
		t.Fatal("marshaling different signatures produce the same binary representation")
	}

	var read Signature
	assert.Nil(t, proto.Unmarshal(bz, &read))
	if !public.Verify(msg, &read) {
		t.Fatal("cannot verify a deserialized signature")
	}

	if !public.Verify(msg2, sig2) {
		t.Fatal("cannot verify a message signed with this public key")
	}
	if public.Verify(msg, sig2) {
		t.Fatal("verified message signature of the wrong message")
	}
	if public.Verify(msg, &Signature{}) {
		t.Fatal("verified an empty signature of a message")
	}
	if public.Verify(msg, nil) {
		t.Fatal("verified a nil signature of a message")
	}
	if (&PublicKey{}).Verify(msg, sig) {
		t.Fatal("empty public key verified a signature")
	}

	_, err = (&PrivateKey{}).Sign(msg)
	if err == nil {
		t.Fatal("empty private key must not sign")
	}
}

func TestEd25519Condition(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()
	pub2 := GenPrivKeyEd25519().PublicKey()

	assert.Nil(t, pub.Condition().Validate())
	if bytes.Equal(pub.Condition(), pub2.Condition()) {
		t.Fatal("different public keys produce the same condition")
	}
	ext, typ, data, err := pub.Condition().Parse()
	assert.Nil(t, err)
	assert.Equal(t, ExtensionName, ext)
	assert.Equal(t, "ed25519", typ)
	assert.EqualBytes(t, pub.Ed25519, data)
	assert.Equal(t, pub.Condition().Address(), pub.Address())

	bz, err := proto.Marshal(pub)
	assert.Nil(t, err)
	var read PublicKey
	assert.Nil(t, proto.Unmarshal(bz, &read))
	assert.Equal(t, pub.Condition(), read.Condition())
}

func TestPrivKeyEd25519FromSeed(t *testing.T) {
	cases := map[string]struct {
		seed     []byte
		expected []byte
	}{
		"zero seed": {
			seed:     make([]byte, 32),
			expected: []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 59, 106, 39, 188, 206, 182, 164, 45, 98, 163, 168, 208, 42, 111, 13, 115, 101, 50, 21, 119, 29, 226, 67, 166, 58, 192, 72, 161, 139, 89, 218, 41},
		},
		"no seed": {
			seed:     nil,
			expected: nil,
		},
		"seed too short": {
			seed:     []byte{0},
			expected: nil,
		},
		"seed too long": {
			seed:     make([]byte, 33),
			expected: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if tc.expected == nil {
				assert.Panics(t, func() { PrivKeyEd25519FromSeed(tc.seed) })
				return
			}
			key := PrivKeyEd25519FromSeed(tc.seed)
			assert.EqualBytes(t, tc.expected, key.Ed25519)
			// deterministic
			assert.EqualBytes(t, key.PublicKey().Ed25519, PrivKeyEd25519FromSeed(tc.seed).PublicKey().Ed25519)
		})
	}
}
