package swapkit

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/iov-one/swapkit/errors"
)

const (
	// MaxSeeds is the maximum number of seeds accepted by the program
	// condition derivation.
	MaxSeeds = 16
	// MaxSeedLength is the maximum length in bytes of a single seed.
	MaxSeedLength = 32

	programDerivedMarker = "ProgramDerivedAddress"
)

// DeriveProgramCondition returns a condition that is controlled by the
// program with the given address and no private key. The bump is the
// discriminant that was appended to the seeds to push the digest off the
// ed25519 curve. Use CreateProgramCondition with the bump to reproduce the
// same condition.
//
// The derivation is pure. The same seeds and program always return the same
// condition and bump.
func DeriveProgramCondition(seeds [][]byte, program Address) (Condition, uint8, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, 0, err
	}
	for bump := 255; bump >= 0; bump-- {
		digest := programDigest(seeds, uint8(bump), program)
		if !onCurve(digest) {
			return NewCondition("pda", "derived", digest), uint8(bump), nil
		}
	}
	return nil, 0, errors.Wrap(errors.ErrState, "no viable bump for program seeds")
}

// CreateProgramCondition computes the program condition for a known bump. It
// fails if the resulting digest is a valid public key.
func CreateProgramCondition(seeds [][]byte, bump uint8, program Address) (Condition, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, err
	}
	digest := programDigest(seeds, bump, program)
	if onCurve(digest) {
		return nil, errors.Wrapf(errors.ErrInput, "bump %d yields a key on the curve", bump)
	}
	return NewCondition("pda", "derived", digest), nil
}

func validateSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return errors.Wrapf(errors.ErrInput, "too many seeds: %d", len(seeds))
	}
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return errors.Wrapf(errors.ErrInput, "seed %d too long: %d", i, len(s))
		}
	}
	return nil
}

func programDigest(seeds [][]byte, bump uint8, program Address) []byte {
	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(program)
	h.Write([]byte(programDerivedMarker))
	return h.Sum(nil)
}

// onCurve returns true if the digest decodes as an ed25519 point, meaning a
// private key for it may exist.
func onCurve(digest []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(digest)
	return err == nil
}
