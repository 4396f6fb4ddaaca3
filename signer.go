package hashsig

import (
	"fmt"

	"github.com/go-hashsig/hashsig/lmfs"
)

// minSeedLen is the shortest seed this module accepts. The underlying
// sponge happily absorbs a seed of any length, but a seed shorter than
// a digest gives an attacker a meaningfully smaller search space to
// brute-force, so constructors reject anything shorter.
const minSeedLen = 32

// Signer derives every one-time keypair it needs directly from seed,
// on every Sign call. It caches nothing across calls except its own
// public key root, and is safe to discard and reconstruct at will: two
// Signers built from the same seed behave identically.
type Signer struct {
	seed []byte
	pub  PublicKey
}

// NewSigner derives a Signer from seed. seed is borrowed, not copied:
// callers that mutate or zero it afterwards will change what future
// Sign calls derive.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) < minSeedLen {
		return nil, fmt.Errorf("hashsig: seed must be at least %d bytes, got %d", minSeedLen, len(seed))
	}
	root, err := lmfs.DerivePublicKey(seed)
	if err != nil {
		return nil, fmt.Errorf("hashsig: deriving public key: %w", err)
	}
	return &Signer{seed: seed, pub: PublicKey{Params: Default, root: root}}, nil
}

// NewSignerFromPublicKey derives a Signer from seed and checks that it
// reproduces pub, the way a caller restoring a signer from a
// previously saved public key would want to catch a mismatched seed
// immediately rather than after issuing signatures nobody can verify.
func NewSignerFromPublicKey(seed []byte, pub PublicKey) (*Signer, error) {
	s, err := NewSigner(seed)
	if err != nil {
		return nil, err
	}
	if s.pub.root.Root != pub.root.Root || s.pub.Params.Tag() != pub.Params.Tag() {
		return nil, fmt.Errorf("hashsig: seed does not reproduce the supplied public key")
	}
	return s, nil
}

// PublicKey returns the Signer's public key root.
func (s *Signer) PublicKey() PublicKey {
	return s.pub
}

// Sign produces a forest signature of msg. Every one-time keypair it
// consumes is derived fresh from the Signer's seed and the message's
// address digest; signing the same message twice derives and consumes
// the same leaves both times, and signing two different messages that
// happen to collide on a leaf at some depth reuses that leaf's chains,
// per the seed-derived, stateless design's accepted trade-off.
func (s *Signer) Sign(msg []byte) (Signature, error) {
	proofs, err := lmfs.Sign(s.seed, s.pub.root, msg)
	if err != nil {
		return Signature{}, fmt.Errorf("hashsig: signing: %w", err)
	}
	return Signature{Params: s.pub.Params, proofs: proofs}, nil
}
