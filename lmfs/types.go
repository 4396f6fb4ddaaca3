package lmfs

import (
	"github.com/go-hashsig/hashsig/ldwm"
	"github.com/go-hashsig/hashsig/internal/sponge"
)

// PublicKey is a forest's root: the hash that a verifier trusts,
// obtained at depth 0 with the all-zero address digest. Sign and Verify
// never recompute it from the underlying seed.
type PublicKey struct {
	Root [sponge.N]byte
}

// TreeProof is one stacked tree's contribution to a Signature: the
// one-time public key at the selected leaf, the LDWM signature over
// that tree's payload, and the H sibling hashes of the authentication
// path from the leaf up to the tree's root.
type TreeProof struct {
	LeafPub [sponge.N]byte
	OTS     ldwm.Signature
	Path    [][]byte // len H, each len sponge.N
}

// Signature is the full forest signature: one TreeProof per stacked
// tree, in signing order. Proofs[0] is the deepest tree, depth T-1,
// addressed by the longest address prefix; Proofs[T-1] is the depth-0
// tree whose root is checked against the PublicKey.
type Signature struct {
	Proofs [T]TreeProof
}
