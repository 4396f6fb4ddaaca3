package lmfs

import (
	"fmt"

	"github.com/go-hashsig/hashsig/internal/sponge"
)

// Sign produces a forest signature of msg under pub, deriving every
// one-time keypair it needs fresh from seed. It never reads or writes
// any state beyond its own stack: nothing durable records which
// one-time keys have been used, so calling Sign twice with the same
// seed and the same msg derives and consumes the same leaves both
// times and yields equal signatures. Signing two different messages
// that happen to hash to the same address digest at some depth would
// reuse a leaf's chains and compromise that leaf's LDWM security; this
// mirrors the seed-derived, stateless design's accepted trade-off
// rather than a defect to work around here.
func Sign(seed []byte, pub PublicKey, msg []byte) (Signature, error) {
	addr := sponge.SigHash(pub.Root[:], msg)

	var sig Signature
	payload := addr
	slot := 0
	for depth := T - 1; depth >= 0; depth-- {
		tr, err := treeAtDepth(seed, addr, depth, true)
		if err != nil {
			return Signature{}, fmt.Errorf("lmfs: materializing tree at depth %d: %w", depth, err)
		}
		otsSig, err := tr.leafPriv.Sign(tr.hasher, payload[:], true)
		if err != nil {
			return Signature{}, fmt.Errorf("lmfs: signing at depth %d: %w", depth, err)
		}
		sig.Proofs[slot] = TreeProof{
			LeafPub: tr.leafPub,
			OTS:     otsSig,
			Path:    tr.path,
		}
		payload = tr.root
		slot++
	}
	return sig, nil
}
