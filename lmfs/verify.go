package lmfs

import (
	"crypto/subtle"

	"github.com/go-hashsig/hashsig/ldwm"
	"github.com/go-hashsig/hashsig/internal/sponge"
)

// Verify reports whether sig is a valid forest signature of msg under
// pub. Unlike Sign, it never derives any private material: at each
// depth it checks the LDWM signature against the leaf public key
// carried in sig, then folds that leaf public key up the carried
// authentication path, checking the final depth-0 root against pub.
func Verify(pub PublicKey, msg []byte, sig Signature) bool {
	addr := sponge.SigHash(pub.Root[:], msg)

	payload := addr
	slot := 0
	for depth := T - 1; depth >= 0; depth-- {
		proof := sig.Proofs[slot]
		if len(proof.Path) != H {
			return false
		}

		h := sponge.PrepareHash(addr[:addressPrefixLen(depth)])
		leafPub := ldwm.PublicKey{Key: proof.LeafPub}
		if !ldwm.Verify(h, leafPub, payload[:], proof.OTS, true) {
			return false
		}

		node := proof.LeafPub
		leaf := leafIndexAtDepth(addr, depth)
		for level := 0; level < H; level++ {
			sib := proof.Path[level]
			if len(sib) != sponge.N {
				return false
			}
			var concat [2 * sponge.N]byte
			if leaf%2 == 0 {
				copy(concat[:sponge.N], node[:])
				copy(concat[sponge.N:], sib)
			} else {
				copy(concat[:sponge.N], sib)
				copy(concat[sponge.N:], node[:])
			}
			node = h.Hash(concat[:])
			leaf >>= 1
		}

		payload = node
		slot++
	}

	return subtle.ConstantTimeCompare(payload[:], pub.Root[:]) == 1
}
