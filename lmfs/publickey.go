package lmfs

import "github.com/go-hashsig/hashsig/internal/sponge"

// DerivePublicKey computes the forest's root public key from seed: the
// root of the depth-0 tree materialized under the all-zero address
// digest. Every signer and verifier sharing seed derives the same
// root, since the stream and hash derivations are pure functions of
// seed and the all-zero address.
func DerivePublicKey(seed []byte) (PublicKey, error) {
	var zeroAddr [sponge.N]byte
	res, err := treeAtDepth(seed, zeroAddr, 0, false)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{Root: res.root}, nil
}
