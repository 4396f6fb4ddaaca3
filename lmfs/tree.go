package lmfs

import (
	"fmt"

	"github.com/go-hashsig/hashsig/ldwm"
	"github.com/go-hashsig/hashsig/internal/sponge"
)

// treeResult holds everything treeAtDepth can produce. leafPub,
// leafPriv and path are only populated when treeAtDepth is called
// with wantLeaf; a depth-0 public-key derivation needs none of them.
type treeResult struct {
	root     [sponge.N]byte
	leafPub  [sponge.N]byte
	leafPriv *ldwm.PrivateKey
	path     [][]byte
	hasher   *sponge.Hasher
}

// treeAtDepth derives the entire tree at depth from seed and
// addr, folds its Leaves one-time public keys into a root, and, if
// wantLeaf is set, also returns the leaf selected by addr's
// depth-indexed slice: its still-unused private key, its public key,
// and its authentication path to root. The returned hasher is
// personalized for depth and must be reused (not recomputed) for any
// subsequent LDWM operation at this depth, so every hash a caller
// performs at this level shares one domain-separated sponge state.
func treeAtDepth(seed []byte, addr [sponge.N]byte, depth int, wantLeaf bool) (treeResult, error) {
	prefix := addr[:addressPrefixLen(depth)]

	privLeaves := make([]byte, Leaves*ldwm.SigLen)
	sponge.Stream(seed, prefix, privLeaves)

	h := sponge.PrepareHash(prefix)

	leaf := -1
	if wantLeaf {
		leaf = leafIndexAtDepth(addr, depth)
	}

	pubLeaves := make([][sponge.N]byte, Leaves)
	var leafPriv *ldwm.PrivateKey
	for j := 0; j < Leaves; j++ {
		raw := privLeaves[j*ldwm.SigLen : (j+1)*ldwm.SigLen]
		priv, err := ldwm.NewPrivateKey(raw)
		if err != nil {
			return treeResult{}, fmt.Errorf("lmfs: deriving leaf %d at depth %d: %w", j, depth, err)
		}
		pubLeaves[j] = priv.Public(h).Key
		if j == leaf {
			leafPriv = priv
		}
	}

	var path [][]byte
	if wantLeaf {
		path = make([][]byte, 0, H)
	}

	n := Leaves
	for n > 1 {
		for j := 0; j < n; j += 2 {
			if wantLeaf {
				if j == leaf {
					sib := pubLeaves[j+1]
					path = append(path, sib[:])
					leaf = j >> 1
				} else if j+1 == leaf {
					sib := pubLeaves[j]
					path = append(path, sib[:])
					leaf = j >> 1
				}
			}
			var concat [2 * sponge.N]byte
			copy(concat[:sponge.N], pubLeaves[j][:])
			copy(concat[sponge.N:], pubLeaves[j+1][:])
			pubLeaves[j>>1] = h.Hash(concat[:])
		}
		n >>= 1
	}

	res := treeResult{root: pubLeaves[0], hasher: h}
	if wantLeaf {
		// The in-place fold above may have overwritten the leaf's own
		// slot in pubLeaves by the time the loop ends, so recompute it
		// directly from the still-unused private key rather than
		// tracking a second buffer through the fold.
		res.leafPub = leafPriv.Public(h).Key
		res.leafPriv = leafPriv
		res.path = path
	}
	return res, nil
}
