package lmfs

import (
	"github.com/go-hashsig/hashsig/internal/codec"
	"github.com/go-hashsig/hashsig/internal/sponge"
)

// addressPrefixLen returns how many leading bytes of the address
// digest a tree at depth has consumed by the time depth is reached:
// depth trees of DepthBytes bytes each. It is used both to derive a
// tree's private leaves (via Stream) and to personalize its hasher
// (via PrepareHash), so every depth gets a distinct, increasing-length
// nonce and no two depths ever share a hash state.
func addressPrefixLen(depth int) int {
	return depth * DepthBytes
}

// leafIndexAtDepth returns the leaf selected within the tree at depth:
// the DepthBytes-byte window of addr starting right where the prefix
// ends, read little-endian. For this package's H=8 parameter set that
// window is the single byte addr[depth].
func leafIndexAtDepth(addr [sponge.N]byte, depth int) int {
	return int(codec.DepthSlice8(addr[:], depth))
}
