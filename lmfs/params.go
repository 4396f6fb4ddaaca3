// Package lmfs implements the Lazy Merkle Forest Signature engine: T
// stacked Merkle trees of height H over LDWM one-time keypairs, all
// derived on demand from a seed and a message-dependent address
// digest. Neither Sign nor Verify materializes more than one tree's
// worth of private leaves at a time, and nothing beneath the top-level
// root is ever persisted.
package lmfs

import (
	"github.com/go-hashsig/hashsig/internal/sponge"
	"github.com/go-hashsig/hashsig/ldwm"
)

const (
	// H is the tree height: the number of address bits each stacked
	// tree consumes, and the number of sibling hashes in one
	// authentication path.
	H = 8
	// T is the number of stacked trees: enough to consume the full
	// 256-bit address digest at H bits per level.
	T = 256 / H
	// Leaves is the number of LDWM keypairs in one tree: 2^H.
	Leaves = 1 << H
	// DepthBytes is the number of address bytes one level of depth
	// consumes: H/8 for this parameter set's byte-aligned height.
	DepthBytes = H / 8
	// PathLen is the byte length of one tree's authentication path.
	PathLen = H * sponge.N
	// TreeProofLen is the byte length of one stacked tree's
	// contribution to a signature: leaf public key, LDWM signature,
	// and authentication path.
	TreeProofLen = sponge.N + ldwm.SigLen + PathLen
	// SigLen is the total byte length of a Signature's T tree
	// proofs, not counting the one-byte type header the hashsig
	// package prepends.
	SigLen = T * TreeProofLen
)
