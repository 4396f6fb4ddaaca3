// Package sponge implements the three personalized uses of the
// fixed-capacity sponge hash primitive H: depth-personalized hashing,
// public-key/message commitment (sighash), and an expandable-output
// stream used to derive private leaves (stream). The permutation
// itself — Keccak-f[1600], driven through golang.org/x/crypto/sha3 as
// a SHAKE-family extendable-output function — is an external
// collaborator; this package only owns the personalization framing.
package sponge

import (
	"golang.org/x/crypto/sha3"

	"github.com/go-hashsig/hashsig/internal/codec"
)

// N is the digest size, in bytes, of every fixed-length output this
// package produces.
const N = 32

const (
	sigPubSeparator = "HASHSIGS"
	keySeparator    = "HASHSIGK"
	nonceSeparator  = "HASHSIGN"
)

// newXOF returns a fresh sponge instance. Kept as a single indirection
// point so the alternate Skein-1024 instantiation spec.md mentions
// (but does not wire into this core) has an obvious place to slot in.
func newXOF() sha3.ShakeHash {
	return sha3.NewShake256()
}

// Hasher is a sponge state that has already absorbed a personalization
// prefix. Hash may be called any number of times on it; each call
// clones the personalized state before absorbing the message, so the
// prefix is never re-hashed and never mutated.
type Hasher struct {
	state sha3.ShakeHash
}

// PrepareHash initializes a sponge personalized by nonce: it commits
// len(nonce) as a single byte, then nonce itself. A nil or empty nonce
// personalizes with just the one zero length byte, which is distinct
// from any non-empty nonce's framing.
func PrepareHash(nonce []byte) *Hasher {
	h := &Hasher{state: newXOF()}
	h.state.Write([]byte{byte(len(nonce))})
	if len(nonce) > 0 {
		h.state.Write(nonce)
	}
	return h
}

// Hash appends msg to the personalized prefix and squeezes N bytes.
func (h *Hasher) Hash(msg []byte) [N]byte {
	var out [N]byte
	clone := h.state.Clone()
	clone.Write(msg)
	clone.Read(out[:])
	return out
}

// SigHash commits the fixed domain separator HASHSIGS, the length of
// pub, pub itself, the separator again, then msg, and squeezes N
// bytes. This is the "address digest" that selects a leaf at every
// depth of the forest.
func SigHash(pub, msg []byte) [N]byte {
	state := newXOF()
	var lenBuf [8]byte

	state.Write([]byte(sigPubSeparator))
	codec.PutUint64LE(lenBuf[:], uint64(len(pub)))
	state.Write(lenBuf[:])
	state.Write(pub)
	state.Write([]byte(sigPubSeparator))

	state.Write(msg)

	var out [N]byte
	state.Read(out[:])
	return out
}

// Stream commits HASHSIGK, the length of key, key, HASHSIGK again,
// then HASHSIGN, the length of nonce, nonce, HASHSIGN again, and
// squeezes exactly len(out) bytes into out. Because the address
// digest is used as nonce and the tree depth is encoded in its
// length, every (tree, address-prefix) pair yields an independent
// stream.
func Stream(key, nonce []byte, out []byte) {
	state := newXOF()
	var lenBuf [8]byte

	state.Write([]byte(keySeparator))
	codec.PutUint64LE(lenBuf[:], uint64(len(key)))
	state.Write(lenBuf[:])
	state.Write(key)
	state.Write([]byte(keySeparator))

	state.Write([]byte(nonceSeparator))
	codec.PutUint64LE(lenBuf[:], uint64(len(nonce)))
	state.Write(lenBuf[:])
	state.Write(nonce)
	state.Write([]byte(nonceSeparator))

	state.Read(out)
}
