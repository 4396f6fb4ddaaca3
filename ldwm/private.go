package ldwm

import (
	"errors"

	"github.com/go-hashsig/hashsig/internal/sponge"
)

// NewPrivateKey views raw as P chains of M bytes. raw is aliased, not
// copied: callers that want their own copy to survive a Sign call
// must clone it first, since Sign overwrites the chains in place.
func NewPrivateKey(raw []byte) (*PrivateKey, error) {
	if len(raw) != SigLen {
		return nil, errors.New("ldwm: private key must be exactly SigLen bytes")
	}
	chains := make([][]byte, P)
	for i := range chains {
		chains[i] = raw[i*M : (i+1)*M]
	}
	return &PrivateKey{chains: chains}, nil
}

// Public derives the public key under h, chaining each private chain
// E times and hashing their concatenation. It does not mutate priv;
// it chains a scratch copy.
func (priv *PrivateKey) Public(h *sponge.Hasher) PublicKey {
	var buf [SigLen]byte
	for i, c := range priv.chains {
		start := i * M
		copy(buf[start:start+M], c)
		chain(h, E, buf[start:start+M])
	}
	return PublicKey{Key: h.Hash(buf[:])}
}

// Sign computes the LDWM signature of msg under h. If preHashed is
// false, msg is first reduced to an N-byte digest via h.Hash; if true,
// msg must already be exactly N bytes (the forest engine always signs
// an already-hashed payload). Sign overwrites priv's chains in place
// with the signature and marks priv as used; signing twice returns an
// error instead of silently producing a second, forgeable signature
// over reused chain state.
func (priv *PrivateKey) Sign(h *sponge.Hasher, msg []byte, preHashed bool) (Signature, error) {
	if priv.used {
		return Signature{}, errors.New("ldwm: private key already used to sign a message")
	}

	var v [N]byte
	if preHashed {
		if len(msg) != N {
			return Signature{}, errors.New("ldwm: pre-hashed message must be exactly N bytes")
		}
		copy(v[:], msg)
	} else {
		v = h.Hash(msg)
	}

	digits := expand(v)
	for i, d := range digits {
		chain(h, int(d), priv.chains[i])
	}

	priv.used = true
	return Signature{Chains: priv.chains}, nil
}
