package ldwm

import (
	"crypto/subtle"
	"errors"

	"github.com/go-hashsig/hashsig/internal/sponge"
)

// Verify reports whether sig is a valid LDWM signature of msg under
// pub and h. See PrivateKey.Sign for the preHashed contract.
func Verify(h *sponge.Hasher, pub PublicKey, msg []byte, sig Signature, preHashed bool) bool {
	candidate, err := RecoverPublicKey(h, msg, sig, preHashed)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(pub.Key[:], candidate.Key[:]) == 1
}

// RecoverPublicKey computes the public key that would validate sig
// for msg, without comparing it against any expected value. Verify
// compares its result against the expected public key.
func RecoverPublicKey(h *sponge.Hasher, msg []byte, sig Signature, preHashed bool) (PublicKey, error) {
	if len(sig.Chains) != P {
		return PublicKey{}, errors.New("ldwm: signature must have exactly P chains")
	}
	for _, c := range sig.Chains {
		if len(c) != M {
			return PublicKey{}, errors.New("ldwm: signature chain must be exactly M bytes")
		}
	}

	var v [N]byte
	if preHashed {
		if len(msg) != N {
			return PublicKey{}, errors.New("ldwm: pre-hashed message must be exactly N bytes")
		}
		copy(v[:], msg)
	} else {
		v = h.Hash(msg)
	}

	digits := expand(v)

	var buf [SigLen]byte
	for i, d := range digits {
		start := i * M
		copy(buf[start:start+M], sig.Chains[i])
		chain(h, E-int(d), buf[start:start+M])
	}
	return PublicKey{Key: h.Hash(buf[:])}, nil
}
