package hashsig

import (
	"fmt"

	"github.com/go-hashsig/hashsig/internal/sponge"
	"github.com/go-hashsig/hashsig/lmfs"
)

// PublicKey is a forest root together with the parameter set it was
// derived under. Its wire encoding is the parameter set's one-byte
// tag followed by the N-byte root: N+1 = 33 bytes.
type PublicKey struct {
	Params ParameterSet
	root   lmfs.PublicKey
}

// MarshalBinary encodes pub as its type tag followed by its root.
func (pub PublicKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 1+sponge.N)
	out[0] = pub.Params.Tag()
	copy(out[1:], pub.root.Root[:])
	return out, nil
}

// UnmarshalBinaryPublicKey decodes a public key previously produced by
// PublicKey.MarshalBinary.
func UnmarshalBinaryPublicKey(raw []byte) (PublicKey, error) {
	if len(raw) != 1+sponge.N {
		return PublicKey{}, fmt.Errorf("hashsig: public key must be exactly %d bytes, got %d", 1+sponge.N, len(raw))
	}
	ps, ok := parameterSetFromTag(raw[0])
	if !ok {
		return PublicKey{}, fmt.Errorf("hashsig: unrecognized public key type tag 0x%02x", raw[0])
	}
	var root lmfs.PublicKey
	copy(root.Root[:], raw[1:])
	return PublicKey{Params: ps, root: root}, nil
}
