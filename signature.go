package hashsig

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/go-hashsig/hashsig/internal/sponge"
	"github.com/go-hashsig/hashsig/ldwm"
	"github.com/go-hashsig/hashsig/lmfs"
)

// Signature is a forest signature together with the parameter set it
// was produced under. Its wire encoding is the parameter set's
// one-byte tag followed by lmfs.SigLen bytes: one TreeProof per
// stacked tree, each laid out as leaf public key, then LDWM signature,
// then authentication path.
type Signature struct {
	Params ParameterSet
	proofs lmfs.Signature
}

// MarshalBinary encodes sig in signing order: type tag, then each
// TreeProof's leaf public key, LDWM signature, and authentication
// path, deepest tree first.
func (sig Signature) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 1+lmfs.SigLen)
	out = append(out, sig.Params.Tag())
	for _, proof := range sig.proofs.Proofs {
		out = append(out, proof.LeafPub[:]...)
		out = append(out, proof.OTS.ToBytes()...)
		for _, sibling := range proof.Path {
			out = append(out, sibling...)
		}
	}
	return out, nil
}

// UnmarshalBinarySignature decodes a signature previously produced by
// Signature.MarshalBinary. A wrong total length is reported on its own
// and ends decoding at once; otherwise every violation it finds (bad
// header, bad OTS chain lengths) is collected into a single multi-error
// rather than stopping at the first. Path lengths are fixed by the
// slicing and need no check of their own.
func UnmarshalBinarySignature(raw []byte) (Signature, error) {
	var errs error

	if len(raw) != 1+lmfs.SigLen {
		errs = multierror.Append(errs, fmt.Errorf("hashsig: signature must be exactly %d bytes, got %d", 1+lmfs.SigLen, len(raw)))
		return Signature{}, errs
	}

	ps, ok := parameterSetFromTag(raw[0])
	if !ok {
		errs = multierror.Append(errs, fmt.Errorf("hashsig: unrecognized signature type tag 0x%02x", raw[0]))
	}

	var proofs lmfs.Signature
	body := raw[1:]
	for i := 0; i < lmfs.T; i++ {
		chunk := body[i*lmfs.TreeProofLen : (i+1)*lmfs.TreeProofLen]

		var leafPub [sponge.N]byte
		copy(leafPub[:], chunk[:sponge.N])
		chunk = chunk[sponge.N:]

		otsSig, err := ldwm.SignatureFromBytes(chunk[:ldwm.SigLen])
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("hashsig: tree proof %d: %w", i, err))
			continue
		}
		chunk = chunk[ldwm.SigLen:]

		path := make([][]byte, lmfs.H)
		for level := 0; level < lmfs.H; level++ {
			path[level] = append([]byte(nil), chunk[level*sponge.N:(level+1)*sponge.N]...)
		}

		proofs.Proofs[i] = lmfs.TreeProof{LeafPub: leafPub, OTS: otsSig, Path: path}
	}

	if errs != nil {
		return Signature{}, errs
	}
	return Signature{Params: ps, proofs: proofs}, nil
}
