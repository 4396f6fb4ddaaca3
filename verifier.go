package hashsig

import "github.com/go-hashsig/hashsig/lmfs"

// Verifier checks forest signatures against one fixed public key.
type Verifier struct {
	pub PublicKey
}

// NewVerifier returns a Verifier bound to pub.
func NewVerifier(pub PublicKey) *Verifier {
	return &Verifier{pub: pub}
}

// Verify reports whether sig is a valid signature of msg under v's
// public key. An unrecognized parameter set tag on either side is
// rejected outright, without performing any hashing.
func (v *Verifier) Verify(msg []byte, sig Signature) bool {
	if sig.Params.Tag() != v.pub.Params.Tag() {
		return false
	}
	return lmfs.Verify(v.pub.root, msg, sig.proofs)
}
