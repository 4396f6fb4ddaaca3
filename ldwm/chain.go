package ldwm

import "github.com/go-hashsig/hashsig/internal/sponge"

// chain applies h exactly a times to x in place: F(0, x) = x, and
// F(a, x) = H(F(a-1, x)) for a > 0. x must be an M-byte slice; M
// equals N for this parameter set, so each application's output can
// be copied straight back into x.
func chain(h *sponge.Hasher, a int, x []byte) {
	for i := 0; i < a; i++ {
		out := h.Hash(x)
		copy(x, out[:])
	}
}
