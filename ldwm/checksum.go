package ldwm

import "github.com/go-hashsig/hashsig/internal/codec"

// checksum sums, over every base-2^W digit of v (low nibble first
// within each byte, per the original libhashsig framing — note this
// is the opposite nibble order from a big-endian digit expansion),
// the difference between the maximum digit value E and the digit
// itself, then left-shifts the sum by LS bits, so the lowest digit of
// the two bytes appended after v is always zero. Any attempt to
// increase a message digit forces a decrease somewhere in the
// checksum, which in turn requires inverting H to forge.
func checksum(v [N]byte) uint16 {
	var sum uint16
	for _, b := range v {
		lo := b & E
		hi := (b >> W) & E
		sum += uint16(E) - uint16(lo)
		sum += uint16(E) - uint16(hi)
	}
	return sum << LS
}

// expand splits v, with its two-byte little-endian checksum appended,
// into the P base-2^W digits that select each chain's hash count.
func expand(v [N]byte) [P]uint8 {
	var cksm [2]byte
	codec.PutUint16LE(cksm[:], checksum(v))

	var full [N + 2]byte
	copy(full[:N], v[:])
	copy(full[N:], cksm[:])

	var digits [P]uint8
	i := 0
loop:
	for _, b := range full {
		a := b
		for j := 0; j < 8; j += W {
			if i >= P {
				break loop
			}
			digits[i] = a & E
			a >>= W
			i++
		}
	}
	return digits
}
