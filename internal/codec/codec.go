// Package codec contains the little-endian load/store helpers and
// address-slicing logic shared by the ldwm and lmfs packages.
package codec

import "encoding/binary"

// PutUint64LE writes v into buf[:8] in little-endian order.
func PutUint64LE(buf []byte, v uint64) {
	binary.LittleEndian.PutUint64(buf, v)
}

// PutUint16LE writes v into buf[:2] in little-endian order.
func PutUint16LE(buf []byte, v uint16) {
	binary.LittleEndian.PutUint16(buf, v)
}

// Uint16LE reads a little-endian uint16 from buf[:2].
func Uint16LE(buf []byte) uint16 {
	return binary.LittleEndian.Uint16(buf)
}

// DepthSlice8 returns the one-byte leaf selector for tree depth i out
// of an address digest with 8-bit (h=8) slices.
func DepthSlice8(addr []byte, depth int) uint32 {
	return uint32(addr[depth])
}

// DepthSlice16 returns the two-byte little-endian leaf selector for
// tree depth i out of an address digest with 16-bit (h=16) slices.
// Unused by the shipped h=8 parameter set, but kept so the alternate
// build's addressing has a tested home (see SPEC_FULL.md §9).
func DepthSlice16(addr []byte, depth int) uint32 {
	return uint32(binary.LittleEndian.Uint16(addr[depth*2 : depth*2+2]))
}
