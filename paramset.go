package hashsig

import "fmt"

// ParameterSet identifies one fixed combination of Winternitz width,
// tree height, and digest size. Only one set ships today, but every
// wire format and API carries its type tag explicitly so a future set
// can be added without changing any existing encoding.
type ParameterSet struct {
	tag byte
}

// Default is the only parameter set this module implements: N=M=32,
// w=4, P=67, tree height 8, forest depth 32.
var Default = ParameterSet{tag: 0x00}

func parameterSetFromTag(tag byte) (ParameterSet, bool) {
	switch tag {
	case Default.tag:
		return Default, true
	default:
		return ParameterSet{}, false
	}
}

// Tag returns the one-byte wire identifier for ps.
func (ps ParameterSet) Tag() byte {
	return ps.tag
}

// String renders a human-readable description of ps, for logs and
// error messages. It is not part of the wire format.
func (ps ParameterSet) String() string {
	switch ps.tag {
	case Default.tag:
		return "hashsig public key (Keccak T32 B8 M32 N32 W4)"
	default:
		return fmt.Sprintf("hashsig unknown parameter set (tag 0x%02x)", ps.tag)
	}
}
