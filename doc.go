// Package hashsig implements a hash-based digital signature scheme
// built from a Winternitz one-time signature with Merkle checksum
// (package ldwm) stacked into a lazily materialized forest of Merkle
// trees (package lmfs). Keys are derived entirely from a seed: nothing
// about a Signer's state is ever written to disk, nothing but its
// public key root is cached between calls, and two Signers built from
// the same seed behave identically.
package hashsig
