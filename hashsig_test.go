package hashsig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-hashsig/hashsig"
)

func seedBytes(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestSignVerifyRoundTrip(t *testing.T) {
	seed := seedBytes(0x01, 32)
	signer, err := hashsig.NewSigner(seed)
	require.NoError(t, err)

	sig, err := signer.Sign([]byte("a message"))
	require.NoError(t, err)

	verifier := hashsig.NewVerifier(signer.PublicKey())
	assert.True(t, verifier.Verify([]byte("a message"), sig))
}

func TestSignIsDeterministic(t *testing.T) {
	seed := seedBytes(0x02, 32)
	signer, err := hashsig.NewSigner(seed)
	require.NoError(t, err)

	sig1, err := signer.Sign([]byte("repeat"))
	require.NoError(t, err)
	sig2, err := signer.Sign([]byte("repeat"))
	require.NoError(t, err)

	bytes1, err := sig1.MarshalBinary()
	require.NoError(t, err)
	bytes2, err := sig2.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, bytes1, bytes2)
}

func TestPublicKeyIsPureFunctionOfSeed(t *testing.T) {
	seed := seedBytes(0x03, 32)

	a, err := hashsig.NewSigner(seed)
	require.NoError(t, err)
	b, err := hashsig.NewSigner(seed)
	require.NoError(t, err)

	pubA, err := a.PublicKey().MarshalBinary()
	require.NoError(t, err)
	pubB, err := b.PublicKey().MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, pubA, pubB)
}

func TestNewSignerRejectsShortSeed(t *testing.T) {
	_, err := hashsig.NewSigner(seedBytes(0xaa, 31))
	assert.Error(t, err)
}

func TestNewSignerFromPublicKeyRejectsMismatch(t *testing.T) {
	signerA, err := hashsig.NewSigner(seedBytes(0x10, 32))
	require.NoError(t, err)
	_, err = hashsig.NewSignerFromPublicKey(seedBytes(0x11, 32), signerA.PublicKey())
	assert.Error(t, err)
}

func TestNewSignerFromPublicKeyAcceptsMatch(t *testing.T) {
	seed := seedBytes(0x12, 32)
	signerA, err := hashsig.NewSigner(seed)
	require.NoError(t, err)
	signerB, err := hashsig.NewSignerFromPublicKey(seed, signerA.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, signerA.PublicKey(), signerB.PublicKey())
}

func TestPublicKeyCodecRoundTrip(t *testing.T) {
	signer, err := hashsig.NewSigner(seedBytes(0x20, 32))
	require.NoError(t, err)

	encoded, err := signer.PublicKey().MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, encoded, 33)

	decoded, err := hashsig.UnmarshalBinaryPublicKey(encoded)
	require.NoError(t, err)
	reencoded, err := decoded.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)
}

func TestSignatureCodecRoundTrip(t *testing.T) {
	signer, err := hashsig.NewSigner(seedBytes(0x21, 32))
	require.NoError(t, err)
	sig, err := signer.Sign([]byte("payload"))
	require.NoError(t, err)

	encoded, err := sig.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, encoded, 77825)

	decoded, err := hashsig.UnmarshalBinarySignature(encoded)
	require.NoError(t, err)
	reencoded, err := decoded.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)

	verifier := hashsig.NewVerifier(signer.PublicKey())
	assert.True(t, verifier.Verify([]byte("payload"), decoded))
}

func TestZeroSeedEmptyMessage(t *testing.T) {
	signer, err := hashsig.NewSigner(seedBytes(0x00, 32))
	require.NoError(t, err)

	sig, err := signer.Sign([]byte{})
	require.NoError(t, err)

	pubBytes, err := signer.PublicKey().MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, pubBytes, 33)

	sigBytes, err := sig.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, sigBytes, 77825)

	verifier := hashsig.NewVerifier(signer.PublicKey())
	assert.True(t, verifier.Verify([]byte{}, sig))
}

func TestZeroSeedDifferentMessagesProduceDifferentSignatures(t *testing.T) {
	signer, err := hashsig.NewSigner(seedBytes(0x00, 32))
	require.NoError(t, err)

	sigEmpty, err := signer.Sign([]byte{})
	require.NoError(t, err)
	sigFF, err := signer.Sign([]byte{0xff})
	require.NoError(t, err)

	emptyBytes, err := sigEmpty.MarshalBinary()
	require.NoError(t, err)
	ffBytes, err := sigFF.MarshalBinary()
	require.NoError(t, err)
	assert.NotEqual(t, emptyBytes, ffBytes)
}

func TestVerifyRejectsSingleBitFlipInMessage(t *testing.T) {
	signer, err := hashsig.NewSigner(seedBytes(0x30, 32))
	require.NoError(t, err)
	msg := []byte("flip me")
	sig, err := signer.Sign(msg)
	require.NoError(t, err)

	flipped := append([]byte(nil), msg...)
	flipped[0] ^= 0x01

	verifier := hashsig.NewVerifier(signer.PublicKey())
	assert.False(t, verifier.Verify(flipped, sig))
}

func TestVerifyRejectsSingleBitFlipInPublicKey(t *testing.T) {
	signer, err := hashsig.NewSigner(seedBytes(0x31, 32))
	require.NoError(t, err)
	msg := []byte("message")
	sig, err := signer.Sign(msg)
	require.NoError(t, err)

	pubBytes, err := signer.PublicKey().MarshalBinary()
	require.NoError(t, err)
	pubBytes[len(pubBytes)-1] ^= 0x01
	tamperedPub, err := hashsig.UnmarshalBinaryPublicKey(pubBytes)
	require.NoError(t, err)

	verifier := hashsig.NewVerifier(tamperedPub)
	assert.False(t, verifier.Verify(msg, sig))
}

func TestVerifyRejectsSingleBitFlipInSignature(t *testing.T) {
	signer, err := hashsig.NewSigner(seedBytes(0x32, 32))
	require.NoError(t, err)
	msg := []byte("message")
	sig, err := signer.Sign(msg)
	require.NoError(t, err)

	sigBytes, err := sig.MarshalBinary()
	require.NoError(t, err)
	sigBytes[len(sigBytes)-1] ^= 0x01
	tamperedSig, err := hashsig.UnmarshalBinarySignature(sigBytes)
	require.NoError(t, err)

	verifier := hashsig.NewVerifier(signer.PublicKey())
	assert.False(t, verifier.Verify(msg, tamperedSig))
}

func TestVerifyRejectsTruncatedMessage(t *testing.T) {
	signer, err := hashsig.NewSigner(seedBytes(0x33, 32))
	require.NoError(t, err)
	msg := []byte("a longer message body")
	sig, err := signer.Sign(msg)
	require.NoError(t, err)

	verifier := hashsig.NewVerifier(signer.PublicKey())
	assert.False(t, verifier.Verify(msg[:len(msg)-1], sig))
}

func TestUnmarshalBinarySignatureRejectsUnrecognizedHeaderByte(t *testing.T) {
	signer, err := hashsig.NewSigner(seedBytes(0x34, 32))
	require.NoError(t, err)
	msg := []byte("message")
	sig, err := signer.Sign(msg)
	require.NoError(t, err)

	sigBytes, err := sig.MarshalBinary()
	require.NoError(t, err)
	sigBytes[0] = 0xff
	_, err = hashsig.UnmarshalBinarySignature(sigBytes)
	assert.Error(t, err)
}

func TestUnmarshalBinarySignatureRejectsTruncation(t *testing.T) {
	signer, err := hashsig.NewSigner(seedBytes(0x35, 32))
	require.NoError(t, err)
	sig, err := signer.Sign([]byte("message"))
	require.NoError(t, err)

	sigBytes, err := sig.MarshalBinary()
	require.NoError(t, err)
	_, err = hashsig.UnmarshalBinarySignature(sigBytes[:len(sigBytes)-1])
	assert.Error(t, err)
}

func TestUnmarshalBinaryPublicKeyRejectsWrongLength(t *testing.T) {
	_, err := hashsig.UnmarshalBinaryPublicKey(make([]byte, 32))
	assert.Error(t, err)
	_, err = hashsig.UnmarshalBinaryPublicKey(make([]byte, 34))
	assert.Error(t, err)
}
