package mlkem

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRoundTrip512 is spec.md §8's general correctness property run at its
// full weight: "10^4 random iterations per parameter set must all succeed."
// ML-KEM-512 carries the full 10^4 here since it's the cheapest parameter
// set; ML-KEM-768 and ML-KEM-1024 below carry the 1000-iteration weight
// spec.md §8 scenario 3 names explicitly.
func TestRoundTrip512(t *testing.T) {
	key, err := GenerateKey512(rand.Reader)
	require.NoError(t, err)

	pk, err := NewPublicKey512(key.PublicKey().Bytes())
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		shared, ct, err := pk.Encapsulate(rand.Reader)
		require.NoError(t, err)
		require.Len(t, ct, CiphertextSize512)
		require.Len(t, shared, SharedKeySize)

		got, err := key.Decapsulate(ct)
		require.NoError(t, err)
		require.True(t, bytes.Equal(shared, got), "iteration %d", i)
	}
}

// TestRoundTrip768 is spec.md §8 scenario 3 verbatim: "ML-KEM-768 random
// round-trip: 1000 iterations with fresh randomness, all must satisfy
// Decaps(dk, Encaps(ek).c) = Encaps(ek).K."
func TestRoundTrip768(t *testing.T) {
	key, err := GenerateKey768(rand.Reader)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		shared, ct, err := key.PublicKey().Encapsulate(rand.Reader)
		require.NoError(t, err)

		got, err := key.Decapsulate(ct)
		require.NoError(t, err)
		require.True(t, bytes.Equal(shared, got), "iteration %d", i)
	}
}

func TestRoundTrip1024(t *testing.T) {
	key, err := GenerateKey1024(rand.Reader)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		shared, ct, err := key.PublicKey().Encapsulate(rand.Reader)
		require.NoError(t, err)

		got, err := key.Decapsulate(ct)
		require.NoError(t, err)
		require.True(t, bytes.Equal(shared, got), "iteration %d", i)
	}
}

func TestDeterministicKeyGenMatches(t *testing.T) {
	d := bytes.Repeat([]byte{0x42}, SeedSize)
	z := bytes.Repeat([]byte{0x24}, SeedSize)

	k1, err := NewKey768(d, z)
	require.NoError(t, err)
	k2, err := NewKey768(d, z)
	require.NoError(t, err)

	require.Equal(t, k1.PublicKey().Bytes(), k2.PublicKey().Bytes())
	require.Equal(t, k1.Bytes(), k2.Bytes())
}

func TestNewKeyRejectsWrongSeedLength(t *testing.T) {
	_, err := NewKey768(make([]byte, 31), make([]byte, 32))
	require.ErrorIs(t, err, ErrInvalidSeed)
}

func TestNewPublicKeyRejectsWrongLength(t *testing.T) {
	_, err := NewPublicKey768(make([]byte, EncapsulationKeySize768-1))
	require.ErrorIs(t, err, ErrMalformedEncapsulationKey)
}

// TestNewPublicKeyRejectsLimbTooLarge covers spec.md §8's "Encaps with ek
// whose 12-bit limb >= q -> error": ek has the right overall length, but
// its first packed coefficient is forced to 0xFFF (4095), which is >= q
// (3329) and so isn't a canonical field element.
func TestNewPublicKeyRejectsLimbTooLarge(t *testing.T) {
	ek := make([]byte, EncapsulationKeySize768)
	ek[0] = 0xFF
	ek[1] = 0x0F // low nibble set: first 12-bit limb, bits 0..11, reads as 0xFFF

	_, err := NewPublicKey768(ek)
	require.ErrorIs(t, err, ErrMalformedEncapsulationKey)

	err = checkEncapsInput(params768, ek)
	require.ErrorIs(t, err, ErrMalformedEncapsulationKey)
}

func TestNewPrivateKeyRejectsWrongLength(t *testing.T) {
	_, err := NewPrivateKey768(make([]byte, DecapsulationKeySize768-1))
	require.ErrorIs(t, err, ErrMalformedDecapsulationKey)
}

func TestNewPrivateKeyRejectsMismatchedHash(t *testing.T) {
	key, err := GenerateKey768(rand.Reader)
	require.NoError(t, err)

	dk := key.Bytes()
	dk[768*params768.k]++ // corrupt a byte inside the embedded ek, breaking the H(ek) check

	_, err = NewPrivateKey768(dk)
	require.ErrorIs(t, err, ErrMalformedDecapsulationKey)
}

func TestDecapsulateRejectsWrongCiphertextLength(t *testing.T) {
	key, err := GenerateKey768(rand.Reader)
	require.NoError(t, err)

	_, err = key.Decapsulate(make([]byte, CiphertextSize768-1))
	require.ErrorIs(t, err, ErrMalformedCiphertext)
}

// TestTamperedCiphertextImplicitRejection checks that decapsulating a
// corrupted ciphertext does not error, and yields a shared key different
// from the one the sender derived, per the implicit-rejection construction.
func TestTamperedCiphertextImplicitRejection(t *testing.T) {
	key, err := GenerateKey768(rand.Reader)
	require.NoError(t, err)

	shared, ct, err := key.PublicKey().Encapsulate(rand.Reader)
	require.NoError(t, err)

	tampered := append([]byte{}, ct...)
	tampered[0] ^= 0x01

	got, err := key.Decapsulate(tampered)
	require.NoError(t, err)
	require.False(t, bytes.Equal(shared, got))
	require.Len(t, got, SharedKeySize)
}

func TestPublicKeyEqual(t *testing.T) {
	key, err := GenerateKey768(rand.Reader)
	require.NoError(t, err)

	other, err := NewPublicKey768(key.PublicKey().Bytes())
	require.NoError(t, err)

	require.True(t, key.PublicKey().Equal(other))

	key2, err := GenerateKey768(rand.Reader)
	require.NoError(t, err)
	require.False(t, key.PublicKey().Equal(key2.PublicKey()))
}
