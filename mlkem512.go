package mlkem

import (
	"crypto/subtle"
	"io"
)

// ML-KEM-512 byte sizes (FIPS 203 Table 2, NIST security category 1).
const (
	EncapsulationKeySize512 = 800
	DecapsulationKeySize512 = 1632
	CiphertextSize512       = 768
)

// PublicKey512 is an ML-KEM-512 encapsulation key.
type PublicKey512 struct {
	ek []byte
}

// PrivateKey512 is an ML-KEM-512 decapsulation key.
type PrivateKey512 struct {
	dk []byte
}

// Key512 is an ML-KEM-512 key pair.
type Key512 struct {
	PrivateKey512
	pub *PublicKey512
}

// GenerateKey512 generates a fresh ML-KEM-512 key pair using rnd as the
// source of randomness.
func GenerateKey512(rnd io.Reader) (*Key512, error) {
	ek, dk, err := generateKey(params512, rnd)
	if err != nil {
		return nil, err
	}
	return &Key512{PrivateKey512: PrivateKey512{dk: dk}, pub: &PublicKey512{ek: ek}}, nil
}

// NewKey512 deterministically derives a key pair from two 32-byte seeds.
func NewKey512(d, z []byte) (*Key512, error) {
	ek, dk, err := generateKeyFromSeeds(params512, d, z)
	if err != nil {
		return nil, err
	}
	return &Key512{PrivateKey512: PrivateKey512{dk: dk}, pub: &PublicKey512{ek: ek}}, nil
}

// NewPublicKey512 parses and validates an encoded encapsulation key.
func NewPublicKey512(ek []byte) (*PublicKey512, error) {
	if err := checkEncapsInput(params512, ek); err != nil {
		return nil, err
	}
	return &PublicKey512{ek: append([]byte{}, ek...)}, nil
}

// NewPrivateKey512 parses and validates an encoded decapsulation key.
func NewPrivateKey512(dk []byte) (*PrivateKey512, error) {
	if err := checkDecapsInput(params512, dk); err != nil {
		return nil, err
	}
	return &PrivateKey512{dk: append([]byte{}, dk...)}, nil
}

// PublicKey returns the encapsulation key for this key pair.
func (key *Key512) PublicKey() *PublicKey512 { return key.pub }

// Bytes returns the encoded encapsulation key.
func (pk *PublicKey512) Bytes() []byte { return append([]byte{}, pk.ek...) }

// Bytes returns the encoded decapsulation key.
func (sk *PrivateKey512) Bytes() []byte { return append([]byte{}, sk.dk...) }

// Equal reports whether pk and other are the same encapsulation key.
func (pk *PublicKey512) Equal(other *PublicKey512) bool {
	return other != nil && subtle.ConstantTimeCompare(pk.ek, other.ek) == 1
}

// Encapsulate generates a fresh shared secret and its ciphertext under pk,
// using rnd as the source of randomness.
func (pk *PublicKey512) Encapsulate(rnd io.Reader) (sharedKey, ciphertext []byte, err error) {
	return encapsulate(params512, pk.ek, rnd)
}

// Decapsulate recovers the shared secret carried by ciphertext. ciphertext
// must be exactly CiphertextSize512 bytes.
func (sk *PrivateKey512) Decapsulate(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != CiphertextSize512 {
		return nil, ErrMalformedCiphertext
	}
	return decapsulate(params512, sk.dk, ciphertext), nil
}

// Decapsulate recovers the shared secret carried by ciphertext using this
// key pair's decapsulation key.
func (key *Key512) Decapsulate(ciphertext []byte) ([]byte, error) {
	return key.PrivateKey512.Decapsulate(ciphertext)
}
