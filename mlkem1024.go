package mlkem

import (
	"crypto/subtle"
	"io"
)

// ML-KEM-1024 byte sizes (FIPS 203 Table 2, NIST security category 5).
const (
	EncapsulationKeySize1024 = 1568
	DecapsulationKeySize1024 = 3168
	CiphertextSize1024       = 1568
)

// PublicKey1024 is an ML-KEM-1024 encapsulation key.
type PublicKey1024 struct {
	ek []byte
}

// PrivateKey1024 is an ML-KEM-1024 decapsulation key.
type PrivateKey1024 struct {
	dk []byte
}

// Key1024 is an ML-KEM-1024 key pair.
type Key1024 struct {
	PrivateKey1024
	pub *PublicKey1024
}

// GenerateKey1024 generates a fresh ML-KEM-1024 key pair using rnd as the
// source of randomness.
func GenerateKey1024(rnd io.Reader) (*Key1024, error) {
	ek, dk, err := generateKey(params1024, rnd)
	if err != nil {
		return nil, err
	}
	return &Key1024{PrivateKey1024: PrivateKey1024{dk: dk}, pub: &PublicKey1024{ek: ek}}, nil
}

// NewKey1024 deterministically derives a key pair from two 32-byte seeds.
func NewKey1024(d, z []byte) (*Key1024, error) {
	ek, dk, err := generateKeyFromSeeds(params1024, d, z)
	if err != nil {
		return nil, err
	}
	return &Key1024{PrivateKey1024: PrivateKey1024{dk: dk}, pub: &PublicKey1024{ek: ek}}, nil
}

// NewPublicKey1024 parses and validates an encoded encapsulation key.
func NewPublicKey1024(ek []byte) (*PublicKey1024, error) {
	if err := checkEncapsInput(params1024, ek); err != nil {
		return nil, err
	}
	return &PublicKey1024{ek: append([]byte{}, ek...)}, nil
}

// NewPrivateKey1024 parses and validates an encoded decapsulation key.
func NewPrivateKey1024(dk []byte) (*PrivateKey1024, error) {
	if err := checkDecapsInput(params1024, dk); err != nil {
		return nil, err
	}
	return &PrivateKey1024{dk: append([]byte{}, dk...)}, nil
}

// PublicKey returns the encapsulation key for this key pair.
func (key *Key1024) PublicKey() *PublicKey1024 { return key.pub }

// Bytes returns the encoded encapsulation key.
func (pk *PublicKey1024) Bytes() []byte { return append([]byte{}, pk.ek...) }

// Bytes returns the encoded decapsulation key.
func (sk *PrivateKey1024) Bytes() []byte { return append([]byte{}, sk.dk...) }

// Equal reports whether pk and other are the same encapsulation key.
func (pk *PublicKey1024) Equal(other *PublicKey1024) bool {
	return other != nil && subtle.ConstantTimeCompare(pk.ek, other.ek) == 1
}

// Encapsulate generates a fresh shared secret and its ciphertext under pk,
// using rnd as the source of randomness.
func (pk *PublicKey1024) Encapsulate(rnd io.Reader) (sharedKey, ciphertext []byte, err error) {
	return encapsulate(params1024, pk.ek, rnd)
}

// Decapsulate recovers the shared secret carried by ciphertext. ciphertext
// must be exactly CiphertextSize1024 bytes.
func (sk *PrivateKey1024) Decapsulate(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != CiphertextSize1024 {
		return nil, ErrMalformedCiphertext
	}
	return decapsulate(params1024, sk.dk, ciphertext), nil
}

// Decapsulate recovers the shared secret carried by ciphertext using this
// key pair's decapsulation key.
func (key *Key1024) Decapsulate(ciphertext []byte) ([]byte, error) {
	return key.PrivateKey1024.Decapsulate(ciphertext)
}
