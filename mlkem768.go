package mlkem

import (
	"crypto/subtle"
	"io"
)

// ML-KEM-768 byte sizes (FIPS 203 Table 2, NIST security category 3).
const (
	EncapsulationKeySize768 = 1184
	DecapsulationKeySize768 = 2400
	CiphertextSize768       = 1088
)

// PublicKey768 is an ML-KEM-768 encapsulation key.
type PublicKey768 struct {
	ek []byte
}

// PrivateKey768 is an ML-KEM-768 decapsulation key.
type PrivateKey768 struct {
	dk []byte
}

// Key768 is an ML-KEM-768 key pair.
type Key768 struct {
	PrivateKey768
	pub *PublicKey768
}

// GenerateKey768 generates a fresh ML-KEM-768 key pair using rnd as the
// source of randomness.
func GenerateKey768(rnd io.Reader) (*Key768, error) {
	ek, dk, err := generateKey(params768, rnd)
	if err != nil {
		return nil, err
	}
	return &Key768{PrivateKey768: PrivateKey768{dk: dk}, pub: &PublicKey768{ek: ek}}, nil
}

// NewKey768 deterministically derives a key pair from two 32-byte seeds.
func NewKey768(d, z []byte) (*Key768, error) {
	ek, dk, err := generateKeyFromSeeds(params768, d, z)
	if err != nil {
		return nil, err
	}
	return &Key768{PrivateKey768: PrivateKey768{dk: dk}, pub: &PublicKey768{ek: ek}}, nil
}

// NewPublicKey768 parses and validates an encoded encapsulation key.
func NewPublicKey768(ek []byte) (*PublicKey768, error) {
	if err := checkEncapsInput(params768, ek); err != nil {
		return nil, err
	}
	return &PublicKey768{ek: append([]byte{}, ek...)}, nil
}

// NewPrivateKey768 parses and validates an encoded decapsulation key.
func NewPrivateKey768(dk []byte) (*PrivateKey768, error) {
	if err := checkDecapsInput(params768, dk); err != nil {
		return nil, err
	}
	return &PrivateKey768{dk: append([]byte{}, dk...)}, nil
}

// PublicKey returns the encapsulation key for this key pair.
func (key *Key768) PublicKey() *PublicKey768 { return key.pub }

// Bytes returns the encoded encapsulation key.
func (pk *PublicKey768) Bytes() []byte { return append([]byte{}, pk.ek...) }

// Bytes returns the encoded decapsulation key.
func (sk *PrivateKey768) Bytes() []byte { return append([]byte{}, sk.dk...) }

// Equal reports whether pk and other are the same encapsulation key.
func (pk *PublicKey768) Equal(other *PublicKey768) bool {
	return other != nil && subtle.ConstantTimeCompare(pk.ek, other.ek) == 1
}

// Encapsulate generates a fresh shared secret and its ciphertext under pk,
// using rnd as the source of randomness.
func (pk *PublicKey768) Encapsulate(rnd io.Reader) (sharedKey, ciphertext []byte, err error) {
	return encapsulate(params768, pk.ek, rnd)
}

// Decapsulate recovers the shared secret carried by ciphertext. ciphertext
// must be exactly CiphertextSize768 bytes.
func (sk *PrivateKey768) Decapsulate(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != CiphertextSize768 {
		return nil, ErrMalformedCiphertext
	}
	return decapsulate(params768, sk.dk, ciphertext), nil
}

// Decapsulate recovers the shared secret carried by ciphertext using this
// key pair's decapsulation key.
func (key *Key768) Decapsulate(ciphertext []byte) ([]byte, error) {
	return key.PrivateKey768.Decapsulate(ciphertext)
}
