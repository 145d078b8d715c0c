// Package mlkem implements ML-KEM (Module-Lattice-based Key-Encapsulation
// Mechanism) as specified in FIPS 203.
//
// ML-KEM is a post-quantum key encapsulation mechanism standardized by NIST,
// built on the hardness of the Module Learning-With-Errors (MLWE) problem.
// This package supports three parameter sets:
//   - ML-KEM-512: NIST security category 1
//   - ML-KEM-768: NIST security category 3
//   - ML-KEM-1024: NIST security category 5
//
// Basic usage:
//
//	key, err := mlkem.GenerateKey768(rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//	ek := key.PublicKey().Bytes()
//
//	pk, err := mlkem.NewPublicKey768(ek)
//	sharedSecret, ciphertext, err := pk.Encapsulate(rand.Reader)
//
//	sharedSecret2, err := key.Decapsulate(ciphertext)
//	// sharedSecret == sharedSecret2
package mlkem

import (
	"errors"
)

// Global ML-KEM constants from FIPS 203.
const (
	// n is the number of coefficients in a polynomial.
	n = 256

	// q is the modulus: q = 3329.
	q = 3329

	// SeedSize is the size in bytes of each of the two random seeds (d, z)
	// consumed by key generation, and of the random message m consumed by
	// encapsulation.
	SeedSize = 32

	// SharedKeySize is the size in bytes of the shared secret produced by
	// Encapsulate and Decapsulate.
	SharedKeySize = 32
)

// params holds the five integers from FIPS 203 Table 2 that define one of
// the three named ML-KEM instances.
type params struct {
	name string
	k    int
	eta1 int
	eta2 int
	du   int
	dv   int
}

// Named parameter sets (FIPS 203 Table 2).
var (
	params512  = params{name: "ML-KEM-512", k: 2, eta1: 3, eta2: 2, du: 10, dv: 4}
	params768  = params{name: "ML-KEM-768", k: 3, eta1: 2, eta2: 2, du: 10, dv: 4}
	params1024 = params{name: "ML-KEM-1024", k: 4, eta1: 2, eta2: 2, du: 11, dv: 5}
)

func (p params) encapsulationKeySize() int { return 384*p.k + 32 }
func (p params) decapsulationKeySize() int { return 768*p.k + 96 }
func (p params) ciphertextSize() int       { return 32 * (p.du*p.k + p.dv) }

// Errors returned by key parsing and the ML-KEM operations. Each is a
// sentinel value, so callers can compare with errors.Is; the malformed-input errors carry
// no information about which field was wrong, to avoid turning validation
// into a source of distinguishing oracle behavior.
var (
	// ErrInvalidSeed is returned when a seed passed to a deterministic key
	// generation entry point is not exactly SeedSize bytes.
	ErrInvalidSeed = errors.New("mlkem: invalid seed length")

	// ErrMalformedEncapsulationKey is returned when an encapsulation key has
	// the wrong length, or when one of its 12-bit coefficient limbs encodes
	// a value greater than or equal to q.
	ErrMalformedEncapsulationKey = errors.New("mlkem: malformed encapsulation key")

	// ErrMalformedDecapsulationKey is returned when a decapsulation key has
	// the wrong length, or when the embedded hash of its encapsulation key
	// does not match.
	ErrMalformedDecapsulationKey = errors.New("mlkem: malformed decapsulation key")

	// ErrMalformedCiphertext is returned when a ciphertext has the wrong
	// length for the parameter set in use.
	ErrMalformedCiphertext = errors.New("mlkem: malformed ciphertext")
)
