package mlkem

import (
	"crypto/subtle"
	"io"
)

// keyGenInternal implements FIPS 203 Algorithm 16 (ML-KEM.KeyGen_internal)
// given the two 32-byte random seeds d and z. It returns the full
// encapsulation key ek and decapsulation key dk.
//
// dk is laid out as dkPKE || ek || H(ek) || z, matching Algorithm 16: the
// re-encryption check in decapsulation needs ek and H(ek) available
// without recomputing them from dkPKE, and z is the implicit-rejection
// seed consumed on decapsulation failure.
func keyGenInternal(p params, d, z []byte) (ek, dk []byte) {
	keys := kpkeKeyGen(p, d)
	ek = keys.ekPKE
	hek := h(ek)
	dk = append(append(append([]byte{}, keys.dkPKE...), ek...), hek...)
	dk = append(dk, z...)
	return ek, dk
}

// generateKey implements FIPS 203 Algorithm 19 (ML-KEM.KeyGen): draws d
// and z from rnd and derives a fresh key pair.
func generateKey(p params, rnd io.Reader) (ek, dk []byte, err error) {
	d := make([]byte, SeedSize)
	z := make([]byte, SeedSize)
	if _, err := io.ReadFull(rnd, d); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(rnd, z); err != nil {
		return nil, nil, err
	}
	ek, dk = keyGenInternal(p, d, z)
	return ek, dk, nil
}

// generateKeyFromSeeds derives a key pair deterministically from caller-
// supplied seeds, for reproducible key generation (e.g. from known-answer
// test vectors). Both seeds must be exactly SeedSize bytes.
func generateKeyFromSeeds(p params, d, z []byte) (ek, dk []byte, err error) {
	if len(d) != SeedSize || len(z) != SeedSize {
		return nil, nil, ErrInvalidSeed
	}
	ek, dk = keyGenInternal(p, d, z)
	return ek, dk, nil
}

// checkEncapsInput validates an encapsulation key's length and that every
// packed coefficient of t-hat is a canonical value in [0, q), per the
// "modulus check" of FIPS 203 section 7.2. A byte string that round-trips
// through decode-then-encode to something other than itself failed this
// check in the reference implementation this spec was distilled from;
// here the check is done directly against each coefficient instead of by
// re-encoding and comparing, which is equivalent but avoids re-deriving
// rho.
func checkEncapsInput(p params, ek []byte) error {
	if len(ek) != p.encapsulationKeySize() {
		return ErrMalformedEncapsulationKey
	}
	for i := 0; i < p.k; i++ {
		chunk := ek[i*384 : (i+1)*384]
		for _, v := range byteDecode(12, chunk) {
			if v >= q {
				return ErrMalformedEncapsulationKey
			}
		}
	}
	return nil
}

// checkDecapsInput validates a decapsulation key's length and that the
// embedded hash of its encapsulation key matches, per FIPS 203 section
// 7.3.
func checkDecapsInput(p params, dk []byte) error {
	if len(dk) != p.decapsulationKeySize() {
		return ErrMalformedDecapsulationKey
	}
	ek := dk[384*p.k : 768*p.k+32]
	wantHek := dk[768*p.k+32 : 768*p.k+64]
	gotHek := h(ek)
	if subtle.ConstantTimeCompare(wantHek, gotHek) != 1 {
		return ErrMalformedDecapsulationKey
	}
	return nil
}

// encapsInternal implements FIPS 203 Algorithm 17 (ML-KEM.Encaps_internal)
// given the 32-byte message m.
func encapsInternal(p params, ek, m []byte) (sharedKey, ct []byte) {
	kBar, r := g(append(append([]byte{}, m...), h(ek)...))
	ct = kpkeEncrypt(p, ek, m, r)
	return kBar, ct
}

// encapsulate implements FIPS 203 Algorithm 20 (ML-KEM.Encaps): draws a
// fresh random message and derives a shared key and ciphertext from ek.
// ek must already have passed checkEncapsInput.
func encapsulate(p params, ek []byte, rnd io.Reader) (sharedKey, ct []byte, err error) {
	m := make([]byte, SeedSize)
	if _, err := io.ReadFull(rnd, m); err != nil {
		return nil, nil, err
	}
	sharedKey, ct = encapsInternal(p, ek, m)
	return sharedKey, ct, nil
}

// decapsulate implements FIPS 203 Algorithm 21 (ML-KEM.Decaps): recovers
// the shared key from a ciphertext under dk. dk must already have passed
// checkDecapsInput, and ct must be exactly p.ciphertextSize() bytes.
//
// On a failed re-encryption check this does not return an error: per the
// implicit-rejection construction, the caller receives a shared key
// indistinguishable from a genuine one, derived instead from the
// decapsulation key's z seed and the ciphertext. Both branches run the
// same sequence of operations and the branch choice is folded in with a
// constant-time select, so a timing or error-shape side channel doesn't
// tell an attacker whether the ciphertext was valid.
func decapsulate(p params, dk, ct []byte) []byte {
	dkPKE := dk[:384*p.k]
	ekPKE := dk[384*p.k : 768*p.k+32]
	hek := dk[768*p.k+32 : 768*p.k+64]
	z := dk[768*p.k+64:]

	mPrime := kpkeDecrypt(p, dkPKE, ct)
	kBarPrime, rPrime := g(append(append([]byte{}, mPrime...), hek...))
	kBarReject := j(append(append([]byte{}, z...), ct...))

	cPrime := kpkeEncrypt(p, ekPKE, mPrime, rPrime)

	ok := subtle.ConstantTimeCompare(ct, cPrime)

	out := make([]byte, SharedKeySize)
	subtle.ConstantTimeCopy(ok, out, kBarPrime)
	subtle.ConstantTimeCopy(1-ok, out, kBarReject)
	return out
}
