package mlkem

// kpkeKeys holds the raw K-PKE key material (before the outer CCA
// transform wraps it with the FO-style re-encryption check). ekPKE and
// dkPKE are the byte encodings defined by FIPS 203 Algorithm 13
// (K-PKE.KeyGen).
type kpkeKeys struct {
	ekPKE []byte
	dkPKE []byte
}

// sampleMatrixA deterministically expands a 32-byte seed rho into the k x
// k matrix A-hat over T_q, per FIPS 203 Algorithm 13's inner loop. transpose
// controls whether A or A-hat-transpose is produced: K-PKE.KeyGen needs A,
// while K-PKE.Encrypt needs A-transpose, and both are generated from the
// same seed by swapping the (i,j) byte order fed to the XOF rather than
// sampling and transposing separately.
func sampleMatrixA(rho []byte, k int, transpose bool) Matrix[nttElement] {
	a := NewMatrix[nttElement](k, k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			x := newXOF()
			x.absorb(rho)
			if transpose {
				x.absorb([]byte{byte(i), byte(j)})
			} else {
				x.absorb([]byte{byte(j), byte(i)})
			}
			a.Set(i, j, sampleNTT(x))
		}
	}
	return a
}

// kpkeKeyGen implements FIPS 203 Algorithm 13 (K-PKE.KeyGen) given the
// 32-byte randomness d.
func kpkeKeyGen(p params, d []byte) kpkeKeys {
	rho, sigma := g(append(append([]byte{}, d...), byte(p.k)))

	aHat := sampleMatrixA(rho, p.k, false)

	s := NewMatrix[ringElement](p.k, 1)
	e := NewMatrix[ringElement](p.k, 1)
	var nonce byte
	for i := 0; i < p.k; i++ {
		s.Set(i, 0, samplePolyCBD(p.eta1, prf(p.eta1, sigma, nonce)))
		nonce++
	}
	for i := 0; i < p.k; i++ {
		e.Set(i, 0, samplePolyCBD(p.eta1, prf(p.eta1, sigma, nonce)))
		nonce++
	}

	sHat := NewMatrix[nttElement](p.k, 1)
	eHat := NewMatrix[nttElement](p.k, 1)
	for i := 0; i < p.k; i++ {
		sHat.Set(i, 0, ntt(s.At(i, 0)))
		eHat.Set(i, 0, ntt(e.At(i, 0)))
	}

	tHat := mulNTT(aHat, sHat).Add(eHat)

	ekPKE := append(encodeVector12(tHat), rho...)
	dkPKE := encodeVector12(sHat)

	return kpkeKeys{ekPKE: ekPKE, dkPKE: dkPKE}
}

// kpkeEncrypt implements FIPS 203 Algorithm 14 (K-PKE.Encrypt): encrypts
// the 32-byte message m under ekPKE using randomness r, producing a
// ciphertext of 32*(du*k+dv) bytes.
func kpkeEncrypt(p params, ekPKE, m, r []byte) []byte {
	tHat := decodeVector12(ekPKE[:384*p.k], p.k)
	rho := ekPKE[384*p.k:]

	aHat := sampleMatrixA(rho, p.k, true)

	rVec := NewMatrix[ringElement](p.k, 1)
	e1 := NewMatrix[ringElement](p.k, 1)
	var nonce byte
	for i := 0; i < p.k; i++ {
		rVec.Set(i, 0, samplePolyCBD(p.eta1, prf(p.eta1, r, nonce)))
		nonce++
	}
	for i := 0; i < p.k; i++ {
		e1.Set(i, 0, samplePolyCBD(p.eta2, prf(p.eta2, r, nonce)))
		nonce++
	}
	e2 := samplePolyCBD(p.eta2, prf(p.eta2, r, nonce))

	rHat := NewMatrix[nttElement](p.k, 1)
	for i := 0; i < p.k; i++ {
		rHat.Set(i, 0, ntt(rVec.At(i, 0)))
	}

	uHatNTT := mulNTT(aHat, rHat)
	u := NewMatrix[ringElement](p.k, 1)
	for i := 0; i < p.k; i++ {
		u.Set(i, 0, polyAdd(invNTT(uHatNTT.At(i, 0)), e1.At(i, 0)))
	}

	var vAcc nttElement
	for i := 0; i < p.k; i++ {
		vAcc = polyAdd(vAcc, nttMul(tHat.At(i, 0), rHat.At(i, 0)))
	}
	mu := messageToPoly(m)
	v := polyAdd(polyAdd(invNTT(vAcc), e2), mu)

	c1 := make([]byte, 0, 32*p.du*p.k)
	for i := 0; i < p.k; i++ {
		c1 = append(c1, byteEncode(p.du, compressPoly(p.du, u.At(i, 0)))...)
	}
	c2 := byteEncode(p.dv, compressPoly(p.dv, v))

	return append(c1, c2...)
}

// kpkeDecrypt implements FIPS 203 Algorithm 15 (K-PKE.Decrypt): recovers
// the 32-byte message from a ciphertext under dkPKE.
func kpkeDecrypt(p params, dkPKE, c []byte) []byte {
	du, dv, k := p.du, p.dv, p.k
	c1 := c[:32*du*k]
	c2 := c[32*du*k:]

	u := NewMatrix[ringElement](k, 1)
	for i := 0; i < k; i++ {
		chunk := c1[i*32*du : (i+1)*32*du]
		u.Set(i, 0, decompressPoly(du, byteDecode(du, chunk)))
	}
	v := decompressPoly(dv, byteDecode(dv, c2))

	sHat := decodeVector12(dkPKE, k)

	var acc nttElement
	for i := 0; i < k; i++ {
		acc = polyAdd(acc, nttMul(sHat.At(i, 0), ntt(u.At(i, 0))))
	}
	w := polySub(v, invNTT(acc))

	return polyToMessage(w)
}
