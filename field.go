package mlkem

// fieldElement is an integer modulo q, always kept in reduced form [0, q).
// The same underlying type also carries values mod 2^d (d in [1,11]) when
// used as the output of Compress_d/ByteDecode_d for d < 12; those callers
// are responsible for staying within their own modulus, since q is not a
// power of two and the two domains never need to interoperate through
// fieldAdd/fieldMul.
type fieldElement uint16

// ringElement is a polynomial with n coefficients in Z_q — the Standard
// representation, R_q.
type ringElement [n]fieldElement

// nttElement is the NTT representation of a polynomial — T_q. Addition
// between a ringElement and an nttElement, or multiplication of two
// ringElements, is unrepresentable: the distinct named types enforce the
// representation discipline from the spec at compile time rather than at
// run time.
type nttElement [n]fieldElement

// fieldReduceOnce reduces a value in [0, 2q) to [0, q).
func fieldReduceOnce(a uint32) fieldElement {
	x := a - q
	// If a < q the subtraction wraps around, setting the top bit; add q
	// back in that case. Branchless so it runs in constant time regardless
	// of whether a held secret data.
	x += (x >> 31) * q
	return fieldElement(x)
}

// fieldAdd returns (a + b) mod q.
func fieldAdd(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) + uint32(b))
}

// fieldSub returns (a - b) mod q.
func fieldSub(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) - uint32(b) + q)
}

// fieldMul returns (a * b) mod q. q = 3329 fits comfortably in a uint32
// product, so plain reduction is used rather than Montgomery form: unlike
// ML-DSA's q = 2^23 - 2^13 + 1, there's no meaningful throughput to buy by
// keeping values in Montgomery domain here.
func fieldMul(a, b fieldElement) fieldElement {
	return fieldElement((uint32(a) * uint32(b)) % q)
}

// polyAdd adds two same-representation polynomials coefficient-wise.
func polyAdd[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldAdd(a[i], b[i])
	}
	return c
}

// polySub subtracts two same-representation polynomials coefficient-wise.
func polySub[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldSub(a[i], b[i])
	}
	return c
}

// polyScalarMul scales every coefficient of f by the field element a.
func polyScalarMul[T ~[n]fieldElement](a fieldElement, f T) (c T) {
	for i := range c {
		c[i] = fieldMul(a, f[i])
	}
	return c
}
