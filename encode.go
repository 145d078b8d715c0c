package mlkem

// bitsToBytes packs a slice of 0/1-valued bytes into real bytes, 8 bits per
// output byte, little-endian within each byte. len(bits) must be a
// multiple of 8.
func bitsToBytes(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var b byte
		for j := 0; j < 8; j++ {
			b |= bits[8*i+j] << uint(j)
		}
		out[i] = b
	}
	return out
}

// bytesToBits is the inverse of bitsToBytes: bit j of byte i is
// (b[i] >> j) & 1.
func bytesToBits(b []byte) []byte {
	out := make([]byte, len(b)*8)
	for i, v := range b {
		for j := 0; j < 8; j++ {
			out[8*i+j] = (v >> uint(j)) & 1
		}
	}
	return out
}

// byteEncode packs 256 field elements, each interpreted as a d-bit
// integer, into 32*d bytes, per ByteEncode_d.
func byteEncode(d int, f []fieldElement) []byte {
	bits := make([]byte, n*d)
	for i, fi := range f {
		v := uint32(fi)
		for j := 0; j < d; j++ {
			bits[i*d+j] = byte((v >> uint(j)) & 1)
		}
	}
	return bitsToBytes(bits)
}

// byteDecode is the inverse of byteEncode, per ByteDecode_d. When d=12 a
// byte stream may decode to a value >= q since q is not a power of two;
// callers that need to reject such values on untrusted input (see
// checkEncapsInput) do so themselves.
func byteDecode(d int, b []byte) []fieldElement {
	bits := bytesToBits(b)
	f := make([]fieldElement, n)
	for i := 0; i < n; i++ {
		var v uint32
		for j := 0; j < d; j++ {
			v |= uint32(bits[i*d+j]) << uint(j)
		}
		f[i] = fieldElement(v)
	}
	return f
}

// compress maps x in Z_q to Z_{2^d} via round((2^d/q)*x), computed with
// integer arithmetic rather than floating point to keep the rounding
// exact.
func compress(d int, x fieldElement) fieldElement {
	num := uint64(2)*uint64(uint32(1)<<uint(d))*uint64(x) + uint64(q)
	den := uint64(2 * q)
	return fieldElement((num / den) % uint64(uint32(1)<<uint(d)))
}

// decompress maps y in Z_{2^d} back to Z_q. Lossy: compress(d,
// decompress(d, y)) == y for all y, but the reverse composition is not
// generally the identity.
func decompress(d int, y fieldElement) fieldElement {
	num := uint64(2)*uint64(q)*uint64(y) + uint64(uint32(1)<<uint(d))
	den := uint64(1) << uint(d+1)
	return fieldElement(num / den)
}

// compressPoly applies compress to every coefficient of f.
func compressPoly(d int, f ringElement) []fieldElement {
	out := make([]fieldElement, n)
	for i, v := range f {
		out[i] = compress(d, v)
	}
	return out
}

// decompressPoly applies decompress to every element of vals, producing a
// Standard-representation polynomial.
func decompressPoly(d int, vals []fieldElement) ringElement {
	var out ringElement
	for i, v := range vals {
		out[i] = decompress(d, v)
	}
	return out
}

// messageToPoly implements mu = Decompress_1(ByteDecode_1(m)) for a
// 32-byte message.
func messageToPoly(m []byte) ringElement {
	return decompressPoly(1, byteDecode(1, m))
}

// polyToMessage implements m = ByteEncode_1(Compress_1(w)), recovering a
// 32-byte message from a Standard-representation polynomial.
func polyToMessage(f ringElement) []byte {
	return byteEncode(1, compressPoly(1, f))
}

// encodeVector12 ByteEncode_12's every entry of a k x 1 NTT-domain vector
// and concatenates the results. Used for both t-hat in the encapsulation
// key and s-hat in the decapsulation key.
func encodeVector12(v Matrix[nttElement]) []byte {
	out := make([]byte, 0, 384*v.Rows)
	for i := 0; i < v.Rows; i++ {
		elt := v.At(i, 0)
		out = append(out, byteEncode(12, elt[:])...)
	}
	return out
}

// decodeVector12 is the inverse of encodeVector12: splits b into k
// 384-byte chunks and ByteDecode_12's each into one row of the vector.
func decodeVector12(b []byte, k int) Matrix[nttElement] {
	m := NewMatrix[nttElement](k, 1)
	for i := 0; i < k; i++ {
		chunk := b[i*384 : (i+1)*384]
		vals := byteDecode(12, chunk)
		var elt nttElement
		copy(elt[:], vals)
		m.Set(i, 0, elt)
	}
	return m
}
