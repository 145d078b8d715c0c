package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsBytesRoundTrip(t *testing.T) {
	b := make([]byte, 32)
	for i := range b {
		b[i] = byte(i * 97)
	}
	require.Equal(t, b, bitsToBytes(bytesToBits(b)))
}

func TestByteEncodeDecodeRoundTrip(t *testing.T) {
	for _, d := range []int{1, 4, 5, 10, 11, 12} {
		f := make([]fieldElement, n)
		limit := uint32(1) << uint(d)
		for i := range f {
			f[i] = fieldElement(uint32(i*3+1) % limit)
		}
		encoded := byteEncode(d, f)
		decoded := byteDecode(d, encoded)
		require.Equal(t, f, decoded, "d=%d", d)
	}
}

func TestDecompressThenCompressIsIdentity(t *testing.T) {
	for _, d := range []int{1, 4, 5, 10, 11} {
		limit := fieldElement(uint32(1) << uint(d))
		for y := fieldElement(0); y < limit; y++ {
			x := decompress(d, y)
			require.Equal(t, y, compress(d, x), "d=%d y=%d", d, y)
		}
	}
}

func TestMessagePolyRoundTrip(t *testing.T) {
	m := make([]byte, 32)
	for i := range m {
		m[i] = byte(i * 53)
	}
	got := polyToMessage(messageToPoly(m))
	require.Equal(t, m, got)
}

func TestVector12RoundTrip(t *testing.T) {
	for _, k := range []int{2, 3, 4} {
		v := NewMatrix[nttElement](k, 1)
		for i := 0; i < k; i++ {
			var elt nttElement
			for j := range elt {
				elt[j] = fieldElement((i*256 + j) % q)
			}
			v.Set(i, 0, elt)
		}
		encoded := encodeVector12(v)
		decoded := decodeVector12(encoded, k)
		require.Equal(t, v, decoded, "k=%d", k)
	}
}
