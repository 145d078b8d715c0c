package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldAddSubInverse(t *testing.T) {
	for a := fieldElement(0); a < q; a += 37 {
		for b := fieldElement(0); b < q; b += 41 {
			sum := fieldAdd(a, b)
			require.Equal(t, a, fieldSub(sum, b))
			require.Less(t, uint32(sum), uint32(q))
		}
	}
}

func TestFieldMulByZeroAndOne(t *testing.T) {
	for a := fieldElement(0); a < q; a += 13 {
		require.Equal(t, fieldElement(0), fieldMul(a, 0))
		require.Equal(t, a, fieldMul(a, 1))
	}
}

func TestFieldMulCommutative(t *testing.T) {
	for a := fieldElement(0); a < q; a += 29 {
		for b := fieldElement(0); b < q; b += 31 {
			require.Equal(t, fieldMul(a, b), fieldMul(b, a))
		}
	}
}

func TestPolyAddSubInverse(t *testing.T) {
	var a, b ringElement
	for i := range a {
		a[i] = fieldElement(i * 7 % q)
		b[i] = fieldElement(i * 11 % q)
	}
	sum := polyAdd(a, b)
	require.Equal(t, a, polySub(sum, b))
}

func TestPolyScalarMulDistributesOverAdd(t *testing.T) {
	var a, b ringElement
	for i := range a {
		a[i] = fieldElement(i * 3 % q)
		b[i] = fieldElement(i * 5 % q)
	}
	const scalar fieldElement = 17

	lhs := polyScalarMul(scalar, polyAdd(a, b))
	rhs := polyAdd(polyScalarMul(scalar, a), polyScalarMul(scalar, b))
	require.Equal(t, rhs, lhs)
}
