package mlkem

// Matrix is a row-major container of ring elements, generic over either
// representation (ringElement or nttElement). Unlike ringElement/nttElement,
// whose length is fixed at compile time by the n=256 constraint, a Matrix's
// shape is a runtime property: k varies across the three ML-KEM parameter
// sets, so K-PKE's A matrix and its vectors are built with one generic
// container rather than three duplicated fixed-size types.
type Matrix[T ~[n]fieldElement] struct {
	Rows, Cols int
	Entries    []T
}

// NewMatrix allocates a zero-valued Rows x Cols matrix.
func NewMatrix[T ~[n]fieldElement](rows, cols int) Matrix[T] {
	return Matrix[T]{Rows: rows, Cols: cols, Entries: make([]T, rows*cols)}
}

// At returns the entry at row i, column j.
func (m Matrix[T]) At(i, j int) T {
	return m.Entries[i*m.Cols+j]
}

// Set assigns the entry at row i, column j.
func (m Matrix[T]) Set(i, j int, v T) {
	m.Entries[i*m.Cols+j] = v
}

// Add returns the componentwise sum of m and o. Panics if the shapes don't
// match, a programmer error rather than a caller-facing one: shapes are
// always derived from the same parameter set within this package.
func (m Matrix[T]) Add(o Matrix[T]) Matrix[T] {
	if m.Rows != o.Rows || m.Cols != o.Cols {
		panic("mlkem: matrix shape mismatch in Add")
	}
	out := NewMatrix[T](m.Rows, m.Cols)
	for i := range out.Entries {
		out.Entries[i] = polyAdd(m.Entries[i], o.Entries[i])
	}
	return out
}

// Transpose returns a new Cols x Rows matrix with entries swapped across
// the diagonal.
func (m Matrix[T]) Transpose() Matrix[T] {
	out := NewMatrix[T](m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// mulNTT multiplies two NTT-domain matrices: entry (i,j) of the result is
// the inner product of row i of a and column j of b, with ring
// multiplication — only ever meaningful in the NTT domain, per the
// representation discipline — computed via nttMul.
func mulNTT(a, b Matrix[nttElement]) Matrix[nttElement] {
	if a.Cols != b.Rows {
		panic("mlkem: matrix shape mismatch in Mul")
	}
	out := NewMatrix[nttElement](a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			var acc nttElement
			for l := 0; l < a.Cols; l++ {
				acc = polyAdd(acc, nttMul(a.At(i, l), b.At(l, j)))
			}
			out.Set(i, j, acc)
		}
	}
	return out
}
