package sparse

import "fmt"

// Mutation errors returned by the generic CSR2D substrate and its variants. CSR2D
// never panics: every failure mode, including a bad index, is a typed error.
var (
	// ErrUnorderedCoordinate is returned by Add when the supplied (row, column) would
	// violate the append-only, row-then-column increasing insertion order.
	ErrUnorderedCoordinate = fmt.Errorf("sparsegraph: coordinate is out of insertion order")

	// ErrDuplicatedEntry is returned by Add when (row, column) has already been added.
	ErrDuplicatedEntry = fmt.Errorf("sparsegraph: duplicated entry")

	// ErrMaxedOutRowIndex is returned when a row index would overflow the Index type.
	ErrMaxedOutRowIndex = fmt.Errorf("sparsegraph: row index exceeds representable range")

	// ErrMaxedOutColumnIndex is returned when a column index would overflow the Index type.
	ErrMaxedOutColumnIndex = fmt.Errorf("sparsegraph: column index exceeds representable range")

	// ErrMaxedOutSparseIndex is returned when a sparse (nonzero) index would overflow
	// the Index type.
	ErrMaxedOutSparseIndex = fmt.Errorf("sparsegraph: sparse index exceeds representable range")

	// ErrIncompatibleShape is returned by IncreaseShape when the requested shape would
	// shrink either dimension.
	ErrIncompatibleShape = fmt.Errorf("sparsegraph: shape change would shrink the matrix")

	// ErrPaddedShapeOverflow is returned by NewPaddedMatrix2D when max(rows, columns)
	// cannot be represented by the underlying Index type.
	ErrPaddedShapeOverflow = fmt.Errorf("sparsegraph: padded shape too large to be represented")
)

// OutOfBoundsError reports a coordinate access outside the declared shape or the
// row-restricted region rejected by UpperTriangularCSR2D.
type OutOfBoundsError struct {
	Row, Column int
	Rows, Cols  int
	Context     string
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("sparsegraph: coordinate (%d,%d) out of bounds for shape (%d,%d): %s",
		e.Row, e.Column, e.Rows, e.Cols, e.Context)
}
