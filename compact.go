package sparse

import "sort"

// CompactMatrix is an owned rebuild of a valued sparse matrix with all-empty rows and
// all-empty columns eliminated, remaining ones renumbered to contiguous 0-based
// ranges. RowMap and ColMap are the inverse maps back to the original coordinates.
// Grounded on original_source's impls/compact_matrix.rs.
type CompactMatrix struct {
	Matrix *ValuedCSR2D[uint]
	RowMap []uint // RowMap[compactRow] = originalRow, in original row order (ascending)
	ColMap []uint // ColMap[compactCol] = originalCol, sorted ascending
}

// Compactify builds a CompactMatrix from a valued matrix with uint indices. The row
// map follows original row-iteration order, which is ascending; the column map is
// sorted, enabling a binary-search column lookup.
func Compactify(matrix *ValuedCSR2D[uint]) *CompactMatrix {
	nonEmptyRows := matrix.CSR().NonEmptyRowIndices()

	colSet := make(map[uint]struct{})
	for _, r := range nonEmptyRows {
		for _, c := range matrix.SparseRow(r) {
			colSet[c] = struct{}{}
		}
	}
	colMap := make([]uint, 0, len(colSet))
	for c := range colSet {
		colMap = append(colMap, c)
	}
	sort.Slice(colMap, func(i, j int) bool { return colMap[i] < colMap[j] })

	colToCompact := func(original uint) uint {
		i := sort.Search(len(colMap), func(i int) bool { return colMap[i] >= original })
		return uint(i)
	}

	compact := NewValuedCSR2D[uint](uint(len(nonEmptyRows)), uint(len(colMap)))
	for compactRow, originalRow := range nonEmptyRows {
		cols := matrix.SparseRow(originalRow)
		vals := matrix.SparseRowValues(originalRow)
		for i, c := range cols {
			// columns within a row are already sorted, and colToCompact preserves
			// order, so the compact row stays strictly increasing.
			_ = compact.Add(uint(compactRow), colToCompact(c), vals[i])
		}
	}

	return &CompactMatrix{Matrix: compact, RowMap: nonEmptyRows, ColMap: colMap}
}

// SubsetSquareMatrix is a view over a square sparse matrix that restricts column
// visibility to a sorted subset S of {0, ..., order-1}. Shape and row count are
// unchanged from the underlying matrix.
type SubsetSquareMatrix[I Index] struct {
	matrix *SquareCSR2D[I]
	subset []I // sorted ascending
}

// NewSubsetSquareMatrix returns a view of matrix restricted to the given sorted
// column subset.
func NewSubsetSquareMatrix[I Index](matrix *SquareCSR2D[I], subset []I) *SubsetSquareMatrix[I] {
	return &SubsetSquareMatrix[I]{matrix: matrix, subset: subset}
}

func (s *SubsetSquareMatrix[I]) inSubset(c I) bool {
	i := sort.Search(len(s.subset), func(i int) bool { return s.subset[i] >= c })
	return i < len(s.subset) && s.subset[i] == c
}

// HasEntry reports whether (row, column) is visible: column must be in the subset
// and the underlying matrix must contain the entry.
func (s *SubsetSquareMatrix[I]) HasEntry(row, column I) bool {
	return s.inSubset(column) && s.matrix.HasEntry(row, column)
}

// Order returns the order of the underlying square matrix.
func (s *SubsetSquareMatrix[I]) Order() I { return s.matrix.Order() }
