package assignment

import (
	"math"

	sparsegraph "github.com/sparsegraph/sparsegraph"
	"gonum.org/v1/gonum/mat"
)

// CrouseResult is the output of Crouse: the real-edge assignments translated back
// through the compactify row/column maps (no non-edge or padding pairs included).
type CrouseResult struct {
	Assignments []Assignment
}

// Crouse solves the rectangular sparse assignment problem (rows need not equal
// columns) by compactifying away empty rows/columns, densifying the remainder with
// a non_edge_cost padding value, running an augmentation-only LAPJV pass, and
// filtering out any pair whose cost equals the padding (i.e. not a real edge).
// Grounded on original_source's
// traits/algorithms/weighted_assignment/crouse.rs and crouse/inner.rs.
func Crouse(matrix *sparsegraph.ValuedCSR2D[uint], nonEdgeCost, maxCost float64) (*CrouseResult, error) {
	if math.IsInf(maxCost, 0) || math.IsNaN(maxCost) {
		return nil, ErrMaximalCostNotFinite
	}
	if maxCost <= 0 {
		return nil, ErrMaximalCostNotPositive
	}
	if math.IsInf(nonEdgeCost, 0) || math.IsNaN(nonEdgeCost) {
		return nil, ErrPaddingValueNotFinite
	}
	if nonEdgeCost <= 0 {
		return nil, ErrPaddingValueNotPositive
	}

	for r := uint(0); r < matrix.NumberOfRows(); r++ {
		for _, v := range matrix.SparseRowValues(r) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFiniteValues
			}
			if v < 0 {
				return nil, ErrNegativeValues
			}
		}
	}
	if max, ok := matrix.MaxSparseValue(); ok && max >= nonEdgeCost {
		return nil, ErrPaddingCostTooSmall
	}

	// --- 1. Compactify ---
	compact := sparsegraph.Compactify(matrix)
	nr := int(compact.Matrix.NumberOfRows())
	nc := int(compact.Matrix.NumberOfColumns())
	if nr == 0 || nc == 0 {
		return &CrouseResult{}, nil
	}

	// --- 2. Orient: transpose the problem if there are more rows than columns ---
	transposed := false
	rows, cols, rowMap, colMap := nr, nc, compact.RowMap, compact.ColMap
	value := func(r, c int) (float64, bool) { return compact.Matrix.Value(uint(r), uint(c)) }
	if nr > nc {
		transposed = true
		rows, cols = nc, nr
		rowMap, colMap = compact.ColMap, compact.RowMap
		orig := value
		value = func(r, c int) (float64, bool) { return orig(c, r) }
	}

	// --- 3. Densify ---
	dense := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if v, ok := value(r, c); ok {
				dense.Set(r, c, v)
			} else {
				dense.Set(r, c, nonEdgeCost)
			}
		}
	}

	// --- 4. Augmentation-only LAPJV: all duals 0, all rows unassigned ---
	u := make([]float64, cols)
	y := make([]int, cols)
	for c := range y {
		y[c] = -1
	}
	x := make([]int, rows)
	for r := range x {
		x[r] = -1
	}
	costFn := func(r, c int) float64 { return dense.At(r, c) }
	state := &denseAugmentationState{
		n: cols, cost: costFn, u: u, y: y,
		dist: make([]float64, cols), pred: make([]int, cols), visited: make([]bool, cols),
	}
	for r := 0; r < rows; r++ {
		if err := augmentRectangular(state, r, x); err != nil {
			return nil, err
		}
	}

	// --- 5. Filter and demap ---
	result := &CrouseResult{}
	for r := 0; r < rows; r++ {
		c := x[r]
		if dense.At(r, c) == nonEdgeCost {
			continue
		}
		originalRow, originalCol := rowMap[r], colMap[c]
		if transposed {
			originalRow, originalCol = originalCol, originalRow
		}
		result.Assignments = append(result.Assignments, Assignment{Row: int(originalRow), Column: int(originalCol)})
	}
	sortAssignments(result.Assignments)
	return result, nil
}

// augmentRectangular runs denseAugmentationState.augment for one row of a rows <= cols
// problem. augment only iterates over the n = cols columns, so it is called unchanged
// even though the row count processed (`rows`) may be smaller than `n`.
func augmentRectangular(s *denseAugmentationState, start int, x []int) error {
	return s.augment(start, x)
}
