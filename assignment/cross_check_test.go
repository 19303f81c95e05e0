package assignment

import (
	"testing"

	"github.com/gonum/floats"
	sparsegraph "github.com/sparsegraph/sparsegraph"
	"gonum.org/v1/gonum/mat"
)

func TestLAPJVAndLAPMODAgreeOnCost(t *testing.T) {
	// spec.md §8's LAPJV<->LAPMOD property: on a square matrix where both succeed,
	// they must produce matchings of equal cardinality and, in numerically stable
	// regimes, equal total cost.
	dense := [][]float64{
		{4, 1, 3},
		{2, 1, 5},
		{3, 2, 2},
	}
	flat := make([]float64, 0, 9)
	for _, row := range dense {
		flat = append(flat, row...)
	}

	denseResult, err := LAPJV(mat.NewDense(3, 3, flat), 1000)
	if err != nil {
		t.Fatalf("LAPJV unexpected error: %v", err)
	}

	sparse := sparsegraph.NewValuedCSR2DFromDense(dense)
	sparseResult, err := LAPMOD(sparse, 1000)
	if err != nil {
		t.Fatalf("LAPMOD unexpected error: %v", err)
	}

	if len(denseResult.Assignments) != len(sparseResult.Assignments) {
		t.Fatalf("cardinality mismatch: LAPJV %d vs LAPMOD %d", len(denseResult.Assignments), len(sparseResult.Assignments))
	}
	if !floats.EqualWithinAbsOrRel(denseResult.TotalCost, sparseResult.TotalCost, 1e-9, 1e-9) {
		t.Errorf("total cost mismatch: LAPJV %v vs LAPMOD %v", denseResult.TotalCost, sparseResult.TotalCost)
	}
}
