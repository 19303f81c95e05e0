package assignment

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestLAPJVFindsOptimalAssignment(t *testing.T) {
	// spec.md scenario 2: classic 3x3 cost matrix with a unique optimum.
	costs := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 1, 6,
		7, 8, 1,
	})

	result, err := LAPJV(costs, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Assignments) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(result.Assignments))
	}

	seenRows := make(map[int]bool)
	seenCols := make(map[int]bool)
	for _, a := range result.Assignments {
		if seenRows[a.Row] {
			t.Fatalf("row %d assigned more than once", a.Row)
		}
		if seenCols[a.Column] {
			t.Fatalf("column %d assigned more than once", a.Column)
		}
		seenRows[a.Row] = true
		seenCols[a.Column] = true
	}

	if math.Abs(result.TotalCost-3) > 1e-9 {
		t.Errorf("expected total cost 3, got %v", result.TotalCost)
	}
}

func TestLAPJVRejectsNonSquare(t *testing.T) {
	costs := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if _, err := LAPJV(costs, 100); err != ErrNonSquareMatrix {
		t.Errorf("expected ErrNonSquareMatrix, got %v", err)
	}
}

func TestLAPJVRejectsZeroValue(t *testing.T) {
	costs := mat.NewDense(2, 2, []float64{0, 1, 1, 1})
	if _, err := LAPJV(costs, 100); err != ErrZeroValues {
		t.Errorf("expected ErrZeroValues, got %v", err)
	}
}

func TestLAPJVRejectsNegativeValue(t *testing.T) {
	costs := mat.NewDense(2, 2, []float64{1, -1, 1, 1})
	if _, err := LAPJV(costs, 100); err != ErrNegativeValues {
		t.Errorf("expected ErrNegativeValues, got %v", err)
	}
}

func TestLAPJVRejectsValueExceedingMaxCost(t *testing.T) {
	costs := mat.NewDense(2, 2, []float64{1, 1, 1, 200})
	if _, err := LAPJV(costs, 100); err != ErrValueTooLarge {
		t.Errorf("expected ErrValueTooLarge, got %v", err)
	}
}

func TestLAPJVRejectsEmptyMatrix(t *testing.T) {
	costs := &mat.Dense{} // mat.NewDense panics on zero dimensions; the zero value is 0x0
	if _, err := LAPJV(costs, 100); err != ErrEmptyMatrix {
		t.Errorf("expected ErrEmptyMatrix, got %v", err)
	}
}

func TestLAPJVSingleElement(t *testing.T) {
	costs := mat.NewDense(1, 1, []float64{7})
	result, err := LAPJV(costs, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Assignments) != 1 || result.Assignments[0].Row != 0 || result.Assignments[0].Column != 0 {
		t.Errorf("expected single assignment (0,0), got %v", result.Assignments)
	}
	if result.TotalCost != 7 {
		t.Errorf("expected total cost 7, got %v", result.TotalCost)
	}
}
