package assignment

import (
	"testing"

	sparsegraph "github.com/sparsegraph/sparsegraph"
)

func TestCrouseRectangularAssignment(t *testing.T) {
	// spec.md scenario 4: 2 rows, 3 columns, every row has a real edge to every
	// column it can reach; column 2 can only be reached by row 1.
	m := sparsegraph.NewValuedCSR2D[uint](2, 3)
	must := func(err error) {
		if err != nil {
			t.Fatalf("unexpected error building matrix: %v", err)
		}
	}
	must(m.Add(0, 0, 2))
	must(m.Add(0, 1, 5))
	must(m.Add(1, 1, 3))
	must(m.Add(1, 2, 1))

	result, err := Crouse(m, 1000, 1e6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(result.Assignments))
	}
	seenRows := make(map[int]bool)
	seenCols := make(map[int]bool)
	for _, a := range result.Assignments {
		if seenRows[a.Row] || seenCols[a.Column] {
			t.Fatalf("duplicate row or column in assignment %v", a)
		}
		seenRows[a.Row] = true
		seenCols[a.Column] = true
		if !m.HasEntry(uint(a.Row), uint(a.Column)) {
			t.Errorf("assignment %v is not a real edge", a)
		}
	}
}

func TestCrousePaddingCostTooSmall(t *testing.T) {
	m := sparsegraph.NewValuedCSR2D[uint](1, 1)
	if err := m.Add(0, 0, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Crouse(m, 10, 1000); err != ErrPaddingCostTooSmall {
		t.Errorf("expected ErrPaddingCostTooSmall, got %v", err)
	}
}

func TestCrouseEmptyMatrixReturnsNoAssignments(t *testing.T) {
	m := sparsegraph.NewValuedCSR2D[uint](0, 0)
	result, err := Crouse(m, 100, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Assignments) != 0 {
		t.Errorf("expected no assignments, got %v", result.Assignments)
	}
}
