package dag

import (
	"math"
	"testing"

	sparsegraph "github.com/sparsegraph/sparsegraph"
)

// buildTaxonomy builds: 5 -> {3,4}; 3 -> {0,1}; 4 -> {2}. Nodes 0,1,2 are leaves.
func buildTaxonomy(t *testing.T) (*sparsegraph.CSR2D[uint], []uint64) {
	t.Helper()
	g := buildDag(t, 6, [][2]int{{5, 3}, {5, 4}, {3, 0}, {3, 1}, {4, 2}})
	occurrences := []uint64{10, 10, 10, 0, 0, 0}
	return g, occurrences
}

func TestInformationContentPropagatesAndNormalizes(t *testing.T) {
	g, occurrences := buildTaxonomy(t)
	result, err := ComputeInformationContent(g, occurrences)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Propagated[5] != 30 {
		t.Errorf("expected root propagated count 30, got %d", result.Propagated[5])
	}
	if result.Propagated[3] != 20 {
		t.Errorf("expected node 3 propagated count 20, got %d", result.Propagated[3])
	}

	if math.Abs(result.IC[5]) > 1e-9 {
		t.Errorf("expected root IC ~0, got %v", result.IC[5])
	}
	if result.IC[0] <= 0 {
		t.Errorf("expected leaf IC > 0, got %v", result.IC[0])
	}
}

func TestInformationContentRejectsSinkWithZeroOccurrence(t *testing.T) {
	g := buildDag(t, 2, [][2]int{{0, 1}})
	_, err := ComputeInformationContent(g, []uint64{0, 0})
	if err != ErrSinkNodeZeroOccurrence {
		t.Errorf("expected ErrSinkNodeZeroOccurrence, got %v", err)
	}
}

func TestInformationContentRejectsWrongOccurrenceSize(t *testing.T) {
	g := buildDag(t, 2, [][2]int{{0, 1}})
	_, err := ComputeInformationContent(g, []uint64{1})
	sizeErr, ok := err.(*UnequalOccurrenceSizeError)
	if !ok {
		t.Fatalf("expected *UnequalOccurrenceSizeError, got %v", err)
	}
	if sizeErr.Expected != 2 || sizeErr.Found != 1 {
		t.Errorf("unexpected size error fields: %+v", sizeErr)
	}
}

func TestInformationContentRejectsCycle(t *testing.T) {
	g := buildDag(t, 2, [][2]int{{0, 1}, {1, 0}})
	_, err := ComputeInformationContent(g, []uint64{1, 1})
	if err != ErrNotDag {
		t.Errorf("expected ErrNotDag, got %v", err)
	}
}
