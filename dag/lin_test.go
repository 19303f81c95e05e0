package dag

import (
	"math"
	"testing"
)

func TestLinCombinesResnikWithBothICs(t *testing.T) {
	g, occurrences := buildTaxonomy(t)
	result, err := ComputeInformationContent(g, occurrences)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Lin(g, result.IC, 0, 1)
	want := 2 * result.IC[3] / (result.IC[0] + result.IC[1])
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Lin(0,1) = %v, want %v", got, want)
	}
}

func TestLinZeroWhenDenominatorIsZero(t *testing.T) {
	g, occurrences := buildTaxonomy(t)
	result, err := ComputeInformationContent(g, occurrences)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Node 5 is the root: its own IC is 0, so IC(5)+IC(5) == 0.
	if got := Lin(g, result.IC, 5, 5); got != 0 {
		t.Errorf("Lin(5,5) = %v, want 0", got)
	}
}
