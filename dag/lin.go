package dag

import sparsegraph "github.com/sparsegraph/sparsegraph"

// Lin computes Lin similarity, 2*IC(LCS) / (IC(a) + IC(b)), built directly on top of
// Resnik's deepest-common-ancestor information content. Returns 0 if IC(a)+IC(b) is
// zero. Implemented directly from the formula above.
func Lin(graph *sparsegraph.CSR2D[uint], ic []float64, a, b uint) float64 {
	denominator := ic[a] + ic[b]
	if denominator == 0 {
		return 0
	}
	lcsIC := Resnik(graph, ic, a, b)
	return 2 * lcsIC / denominator
}
