// Package assignment implements weighted bipartite assignment solvers over the CSR
// substrate defined by the sparsegraph root package: a dense Jonker-Volgenant solver
// (LAPJV), its native-sparse counterpart (LAPMOD), a rectangular sparse variant with
// non-edge padding (Crouse), and a cardinality-only baseline (Hopcroft-Karp).
package assignment

import "fmt"

// Error taxonomy shared across LAPJV, LAPMOD, Crouse and their sparse wrappers,
// grounded on original_source's lapjv/lapmod/crouse error enums and spec.md §7.
var (
	ErrNonSquareMatrix        = fmt.Errorf("assignment: matrix must be square")
	ErrEmptyMatrix            = fmt.Errorf("assignment: matrix has no rows or columns")
	ErrZeroValues             = fmt.Errorf("assignment: zero-valued entries are not permitted")
	ErrNegativeValues         = fmt.Errorf("assignment: negative-valued entries are not permitted")
	ErrNonFiniteValues        = fmt.Errorf("assignment: non-finite entries are not permitted")
	ErrValueTooLarge          = fmt.Errorf("assignment: entry exceeds max cost")
	ErrMaximalCostNotFinite   = fmt.Errorf("assignment: max cost must be finite")
	ErrMaximalCostNotPositive = fmt.Errorf("assignment: max cost must be positive")
	ErrPaddingValueNotFinite  = fmt.Errorf("assignment: non-edge padding cost must be finite")
	ErrPaddingValueNotPositive = fmt.Errorf("assignment: non-edge padding cost must be positive")
	// ErrPaddingCostTooSmall preserves the source's strict inequality: returned when
	// the sparse matrix's maximum value is >= the padding cost. Equality counts as
	// "too small" (spec.md §9 Open Question).
	ErrPaddingCostTooSmall  = fmt.Errorf("assignment: non-edge padding cost must exceed every real edge cost")
	ErrInfeasibleAssignment = fmt.Errorf("assignment: no perfect matching exists")

	// ErrPredecessorCycle is the converted form of the source's backtrack
	// unreachable!() assertions: the augmenting-path backtrack walked more than R
	// steps without reaching a free row, which can only happen if an invariant was
	// violated. Per spec.md §5 ("panics are bugs") and §9, this is an explicit error
	// rather than undefined behaviour.
	ErrPredecessorCycle = fmt.Errorf("assignment: predecessor chain did not terminate (invariant violation)")

	// ErrInsufficientDistanceType is returned by HopcroftKarp when the longest
	// augmenting-path layer reaches the distance type's maximum representable value.
	ErrInsufficientDistanceType = fmt.Errorf("assignment: augmenting path layer exceeds distance type capacity")
)
