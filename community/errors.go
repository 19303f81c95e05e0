// Package community implements Louvain modularity-based community detection over a
// square, symmetric weighted graph backed by the sparsegraph CSR substrate.
package community

import "fmt"

// Error taxonomy for LouvainConfig validation and graph-input validation, grounded
// on original_source's traits/algorithms/louvain.rs error enum and spec.md §7.
var (
	ErrInvalidResolution          = fmt.Errorf("community: resolution must be finite and positive")
	ErrInvalidModularityThreshold = fmt.Errorf("community: modularity threshold must be finite and non-negative")
	ErrInvalidMaxLevels           = fmt.Errorf("community: max levels must be at least 1")
	ErrInvalidMaxLocalPasses      = fmt.Errorf("community: max local passes must be at least 1")
	ErrNonSquareMatrix            = fmt.Errorf("community: matrix must be square")
	ErrUnrepresentableWeight      = fmt.Errorf("community: weight cannot be represented at this index width")
	ErrNonFiniteWeight            = fmt.Errorf("community: edge weights must be finite")
	ErrNonPositiveWeight          = fmt.Errorf("community: edge weights must be positive")
	ErrNonSymmetricEdge           = fmt.Errorf("community: matrix is not symmetric")
	ErrTooManyCommunities         = fmt.Errorf("community: community count exceeds the renumbering index width")
)

// WeightError reports a specific offending (row, column, weight) triple alongside
// the sentinel category (one of ErrNonFiniteWeight, ErrNonPositiveWeight,
// ErrNonSymmetricEdge). Grounded on the root package's OutOfBoundsError, which
// attaches coordinates to an error the same way.
type WeightError struct {
	Row, Column uint
	Weight      float64
	Err         error
}

func (e *WeightError) Error() string {
	return fmt.Sprintf("community: (%d,%d)=%v: %v", e.Row, e.Column, e.Weight, e.Err)
}

func (e *WeightError) Unwrap() error { return e.Err }
