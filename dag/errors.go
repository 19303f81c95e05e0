// Package dag implements topological ordering and information-content-based
// semantic similarity measures (Resnik, Lin, Wu-Palmer) over directed acyclic graphs
// backed by the sparsegraph CSR substrate.
package dag

import "fmt"

var (
	// ErrCycle is returned by Kahn when not every node is visited: the graph has at
	// least one cycle and therefore no topological order.
	ErrCycle = fmt.Errorf("dag: graph contains a cycle")

	// ErrNotDag is returned by ComputeInformationContent when TopologicalSort (Kahn)
	// fails on the input graph.
	ErrNotDag = fmt.Errorf("dag: graph is not a DAG")

	// ErrSinkNodeZeroOccurrence is returned when a sink node (out-degree 0,
	// including singletons) has a zero occurrence count: its information content
	// would be infinite.
	ErrSinkNodeZeroOccurrence = fmt.Errorf("dag: sink node has zero occurrence count")
)

// UnequalOccurrenceSizeError reports that the occurrences slice passed to
// ComputeInformationContent does not have one entry per node.
type UnequalOccurrenceSizeError struct {
	Expected, Found int
}

func (e *UnequalOccurrenceSizeError) Error() string {
	return fmt.Sprintf("dag: expected %d occurrence counts, found %d", e.Expected, e.Found)
}
