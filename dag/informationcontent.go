package dag

import (
	"math"

	sparsegraph "github.com/sparsegraph/sparsegraph"
)

// InformationContent holds, for every node, its propagated occurrence count and its
// information content −ln(propagated / total), where total is the sum of propagated
// counts at the graph's roots (nodes with no predecessors).
type InformationContent struct {
	Propagated []uint64
	IC         []float64
}

// ComputeInformationContent requires graph to be a DAG (verified via
// TopologicalSort) and len(occurrences) == graph.NumberOfRows(). Every sink (out-degree
// 0, including singletons) must have a strictly positive occurrence count. Occurrences
// propagate in reverse topological order (sinks first):
// propagated[v] = occurrences[v] + Σ propagated[successor], using saturating uint64
// addition. Grounded on original_source's
// traits/algorithms/dag/information_content.rs.
func ComputeInformationContent(graph *sparsegraph.CSR2D[uint], occurrences []uint64) (*InformationContent, error) {
	n := int(graph.NumberOfRows())
	if len(occurrences) != n {
		return nil, &UnequalOccurrenceSizeError{Expected: n, Found: len(occurrences)}
	}

	order, err := TopologicalSort(graph)
	if err != nil {
		return nil, ErrNotDag
	}

	inDegree := make([]int, n)
	for r := 0; r < n; r++ {
		for _, c := range graph.SparseRow(uint(r)) {
			inDegree[c]++
		}
	}

	for v := 0; v < n; v++ {
		if len(graph.SparseRow(uint(v))) == 0 && occurrences[v] == 0 {
			return nil, ErrSinkNodeZeroOccurrence
		}
	}

	propagated := make([]uint64, n)
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		total := occurrences[v]
		for _, c := range graph.SparseRow(v) {
			total = saturatingAdd(total, propagated[c])
		}
		propagated[v] = total
	}

	var totalOccurrences uint64
	for v := 0; v < n; v++ {
		if inDegree[v] == 0 {
			totalOccurrences = saturatingAdd(totalOccurrences, propagated[v])
		}
	}

	ic := make([]float64, n)
	for v := 0; v < n; v++ {
		ic[v] = -math.Log(float64(propagated[v]) / float64(totalOccurrences))
	}

	return &InformationContent{Propagated: propagated, IC: ic}, nil
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}
