package dag

import sparsegraph "github.com/sparsegraph/sparsegraph"

// TopologicalSort returns the topological order of graph's nodes (edges point from
// dependency to dependent, i.e. row -> column) using Kahn's algorithm: O(V+E), in-degree
// counted by scanning all row neighbours, nodes with in-degree 0 seed the frontier.
// Returns ErrCycle if not every node is visited. Grounded on original_source's
// traits/algorithms/dag/kahn.rs.
func TopologicalSort(graph *sparsegraph.CSR2D[uint]) ([]uint, error) {
	n := int(graph.NumberOfRows())
	inDegree := make([]int, n)
	for r := 0; r < n; r++ {
		for _, c := range graph.SparseRow(uint(r)) {
			inDegree[c]++
		}
	}

	var frontier []uint
	for v := 0; v < n; v++ {
		if inDegree[v] == 0 {
			frontier = append(frontier, uint(v))
		}
	}

	order := make([]uint, 0, n)
	for len(frontier) > 0 {
		v := frontier[0]
		frontier = frontier[1:]
		order = append(order, v)
		for _, c := range graph.SparseRow(v) {
			inDegree[c]--
			if inDegree[c] == 0 {
				frontier = append(frontier, c)
			}
		}
	}

	if len(order) != n {
		return nil, ErrCycle
	}
	return order, nil
}
