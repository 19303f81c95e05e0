package graph

import sparsegraph "github.com/sparsegraph/sparsegraph"

// IsSimplePath reports whether g is a single simple path: exactly one root (in-degree
// 0), every node has out-degree at most 1, and following successors from the root
// visits every node exactly once. Grounded on original_source's
// traits/algorithms/simple_path.rs.
func IsSimplePath(g *sparsegraph.CSR2D[uint]) bool {
	n := int(g.NumberOfRows())
	if n == 0 {
		return true
	}

	inDegree := make([]int, n)
	for r := 0; r < n; r++ {
		row := g.SparseRow(uint(r))
		if len(row) > 1 {
			return false
		}
		for _, c := range row {
			inDegree[c]++
		}
	}

	root := -1
	for v := 0; v < n; v++ {
		if inDegree[v] == 0 {
			if root != -1 {
				return false
			}
			root = v
		} else if inDegree[v] > 1 {
			return false
		}
	}
	if root == -1 {
		return false
	}

	visited := make([]bool, n)
	visited[root] = true
	count := 1
	current := uint(root)
	for {
		row := g.SparseRow(current)
		if len(row) == 0 {
			break
		}
		next := row[0]
		if visited[next] {
			return false
		}
		visited[next] = true
		count++
		current = next
	}

	return count == n
}
