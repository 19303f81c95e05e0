package graph

import (
	"math"

	sparsegraph "github.com/sparsegraph/sparsegraph"
)

// unassignedComponent is the marker sentinel for a node not yet visited.
const unassignedComponent = math.MaxUint32

// ConnectedComponents labels every node with its (weakly) connected component using
// BFS with a double-buffered frontier, treating edges as undirected (both directions
// traversed via the graph and its transpose). Returns ErrTooManyComponents if the
// component count would exceed the marker's representable range. Grounded on
// original_source's traits/algorithms/connected_components.rs.
func ConnectedComponents(g *sparsegraph.CSR2D[uint]) ([]uint32, error) {
	n := int(g.NumberOfRows())
	transposed := g.Transpose()

	marker := make([]uint32, n)
	for i := range marker {
		marker[i] = unassignedComponent
	}

	var component uint32
	frontier := make([]uint32, 0, n)
	next := make([]uint32, 0, n)

	for start := 0; start < n; start++ {
		if marker[start] != unassignedComponent {
			continue
		}
		if component == unassignedComponent {
			return nil, ErrTooManyComponents
		}

		marker[start] = component
		frontier = frontier[:0]
		frontier = append(frontier, uint32(start))

		for len(frontier) > 0 {
			next = next[:0]
			for _, v := range frontier {
				for _, c := range g.SparseRow(uint(v)) {
					if marker[c] == unassignedComponent {
						marker[c] = component
						next = append(next, uint32(c))
					}
				}
				for _, c := range transposed.SparseRow(uint(v)) {
					if marker[c] == unassignedComponent {
						marker[c] = component
						next = append(next, uint32(c))
					}
				}
			}
			frontier, next = next, frontier
		}

		component++
	}

	return marker, nil
}
