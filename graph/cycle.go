package graph

import sparsegraph "github.com/sparsegraph/sparsegraph"

const (
	colorWhite = iota
	colorGray
	colorBlack
)

type cycleFrame struct {
	node      uint
	neighbors []uint
	cursor    int
}

// HasCycle reports whether g contains a directed cycle, using iterative DFS with
// three-color marking (white/gray/black) over an explicit stack rather than
// recursion, per spec.md's explicit recursion-to-iteration mandate for this
// operation (the original implementation recurses). A back edge to a gray node is a
// cycle. Grounded on original_source's traits/algorithms/cycle_detection.rs, with the
// iterative rewrite following the same structure as dag's resnikSearch/wuPalmerSearch
// explicit-stack DFS.
func HasCycle(g *sparsegraph.CSR2D[uint]) bool {
	n := int(g.NumberOfRows())
	color := make([]int, n)

	for start := 0; start < n; start++ {
		if color[start] != colorWhite {
			continue
		}
		color[start] = colorGray
		stack := []cycleFrame{{node: uint(start), neighbors: g.SparseRow(uint(start))}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.cursor >= len(top.neighbors) {
				color[top.node] = colorBlack
				stack = stack[:len(stack)-1]
				continue
			}
			next := top.neighbors[top.cursor]
			top.cursor++
			switch color[next] {
			case colorGray:
				return true
			case colorWhite:
				color[next] = colorGray
				stack = append(stack, cycleFrame{node: next, neighbors: g.SparseRow(next)})
			}
		}
	}

	return false
}
