package graph

import sparsegraph "github.com/sparsegraph/sparsegraph"

// NodeKind classifies a node by its in-degree/out-degree: Root (in-degree 0),
// Sink (out-degree 0), Singleton (both), or Interior (neither).
type NodeKind int

const (
	Interior NodeKind = iota
	Root
	Sink
	Singleton
)

// Classify scans in-degrees and out-degrees once and returns every node's NodeKind.
// Grounded on original_source's traits/algorithms/node_predicates.rs.
func Classify(g *sparsegraph.CSR2D[uint]) []NodeKind {
	n := int(g.NumberOfRows())
	inDegree := make([]int, n)
	outDegree := make([]int, n)
	for r := 0; r < n; r++ {
		row := g.SparseRow(uint(r))
		outDegree[r] = len(row)
		for _, c := range row {
			inDegree[c]++
		}
	}

	kinds := make([]NodeKind, n)
	for v := 0; v < n; v++ {
		switch {
		case inDegree[v] == 0 && outDegree[v] == 0:
			kinds[v] = Singleton
		case inDegree[v] == 0:
			kinds[v] = Root
		case outDegree[v] == 0:
			kinds[v] = Sink
		default:
			kinds[v] = Interior
		}
	}
	return kinds
}

// IsRoot, IsSink and IsSingleton are single-node convenience wrappers over the
// degree scan Classify performs in bulk; prefer Classify when checking many nodes.
func IsRoot(g *sparsegraph.CSR2D[uint], node uint) bool {
	for r := 0; r < int(g.NumberOfRows()); r++ {
		for _, c := range g.SparseRow(uint(r)) {
			if c == node {
				return false
			}
		}
	}
	return true
}

func IsSink(g *sparsegraph.CSR2D[uint], node uint) bool {
	return len(g.SparseRow(node)) == 0
}

func IsSingleton(g *sparsegraph.CSR2D[uint], node uint) bool {
	return IsSink(g, node) && IsRoot(g, node)
}
