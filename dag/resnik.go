package dag

import sparsegraph "github.com/sparsegraph/sparsegraph"

// nodeState is the per-call DFS state for Resnik similarity: which of the two query
// nodes (if any) have been found in a subtree, and if both have, the information
// content of their deepest common ancestor seen so far.
type nodeState int

const (
	stateNotFound nodeState = iota
	stateLeft
	stateRight
	stateBoth
)

type resnikState struct {
	kind nodeState
	ic   float64
}

// combine implements spec.md §4.10a: the rule for merging a parent's accumulated
// state with one child's returned state while walking a subtree.
func combine(parent, child resnikState, parentIC float64) resnikState {
	switch {
	case (parent.kind == stateLeft && child.kind == stateRight) || (parent.kind == stateRight && child.kind == stateLeft):
		return resnikState{kind: stateBoth, ic: parentIC}
	case parent.kind == stateNotFound:
		return child
	case parent.kind == stateBoth && child.kind == stateBoth:
		if child.ic > parent.ic {
			return resnikState{kind: stateBoth, ic: child.ic}
		}
		return parent
	case child.kind == stateBoth:
		return child
	default:
		return parent
	}
}

// Resnik computes the Resnik similarity between nodes a and b: for each root r, an
// iterative post-order DFS memoized per-call finds the deepest-IC common ancestor of
// a and b in r's subtree; the result is the max over all roots. Self-similarity
// returns the node's own information content. Grounded on original_source's
// traits/algorithms/dag/resnik.rs.
func Resnik(graph *sparsegraph.CSR2D[uint], ic []float64, a, b uint) float64 {
	if a == b {
		return ic[a]
	}

	roots := findRoots(graph)
	best := 0.0
	for _, r := range roots {
		if state, ok := resnikSearch(graph, ic, a, b, r); ok && state.kind == stateBoth && state.ic > best {
			best = state.ic
		}
	}
	return best
}

func findRoots(graph *sparsegraph.CSR2D[uint]) []uint {
	n := int(graph.NumberOfRows())
	hasPredecessor := make([]bool, n)
	for r := 0; r < n; r++ {
		for _, c := range graph.SparseRow(uint(r)) {
			hasPredecessor[c] = true
		}
	}
	var roots []uint
	for v := 0; v < n; v++ {
		if !hasPredecessor[v] {
			roots = append(roots, uint(v))
		}
	}
	return roots
}

type resnikFrame struct {
	node     uint
	children []uint
	cursor   int
	acc      resnikState
}

// resnikSearch runs one memoized iterative post-order DFS from root, looking for a
// and b. Memoization is keyed per-call by node id so diamond subgraphs are only
// processed once, per spec.md's explicit requirement.
func resnikSearch(graph *sparsegraph.CSR2D[uint], ic []float64, a, b, root uint) (resnikState, bool) {
	memo := make(map[uint]resnikState)
	stack := []resnikFrame{{node: root, children: graph.SparseRow(root)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.cursor >= len(top.children) {
			var self resnikState
			switch top.node {
			case a:
				self = resnikState{kind: stateLeft}
			case b:
				self = resnikState{kind: stateRight}
			default:
				self = resnikState{kind: stateNotFound}
			}
			result := combine(top.acc, self, ic[top.node])
			memo[top.node] = result
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := &stack[len(stack)-1]
				parent.acc = combine(parent.acc, result, ic[parent.node])
			}
			continue
		}

		child := top.children[top.cursor]
		top.cursor++
		if cached, ok := memo[child]; ok {
			top.acc = combine(top.acc, cached, ic[top.node])
			continue
		}
		stack = append(stack, resnikFrame{node: child, children: graph.SparseRow(child)})
	}

	state, ok := memo[root]
	return state, ok
}
