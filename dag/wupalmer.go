package dag

import sparsegraph "github.com/sparsegraph/sparsegraph"

// wpState is the per-subtree accumulator for Wu-Palmer: whether each of the two
// query nodes has been found below this point, their minimum depths if so, and the
// depth of the deepest common ancestor seen so far (-1 if none yet).
type wpState struct {
	found1, found2 bool
	depth1, depth2 int
	n3             int
}

func mergeWP(acc, incoming wpState) wpState {
	result := acc
	if incoming.found1 && (!result.found1 || incoming.depth1 < result.depth1) {
		result.found1 = true
		result.depth1 = incoming.depth1
	}
	if incoming.found2 && (!result.found2 || incoming.depth2 < result.depth2) {
		result.found2 = true
		result.depth2 = incoming.depth2
	}
	if incoming.found1 && incoming.found2 && incoming.n3 > result.n3 {
		result.n3 = incoming.n3
	}
	return result
}

type wpFrame struct {
	node     uint
	depth    int
	children []uint
	cursor   int
	acc      wpState
}

// WuPalmer computes Wu-Palmer similarity between a and b: for each root, an iterative
// post-order DFS tracks the minimum depth at which each query node is found and the
// deepest point at which both have been found (their lowest common ancestor), with
// depth(root) = 1. The result is 2*n3/(n1+n2), maximized over roots. Self-similarity
// is exactly 1.0. Grounded on original_source's traits/algorithms/dag/wu_palmer.rs.
func WuPalmer(graph *sparsegraph.CSR2D[uint], a, b uint) float64 {
	if a == b {
		return 1.0
	}

	best := 0.0
	for _, r := range findRoots(graph) {
		state := wuPalmerSearch(graph, a, b, r)
		if state.found1 && state.found2 && state.n3 >= 0 {
			n1, n2 := float64(state.depth1), float64(state.depth2)
			if n1+n2 > 0 {
				score := 2 * float64(state.n3) / (n1 + n2)
				if score > best {
					best = score
				}
			}
		}
	}
	return best
}

func wuPalmerSearch(graph *sparsegraph.CSR2D[uint], a, b, root uint) wpState {
	memo := make(map[uint]wpState)
	stack := []wpFrame{{node: root, depth: 1, children: graph.SparseRow(root), acc: wpState{n3: -1}}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.cursor >= len(top.children) {
			self := wpState{n3: -1}
			switch top.node {
			case a:
				self.found1, self.depth1 = true, top.depth
			case b:
				self.found2, self.depth2 = true, top.depth
			}
			result := mergeWP(top.acc, self)
			if result.found1 && result.found2 && result.n3 < 0 {
				result.n3 = top.depth
			}
			memo[top.node] = result
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := &stack[len(stack)-1]
				parent.acc = mergeWP(parent.acc, result)
			}
			continue
		}

		child := top.children[top.cursor]
		top.cursor++
		if cached, ok := memo[child]; ok {
			top.acc = mergeWP(top.acc, cached)
			continue
		}
		stack = append(stack, wpFrame{node: child, depth: top.depth + 1, children: graph.SparseRow(child), acc: wpState{n3: -1}})
	}

	return memo[root]
}
