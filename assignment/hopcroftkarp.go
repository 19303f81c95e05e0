package assignment

import (
	"math"

	sparsegraph "github.com/sparsegraph/sparsegraph"
)

// HopcroftKarpResult is a maximum cardinality matching on a bipartite graph.
type HopcroftKarpResult struct {
	Assignments []Assignment
}

const hopcroftKarpInfinity = math.MaxUint32

// HopcroftKarp finds a maximum cardinality matching on the bipartite graph defined by
// the nonzeros of matrix (rows on the left, columns on the right) using layered BFS
// plus an iterative augmenting-path DFS. The DFS is written with an explicit stack of
// (row, neighbours, cursor, viaColumn) frames rather than recursion, per spec.md's
// recursion-to-iteration design note, bounding stack depth on deep augmenting paths.
// If the longest augmenting path reaches hopcroftKarpInfinity-1 layers,
// ErrInsufficientDistanceType is returned (the distance counter would overflow).
// Grounded on original_source's traits/algorithms/assignment/hopcroft_karp.rs and
// hopcroft_karp/partial_assignment.rs.
func HopcroftKarp(matrix *sparsegraph.CSR2D[uint]) (*HopcroftKarpResult, error) {
	nr := int(matrix.NumberOfRows())
	nc := int(matrix.NumberOfColumns())

	matchRow := make([]int, nr) // row -> column, -1 if unmatched
	matchCol := make([]int, nc) // column -> row, -1 if unmatched
	for i := range matchRow {
		matchRow[i] = -1
	}
	for i := range matchCol {
		matchCol[i] = -1
	}

	dist := make([]uint32, nr)

	bfs := func() (foundAugmenting bool, err error) {
		var queue []int
		for r := 0; r < nr; r++ {
			if matchRow[r] == -1 {
				dist[r] = 0
				queue = append(queue, r)
			} else {
				dist[r] = hopcroftKarpInfinity
			}
		}
		foundFreeSink := false
		for qi := 0; qi < len(queue); qi++ {
			r := queue[qi]
			if dist[r] >= hopcroftKarpInfinity-1 {
				return false, ErrInsufficientDistanceType
			}
			for _, c := range matrix.SparseRow(uint(r)) {
				owner := matchCol[c]
				if owner == -1 {
					foundFreeSink = true
					continue
				}
				if dist[owner] == hopcroftKarpInfinity {
					dist[owner] = dist[r] + 1
					queue = append(queue, owner)
				}
			}
		}
		return foundFreeSink, nil
	}

	for {
		found, err := bfs()
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		for r := 0; r < nr; r++ {
			if matchRow[r] == -1 {
				if _, err := augmentingPath(matrix, matchRow, matchCol, dist, r); err != nil {
					return nil, err
				}
			}
		}
	}

	result := &HopcroftKarpResult{}
	for r := 0; r < nr; r++ {
		if matchRow[r] != -1 {
			result.Assignments = append(result.Assignments, Assignment{Row: r, Column: matchRow[r]})
		}
	}
	sortAssignments(result.Assignments)
	return result, nil
}

// frame is one level of the explicit augmenting-path stack: the row being explored,
// its CSR neighbour list, a cursor into it, and the column that led here from the
// parent frame (viaColumn), used to flip the match chain once a free column is found.
type frame struct {
	row       int
	neighbors []uint
	cursor    int
	viaColumn uint
}

// augmentingPath is the iterative, explicit-stack augmenting-path DFS from `start`.
// Mirrors partial_assignment.rs's dfs(): an explicit stack takes the place of
// recursion so the path length is bounded only by heap memory, not call-stack depth.
func augmentingPath(matrix *sparsegraph.CSR2D[uint], matchRow, matchCol []int, dist []uint32, start int) (bool, error) {
	stack := []frame{{row: start, neighbors: matrix.SparseRow(uint(start))}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		advanced := false
		for top.cursor < len(top.neighbors) {
			c := top.neighbors[top.cursor]
			top.cursor++
			owner := matchCol[c]
			if owner == -1 {
				// Found an augmenting path: flip every edge from the sink back to
				// start using the viaColumn recorded on each frame.
				childCol := c
				for i := len(stack) - 1; i >= 0; i-- {
					r := stack[i].row
					matchRow[r] = int(childCol)
					matchCol[childCol] = r
					childCol = stack[i].viaColumn
				}
				return true, nil
			}
			if dist[owner] == dist[top.row]+1 {
				stack = append(stack, frame{row: owner, neighbors: matrix.SparseRow(uint(owner)), viaColumn: c})
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}
		dist[top.row] = hopcroftKarpInfinity
		stack = stack[:len(stack)-1]
	}
	return false, nil
}
