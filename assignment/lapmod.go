package assignment

import (
	"math"

	sparsegraph "github.com/sparsegraph/sparsegraph"
)

// LAPMOD solves the same assignment problem as LAPJV but operates directly on the
// CSR structure of a square ValuedCSR2D, without ever materializing a dense matrix.
// Costs are taken only from materialized edges; a row with no edges is immediately
// infeasible. Grounded on original_source's
// traits/algorithms/weighted_assignment/lapmod/inner.rs.
func LAPMOD(matrix *sparsegraph.ValuedCSR2D[uint], maxCost float64) (*LAPJVResult, error) {
	n, err := validateSparseSquare(matrix, maxCost)
	if err != nil {
		return nil, err
	}

	neighborValue := func(r int) (cols []uint, vals []float64) {
		cols = matrix.SparseRow(uint(r))
		vals = matrix.SparseRowValues(uint(r))
		return
	}

	u := make([]float64, n)
	for c := range u {
		u[c] = math.Inf(1)
	}
	x := make([]int, n)
	y := make([]int, n)
	for i := range x {
		x[i] = -1
		y[i] = -1
	}

	// --- column reduction sparse ---
	claimedBy := make([]int, n)
	for i := range claimedBy {
		claimedBy[i] = -1
	}
	for r := 0; r < n; r++ {
		cols, vals := neighborValue(r)
		if len(cols) == 0 {
			return nil, ErrInfeasibleAssignment
		}
		for i, c := range cols {
			if vals[i] < u[c] {
				u[c] = vals[i]
				claimedBy[c] = r
			}
		}
	}
	conflictOf := make([]int, n)
	for r := range conflictOf {
		conflictOf[r] = -1
	}
	for c := n - 1; c >= 0; c-- {
		r := claimedBy[c]
		if r == -1 {
			continue
		}
		if x[r] == -1 {
			x[r] = int(c)
			y[c] = r
		} else {
			conflictOf[r] = int(c)
		}
	}

	costAt := func(r int, c uint) (float64, bool) {
		return matrix.Value(uint(r), c)
	}

	// --- reduction transfer sparse ---
	var unassigned []int
	for r := 0; r < n; r++ {
		switch {
		case x[r] == -1:
			unassigned = append(unassigned, r)
		case conflictOf[r] != -1:
			other := conflictOf[r]
			if y[other] == -1 {
				y[x[r]] = -1
				x[r] = other
				y[other] = r
			}
		default:
			assignedCol := x[r]
			cols, vals := neighborValue(r)
			secondBest := math.Inf(1)
			for i, c := range cols {
				if int(c) == assignedCol {
					continue
				}
				if reduced := vals[i] - u[c]; reduced < secondBest {
					secondBest = reduced
				}
			}
			if !math.IsInf(secondBest, 1) {
				u[assignedCol] -= secondBest
			}
		}
	}

	// --- augmenting row reduction sparse, performed twice ---
	for pass := 0; pass < 2; pass++ {
		queue := unassigned
		unassigned = nil
		for qi := 0; qi < len(queue); qi++ {
			r := queue[qi]
			if x[r] != -1 {
				continue
			}
			cols, vals := neighborValue(r)
			if len(cols) == 0 {
				return nil, ErrInfeasibleAssignment
			}
			bestCol, secondCol := -1, -1
			best, second := math.Inf(1), math.Inf(1)
			for i, c := range cols {
				reduced := vals[i] - u[c]
				if reduced < best {
					secondCol, second = bestCol, best
					bestCol, best = int(c), reduced
				} else if reduced < second {
					secondCol, second = int(c), reduced
				}
			}
			chosen := bestCol
			if best < second {
				u[bestCol] -= second - best
			} else if secondCol != -1 && y[bestCol] != -1 {
				chosen = secondCol
			}
			if chosen == -1 {
				unassigned = append(unassigned, r)
				continue
			}
			displaced := y[chosen]
			y[chosen] = r
			x[r] = chosen
			if displaced != -1 {
				x[displaced] = -1
				// Only a strict dual decrease re-queues the displaced row in this
				// pass; on a tie it waits for the next pass, so rows cannot keep
				// displacing each other without progress.
				if best < second {
					queue = append(queue, displaced)
				} else {
					unassigned = append(unassigned, displaced)
				}
			}
		}
	}

	// --- augmentation sparse: Dijkstra restricted to CSR neighbours ---
	for _, r := range unassigned {
		if x[r] != -1 {
			continue
		}
		if err := sparseAugment(r, n, neighborValue, costAt, u, y, x); err != nil {
			return nil, err
		}
	}

	result := &LAPJVResult{Assignments: make([]Assignment, 0, n)}
	for r := 0; r < n; r++ {
		v, ok := costAt(r, uint(x[r]))
		if !ok {
			return nil, ErrInfeasibleAssignment
		}
		result.Assignments = append(result.Assignments, Assignment{Row: r, Column: x[r]})
		result.TotalCost += v
	}
	sortAssignments(result.Assignments)
	return result, nil
}

// sparseAugment runs one shortest-augmenting-path search expanding only through
// materialized CSR edges. Four parallel structures track state, mirroring
// lapmod/inner.rs's scan/todo/done/added bitmaps collapsed here into dist/pred/
// visited plus the "ready" settled list used for the dual update.
func sparseAugment(
	start, n int,
	neighborValue func(r int) ([]uint, []float64),
	costAt func(r int, c uint) (float64, bool),
	u []float64, y []int, x []int,
) error {
	dist := make([]float64, n)
	pred := make([]int, n)
	visited := make([]bool, n)
	reached := make([]bool, n)
	for c := range dist {
		dist[c] = math.Inf(1)
	}

	cols, vals := neighborValue(start)
	for i, c := range cols {
		dist[c] = vals[i] - u[c]
		pred[c] = startSentinel
		reached[c] = true
	}

	var ready []int
	sink := -1
	for step := 0; step <= n; step++ {
		best := -1
		bestDist := math.Inf(1)
		for c := 0; c < n; c++ {
			if reached[c] && !visited[c] && dist[c] < bestDist {
				bestDist = dist[c]
				best = c
			}
		}
		if best < 0 {
			return ErrInfeasibleAssignment
		}
		visited[best] = true
		ready = append(ready, best)

		if y[best] == -1 {
			sink = best
			break
		}
		r2 := y[best]
		// Subtract the reduced cost of r2's current edge: leaving it is part of the path.
		matched, _ := costAt(r2, uint(best))
		base := dist[best] - (matched - u[best])
		rcols, rvals := neighborValue(r2)
		for i, c := range rcols {
			if visited[c] {
				continue
			}
			alt := base + rvals[i] - u[c]
			if !reached[c] || alt < dist[c] {
				dist[c] = alt
				pred[c] = best
				reached[c] = true
			}
		}
		if step == n {
			return ErrPredecessorCycle
		}
	}
	if sink == -1 {
		return ErrInfeasibleAssignment
	}

	sinkDist := dist[sink]
	for _, c := range ready {
		u[c] += dist[c] - sinkDist
	}

	c := sink
	for step := 0; ; step++ {
		if step > n {
			return ErrPredecessorCycle
		}
		c1 := pred[c]
		if c1 == startSentinel {
			y[c] = start
			x[start] = c
			return nil
		}
		r1 := y[c1]
		y[c] = r1
		x[r1] = c
		c = c1
	}
}

func validateSparseSquare(matrix *sparsegraph.ValuedCSR2D[uint], maxCost float64) (int, error) {
	rows, cols := matrix.NumberOfRows(), matrix.NumberOfColumns()
	if rows != cols {
		return 0, ErrNonSquareMatrix
	}
	if rows == 0 {
		return 0, ErrEmptyMatrix
	}
	if math.IsInf(maxCost, 0) || math.IsNaN(maxCost) {
		return 0, ErrMaximalCostNotFinite
	}
	if maxCost <= 0 {
		return 0, ErrMaximalCostNotPositive
	}
	n := int(rows)
	for r := 0; r < n; r++ {
		for _, v := range matrix.SparseRowValues(uint(r)) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, ErrNonFiniteValues
			}
			if v < 0 {
				return 0, ErrNegativeValues
			}
			if v == 0 {
				return 0, ErrZeroValues
			}
			if v >= maxCost {
				return 0, ErrValueTooLarge
			}
		}
	}
	return n, nil
}
