package assignment

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Assignment is one (row, column) pair of a computed matching.
type Assignment struct {
	Row, Column int
}

// LAPJVResult is the output of LAPJV: a perfect matching and its total cost.
type LAPJVResult struct {
	Assignments []Assignment
	TotalCost   float64
}

func sortAssignments(a []Assignment) {
	sort.Slice(a, func(i, j int) bool {
		if a[i].Row != a[j].Row {
			return a[i].Row < a[j].Row
		}
		return a[i].Column < a[j].Column
	})
}

func validateDenseCosts(costs mat.Matrix, maxCost float64) (n int, err error) {
	r, c := costs.Dims()
	if r != c {
		return 0, ErrNonSquareMatrix
	}
	if r == 0 {
		return 0, ErrEmptyMatrix
	}
	if math.IsInf(maxCost, 0) || math.IsNaN(maxCost) {
		return 0, ErrMaximalCostNotFinite
	}
	if maxCost <= 0 {
		return 0, ErrMaximalCostNotPositive
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := costs.At(i, j)
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
	return r, nil
}

// LAPJV solves the balanced assignment problem on an n x n dense cost matrix using
// the Jonker-Volgenant shortest-augmenting-path algorithm: column reduction,
// reduction transfer, augmenting row reduction (twice), then full augmentation for
// whatever rows remain unassigned. Grounded on original_source's
// traits/algorithms/weighted_assignment/lapjv/inner.rs.
func LAPJV(costs mat.Matrix, maxCost float64) (*LAPJVResult, error) {
	n, err := validateDenseCosts(costs, maxCost)
	if err != nil {
		return nil, err
	}
	cost := func(r, c int) float64 { return costs.At(r, c) }

	u := make([]float64, n)
	for c := range u {
		u[c] = maxCost
	}
	x := make([]int, n) // row -> column, -1 if unassigned
	y := make([]int, n) // column -> row, -1 if free
	for i := range x {
		x[i] = -1
		y[i] = -1
	}

	// --- Phase 1: column reduction ---
	claimedBy := make([]int, n)
	for c := 0; c < n; c++ {
		best := math.Inf(1)
		bestRow := -1
		for r := 0; r < n; r++ {
			v := cost(r, c)
			if v < best {
				best = v
				bestRow = r
			}
		}
		u[c] = best
		claimedBy[c] = bestRow
	}
	conflictOf := make([]int, n)
	for r := range conflictOf {
		conflictOf[r] = -1
	}
	for c := n - 1; c >= 0; c-- {
		r := claimedBy[c]
		if x[r] == -1 {
			x[r] = c
			y[c] = r
		} else {
			conflictOf[r] = c
		}
	}

	// --- Phase 2: reduction transfer ---
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
			secondBest := math.Inf(1)
			for c := 0; c < n; c++ {
				if c == assignedCol {
					continue
				}
				if reduced := cost(r, c) - u[c]; reduced < secondBest {
					secondBest = reduced
				}
			}
			if !math.IsInf(secondBest, 1) {
				u[assignedCol] -= secondBest
			}
		}
	}

	// --- Phase 3: augmenting row reduction, performed twice ---
	for pass := 0; pass < 2; pass++ {
		queue := unassigned
		unassigned = nil
		for qi := 0; qi < len(queue); qi++ {
			r := queue[qi]
			if x[r] != -1 {
				continue // already resolved by an earlier displacement this pass
			}
			bestCol, secondCol := -1, -1
			best, second := math.Inf(1), math.Inf(1)
			for c := 0; c < n; c++ {
				reduced := cost(r, c) - u[c]
				if reduced < best {
					secondCol, second = bestCol, best
					bestCol, best = c, reduced
				} else if reduced < second {
					secondCol, second = c, reduced
				}
			}
			chosen := bestCol
			if best < second {
				u[bestCol] -= second - best
			} else if y[bestCol] != -1 {
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

	// --- Phase 4: augmentation for whatever remains unassigned ---
	state := newDenseAugmentationState(n, cost, u, y)
	for _, r := range unassigned {
		if x[r] != -1 {
			continue
		}
		if err := state.augment(r, x); err != nil {
			return nil, err
		}
	}

	result := &LAPJVResult{Assignments: make([]Assignment, 0, n)}
	for r := 0; r < n; r++ {
		result.Assignments = append(result.Assignments, Assignment{Row: r, Column: x[r]})
		result.TotalCost += cost(r, x[r])
	}
	sortAssignments(result.Assignments)
	return result, nil
}
