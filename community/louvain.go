package community

import (
	"math"
	"sort"

	sparsegraph "github.com/sparsegraph/sparsegraph"
)

// mix_seed constants from spec.md §4.9 / original_source's louvain.rs: load-bearing,
// not library defaults. Changing either changes every golden determinism value.
const (
	mixSeedLevel = 0x9E3779B97F4A7C15
	mixSeedPass  = 0xD1B54A32D192ED03
)

// LouvainConfig configures one run of Louvain. Zero-value configs are invalid; use
// DefaultLouvainConfig and override selectively.
type LouvainConfig struct {
	Resolution          float64
	ModularityThreshold float64
	MaxLevels           int
	MaxLocalPasses      int
	Seed                uint64
}

// DefaultLouvainConfig returns the spec-mandated defaults: Resolution=1.0,
// ModularityThreshold=1e-7, MaxLevels=100, MaxLocalPasses=100, Seed=42.
func DefaultLouvainConfig() LouvainConfig {
	return LouvainConfig{
		Resolution:          1.0,
		ModularityThreshold: 1e-7,
		MaxLevels:           100,
		MaxLocalPasses:      100,
		Seed:                42,
	}
}

func (c LouvainConfig) validate() error {
	if math.IsNaN(c.Resolution) || math.IsInf(c.Resolution, 0) || c.Resolution <= 0 {
		return ErrInvalidResolution
	}
	if math.IsNaN(c.ModularityThreshold) || math.IsInf(c.ModularityThreshold, 0) || c.ModularityThreshold < 0 {
		return ErrInvalidModularityThreshold
	}
	if c.MaxLevels < 1 {
		return ErrInvalidMaxLevels
	}
	if c.MaxLocalPasses < 1 {
		return ErrInvalidMaxLocalPasses
	}
	return nil
}

// Level is one level of the Louvain hierarchy: the community label of every original
// node at this level, the level's modularity, and how many node moves local moving
// performed before it converged.
type Level struct {
	Labels     []uint
	Modularity float64
	Moves      int
}

// Run executes Louvain on a square, symmetric, positively-weighted matrix, returning
// one Level per coarsening step. Grounded on original_source's
// traits/algorithms/louvain.rs (Louvain::run and its per-level pipeline).
func Run(matrix *sparsegraph.ValuedCSR2D[uint], config LouvainConfig) ([]Level, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	n := int(matrix.NumberOfRows())
	if n != int(matrix.NumberOfColumns()) {
		return nil, ErrNonSquareMatrix
	}

	adj, err := buildAdjacency(matrix)
	if err != nil {
		return nil, err
	}

	originalN := n
	labels := make([]uint, originalN) // current per-original-node label
	for i := range labels {
		labels[i] = uint(i)
	}

	var levels []Level
	previousModularity := math.Inf(-1)

	for level := 0; level < config.MaxLevels; level++ {
		superN := len(adj)
		community, moves := localMoving(adj, config, level)
		k := renumber(community)
		if k > len(community) {
			return nil, ErrTooManyCommunities
		}

		q := modularity(adj, community, k, config.Resolution)

		projected := project(labels, community, superN)
		levels = append(levels, Level{Labels: projected, Modularity: q, Moves: moves})

		noCoarsening := k == superN
		converged := q-previousModularity < config.ModularityThreshold
		if noCoarsening || converged {
			break
		}
		previousModularity = q
		labels = projected
		adj = coarsen(adj, community, k)
	}

	return levels, nil
}

// weightedAdjacency is node i's neighbours and parallel edge weights, built once from
// the input matrix and rebuilt at every coarsening step from the induced graph.
type weightedAdjacency [][]neighbor

type neighbor struct {
	to     int
	weight float64
}

func buildAdjacency(matrix *sparsegraph.ValuedCSR2D[uint]) (weightedAdjacency, error) {
	n := int(matrix.NumberOfRows())
	adj := make(weightedAdjacency, n)
	for r := 0; r < n; r++ {
		cols := matrix.SparseRow(uint(r))
		vals := matrix.SparseRowValues(uint(r))
		for i, c := range cols {
			w := vals[i]
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, &WeightError{Row: uint(r), Column: c, Weight: w, Err: ErrNonFiniteWeight}
			}
			if w <= 0 {
				return nil, &WeightError{Row: uint(r), Column: c, Weight: w, Err: ErrNonPositiveWeight}
			}
			other, ok := matrix.Value(c, uint(r))
			if !ok || other != w {
				return nil, &WeightError{Row: uint(r), Column: c, Weight: w, Err: ErrNonSymmetricEdge}
			}
			adj[r] = append(adj[r], neighbor{to: int(c), weight: w})
		}
	}
	return adj, nil
}

// mixSeed derives the node-visitation order's seed for one (level, pass) pair.
func mixSeed(seed uint64, level, pass int) uint64 {
	return seed ^ (uint64(level) * mixSeedLevel) ^ (uint64(pass) * mixSeedPass)
}

// splitmix64 is a fast, deterministic PRNG step used purely to generate a
// reproducible node visitation permutation; the mix_seed value above, not this
// generator's internals, is what the determinism contract actually pins.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// visitOrder returns a deterministic permutation of 0..n-1 derived from seed via a
// Fisher-Yates shuffle driven by splitmix64.
func visitOrder(n int, seed uint64) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	state := seed
	for i := n - 1; i > 0; i-- {
		state = splitmix64(state)
		j := int(state % uint64(i+1))
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// localMoving performs up to config.MaxLocalPasses passes of single-node moves,
// returning each node's final community id (not yet renumbered contiguously) and the
// total number of moves performed. Grounded on louvain.rs's local_moving.
func localMoving(adj weightedAdjacency, config LouvainConfig, level int) ([]int, int) {
	n := len(adj)
	community := make([]int, n)
	communityWeight := make([]float64, n) // total incident weight of community c
	degree := make([]float64, n)
	totalWeight := 0.0
	for i := range community {
		community[i] = i
		for _, nb := range adj[i] {
			degree[i] += nb.weight
		}
		communityWeight[i] = degree[i]
		totalWeight += degree[i]
	}
	m2 := totalWeight // already counts each undirected edge from both endpoints

	totalMoves := 0
	scratch := make(map[int]float64)

	for pass := 0; pass < config.MaxLocalPasses; pass++ {
		order := visitOrder(n, mixSeed(config.Seed, level, pass))
		movesThisPass := 0

		for _, v := range order {
			current := community[v]

			for k := range scratch {
				delete(scratch, k)
			}
			for _, nb := range adj[v] {
				if nb.to == v {
					continue
				}
				scratch[community[nb.to]] += nb.weight
			}

			communityWeight[current] -= degree[v]

			bestCommunity := current
			bestGain := modularityGain(scratch[current], communityWeight[current], degree[v], m2, config.Resolution)

			candidates := make([]int, 0, len(scratch))
			for c := range scratch {
				candidates = append(candidates, c)
			}
			sort.Ints(candidates)

			for _, c := range candidates {
				gain := modularityGain(scratch[c], communityWeight[c], degree[v], m2, config.Resolution)
				if gain > bestGain || (gain == bestGain && c < bestCommunity) {
					bestGain = gain
					bestCommunity = c
				}
			}

			communityWeight[bestCommunity] += degree[v]
			if bestCommunity != current {
				community[v] = bestCommunity
				movesThisPass++
			}
		}

		totalMoves += movesThisPass
		if movesThisPass == 0 {
			break
		}
	}

	return community, totalMoves
}

// modularityGain is the change in modularity from moving a node with total degree
// nodeDegree, weight linkToCommunity already incident to the candidate community,
// into a community whose current total incident weight (excluding the node itself)
// is communityTotal, scaled by resolution gamma, over twice the graph's total weight.
func modularityGain(linkToCommunity, communityTotal, nodeDegree, m2 float64, gamma float64) float64 {
	if m2 == 0 {
		return 0
	}
	return linkToCommunity/m2 - gamma*communityTotal*nodeDegree/(m2*m2)
}

// renumber relabels community ids contiguously starting at 0, preferring the order in
// which ids are first encountered by node index, and returns the count of distinct
// communities.
func renumber(community []int) int {
	next := 0
	seen := make(map[int]int)
	for i, c := range community {
		id, ok := seen[c]
		if !ok {
			id = next
			seen[c] = id
			next++
		}
		community[i] = id
	}
	return next
}

// modularity computes Σ (internal/2m) − γ·(total/2m)² over communities 0..k.
func modularity(adj weightedAdjacency, community []int, k int, gamma float64) float64 {
	internal := make([]float64, k)
	total := make([]float64, k)
	m2 := 0.0
	for v, neighbors := range adj {
		cv := community[v]
		for _, nb := range neighbors {
			m2 += nb.weight
			total[cv] += nb.weight
			if community[nb.to] == cv {
				internal[cv] += nb.weight
			}
		}
	}
	if m2 == 0 {
		return 0
	}
	q := 0.0
	for c := 0; c < k; c++ {
		q += internal[c]/m2 - gamma*(total[c]/m2)*(total[c]/m2)
	}
	return q
}

// project maps each original node's label through the current level's community
// assignment: projected[i] = community[labels[i]].
func project(labels []uint, community []int, superN int) []uint {
	projected := make([]uint, len(labels))
	for i, l := range labels {
		idx := int(l)
		if idx >= superN {
			idx = superN - 1
		}
		projected[i] = uint(community[idx])
	}
	return projected
}

// coarsen builds the induced weighted graph over the k communities: edges aggregate
// by summing weights between every pair of super-nodes, both directions kept to
// preserve symmetry. Edge keys are collected into a map and then iterated in sorted
// (from, to) order before being appended, giving the same deterministic ordering a
// BTreeMap would (grounded on louvain.rs's coarsen, which aggregates via BTreeMap).
func coarsen(adj weightedAdjacency, community []int, k int) weightedAdjacency {
	type edgeKey struct{ from, to int }
	aggregated := make(map[edgeKey]float64)

	for v, neighbors := range adj {
		cv := community[v]
		for _, nb := range neighbors {
			cw := community[nb.to]
			aggregated[edgeKey{cv, cw}] += nb.weight
		}
	}

	keys := make([]edgeKey, 0, len(aggregated))
	for key := range aggregated {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})

	next := make(weightedAdjacency, k)
	for _, key := range keys {
		w := aggregated[key]
		next[key.from] = append(next[key.from], neighbor{to: key.to, weight: w})
	}
	return next
}
