package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/nj-go/njoin/distmatrix"
	"github.com/nj-go/njoin/phylotree"
)

// WeightFn draws one edge weight from rng.
type WeightFn func(rng *rand.Rand) float64

// UniformWeightFn returns a WeightFn drawing uniformly from [min, max).
func UniformWeightFn(min, max float64) WeightFn {
	return func(rng *rand.Rand) float64 { return min + rng.Float64()*(max-min) }
}

// RandomAdditiveTree grows a random unrooted binary tree over n labelled
// leaves ("T0".."T(n-1)") and returns it alongside the patristic distance
// matrix it induces (the sum of edge weights on the path between every pair
// of leaves), which any Neighbor-Joining strategy is expected to reconstruct
// up to the branch-score tolerance of spec.md section 8's Scenario R.
//
// Construction repeatedly draws two members of a working pool and joins
// them under a fresh internal vertex, except for the final join, which
// connects the pool's last two members directly - collapsing the
// original_source two-phase "build a rooted tree, then delete its degree-2
// root and reconnect its two neighbors" construction into one pass, since
// phylotree.Tree never needs to support vertex removal. Both produce the
// same shape: n leaves, n-2 internal vertices of degree 3, 2n-3 edges.
func RandomAdditiveTree(n int, wfn WeightFn, rng *rand.Rand) (*phylotree.Tree, *distmatrix.Matrix, error) {
	if n < 2 {
		return nil, nil, ErrTooFewLeaves
	}

	t := phylotree.NewEmpty()
	names := make([]string, n)
	leafIDs := make([]int, n)
	pool := make([]int, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("T%d", i)
		v := t.NewVertex(names[i])
		leafIDs[i] = v
		pool[i] = v
	}

	for len(pool) > 1 {
		ia := rng.Intn(len(pool))
		a := pool[ia]
		pool[ia] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		ib := rng.Intn(len(pool))
		b := pool[ib]
		pool[ib] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		if len(pool) == 0 {
			if err := t.Connect(a, b, wfn(rng)); err != nil {
				return nil, nil, err
			}
			break
		}

		u := t.NewVertex("")
		if err := t.Connect(u, a, wfn(rng)); err != nil {
			return nil, nil, err
		}
		if err := t.Connect(u, b, wfn(rng)); err != nil {
			return nil, nil, err
		}
		pool = append(pool, u)
	}

	m, err := patristicDistances(t, leafIDs, names)
	if err != nil {
		return nil, nil, err
	}

	return t, m, nil
}

// weightedBFS returns the cumulative edge-weight distance from src to every
// vertex reachable from it. Unlike Tree.BFS (which only tracks hop depth),
// the patristic distance matrix needs the sum of edge weights on the path.
func weightedBFS(t *phylotree.Tree, src int) map[int]float64 {
	dist := map[int]float64{src: 0}
	queue := []int{src}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, nb := range t.Neighbors(v) {
			if _, seen := dist[nb.To]; seen {
				continue
			}
			dist[nb.To] = dist[v] + nb.Weight
			queue = append(queue, nb.To)
		}
	}

	return dist
}

// patristicDistances assembles the NxN distance matrix induced by summing
// edge weights along the tree path between every pair of leafIDs.
//
// Complexity: O(N*(V+E)).
func patristicDistances(t *phylotree.Tree, leafIDs []int, names []string) (*distmatrix.Matrix, error) {
	n := len(leafIDs)
	d := make([][]float64, n)
	for i, src := range leafIDs {
		dist := weightedBFS(t, src)
		d[i] = make([]float64, n)
		for j, dst := range leafIDs {
			d[i][j] = dist[dst]
		}
	}

	return distmatrix.New(d, names)
}
