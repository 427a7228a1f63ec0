package prunedq

import (
	"sort"

	"github.com/nj-go/njoin/distmatrix"
)

// New builds a pruned Q-matrix from a validated distance matrix.
//
// Complexity: O(N^2 log N) (each of the N ordered rows is sorted once).
func New(m *distmatrix.Matrix) (*Q, error) {
	n := m.N()
	if n < 4 {
		return nil, ErrTooFewTaxa
	}

	distances := make([][]float64, n)
	sumCols := make([]float64, n)
	trees := make([]*orderedRow, n)
	active := make([]bool, n)

	for i := 0; i < n; i++ {
		row := make([]float64, 0, n-i-1)
		items := make([]entry, 0, n-1)
		var s float64
		for j := 0; j < n; j++ {
			d := m.D[i][j]
			s += d
			if j > i {
				row = append(row, d)
			}
			if j != i {
				items = append(items, entry{col: j, dist: d})
			}
		}
		distances[i] = row
		sumCols[i] = s
		trees[i] = newOrderedRow(items)
		active[i] = true
	}

	q := &Q{
		distances: distances,
		sumCols:   sumCols,
		trees:     trees,
		active:    active,
		nLeaves:   n,
		nTaxa:     n,
	}
	q.rebuildIndexesAndBound()

	return q, nil
}

// rebuildIndexesAndBound recomputes the descending-sumCols permutation of
// active rows and the global u_max bound from scratch.
//
// Complexity: O(N log N).
func (q *Q) rebuildIndexesAndBound() {
	idx := make([]int, 0, q.nLeaves)
	var uMax float64
	first := true
	for id, ok := range q.active {
		if !ok {
			continue
		}
		idx = append(idx, id)
		if first || q.sumCols[id] > uMax {
			uMax = q.sumCols[id]
			first = false
		}
	}
	sort.Slice(idx, func(a, b int) bool { return q.sumCols[idx[a]] > q.sumCols[idx[b]] })
	q.indexes = idx
	q.uMax = uMax
}
