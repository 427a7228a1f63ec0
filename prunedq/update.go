package prunedq

// Update merges rows i and j into a new row, allocated the next integer id,
// and tombstones i and j in place (spec.md section 4.2): unlike the
// canonical matrix, nothing is compacted or renumbered, so every id issued
// over the life of the Q remains a stable identity.
//
// For every other active row m:
//  1. remove m's (i, d(i,m)) and (j, d(j,m)) candidates from its ordered set
//  2. compute the new distance d(new, m) = (d(i,m) + d(j,m) - d(i,j)) / 2
//  3. insert (new, d(new,m)) into m's ordered set and append d(new,m) to
//     m's distances row
//  4. adjust m's sumCols by -d(i,m) -d(j,m) +d(new,m)
//
// i and j are then tombstoned, the new row's own ordered set and sumCols
// are built from the entries just appended, and the descending-sumCols
// index permutation plus the global u_max bound are rebuilt.
//
// Complexity: O(N^2) candidate-set maintenance (each of up to N rows shifts
// its O(N) ordered slice on remove and insert) + O(N log N) to rebuild the
// index permutation.
func (q *Q) Update(i, j int) (int, error) {
	if i == j {
		return 0, ErrRowInactive
	}
	if i < 0 || j < 0 || i >= len(q.active) || j >= len(q.active) || !q.active[i] || !q.active[j] {
		return 0, ErrRowInactive
	}

	dij, err := q.distance(i, j)
	if err != nil {
		return 0, err
	}

	newID := len(q.distances)
	newItems := make([]entry, 0, q.nLeaves-2)
	var newSum float64

	for _, m := range q.indexes {
		if m == i || m == j {
			continue
		}

		dim, err := q.distance(i, m)
		if err != nil {
			return 0, err
		}
		djm, err := q.distance(j, m)
		if err != nil {
			return 0, err
		}

		if !q.trees[m].remove(entry{col: i, dist: dim}) {
			return 0, ErrContractBroken
		}
		if !q.trees[m].remove(entry{col: j, dist: djm}) {
			return 0, ErrContractBroken
		}

		dNew := (dim + djm - dij) / 2
		q.trees[m].insert(entry{col: newID, dist: dNew})
		q.distances[m] = append(q.distances[m], dNew)
		q.sumCols[m] += -dim - djm + dNew

		newItems = append(newItems, entry{col: m, dist: dNew})
		newSum += dNew
	}

	q.active[i] = false
	q.active[j] = false
	q.trees[i] = nil
	q.trees[j] = nil

	q.distances = append(q.distances, make([]float64, 0))
	q.sumCols = append(q.sumCols, newSum)
	q.trees = append(q.trees, newOrderedRow(newItems))
	q.active = append(q.active, true)

	q.nLeaves--
	q.rebuildIndexesAndBound()

	return newID, nil
}
