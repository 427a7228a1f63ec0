package canonicalq

// Update merges rows i and j into a single new row at position M-2 and
// drops the old last row/column, per spec.md section 4.1:
//
//  1. Subtract column i and column j contributions from every sumCols[k].
//  2. Swap rows/columns so i and j land at the top two "doomed" slots
//     (M-2 and M-1), preserving every other row's identity.
//  3. Overwrite row/col M-2 with the merged row.
//  4. Drop the last row and column.
//  5. Recompute sumCols for the merged row and add its contribution to
//     every other row's sum.
//
// i and j are normalized so i<j if given in the other order. After Update,
// NLeaves() has decreased by one and the merged row lives at index M-2 of
// the new (shrunk) matrix.
//
// Complexity: O(M).
func (q *Q) Update(i, j int) error {
	m := len(q.matrix)
	if i < 0 || j < 0 || i >= m || j >= m || i == j {
		return ErrRowMismatch
	}
	if i > j {
		i, j = j, i
	}

	dij := q.matrix[i][j]

	// Stage 1: remove i and j contributions from every row sum.
	for k := 0; k < m; k++ {
		q.sumCols[k] -= q.matrix[i][k] + q.matrix[j][k]
	}

	// Stage 2: swap rows/cols so the doomed pair sits at {m-2, m-1}.
	if j == m-2 {
		q.swapRowCol(i, m-1)
	} else {
		q.swapRowCol(i, m-2)
		q.swapRowCol(j, m-1)
	}

	// Stage 3: overwrite the merged row/col (now at m-2) in place.
	for k := 0; k < m-2; k++ {
		v := (q.matrix[m-2][k] + q.matrix[m-1][k] - dij) / 2
		q.matrix[m-2][k] = v
		q.matrix[k][m-2] = v
	}

	// Stage 4: drop the last row and column.
	q.matrix = q.matrix[:m-1]
	q.sumCols = q.sumCols[:m-1]
	for k := range q.matrix {
		q.matrix[k] = q.matrix[k][:m-1]
	}

	// Stage 5: recompute sums for the merged row, propagate to the rest.
	var merged float64
	for k := 0; k < m-2; k++ {
		q.sumCols[k] += q.matrix[m-2][k]
		merged += q.matrix[m-2][k]
	}
	q.sumCols[m-2] = merged

	return nil
}

// swapRowCol swaps logical rows a and b: the row slices themselves (O(1))
// and, within every row, the two columns a and b (O(M)) - the matrix stays
// symmetric after the swap.
func (q *Q) swapRowCol(a, b int) {
	q.matrix[a], q.matrix[b] = q.matrix[b], q.matrix[a]
	q.sumCols[a], q.sumCols[b] = q.sumCols[b], q.sumCols[a]
	for _, row := range q.matrix {
		row[a], row[b] = row[b], row[a]
	}
}
