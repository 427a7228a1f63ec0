// Package canonicalq implements the canonical (textbook, dense) Neighbor-
// Joining Q-matrix: an M x M distance table plus a row-sum vector, scanned
// in full on every search and compacted by swap-and-pop on every merge.
//
// Errors:
//
//	ErrTooFewTaxa       - fewer than 3 taxa; canonical NJ is undefined below that.
//	ErrNoActivePair     - find_neighbors called with fewer than 2 active rows.
//	ErrRowMismatch      - i or j is out of the current active range.
package canonicalq

import "errors"

// Sentinel errors for canonical Q-matrix operations.
var (
	// ErrTooFewTaxa indicates the input distance matrix has fewer than 3 taxa.
	ErrTooFewTaxa = errors.New("canonicalq: fewer than 3 taxa")

	// ErrNoActivePair indicates FindNeighbors was called with fewer than 2 active rows.
	ErrNoActivePair = errors.New("canonicalq: no active pair to search")

	// ErrRowMismatch indicates a merge or distance lookup referenced an out-of-range row.
	ErrRowMismatch = errors.New("canonicalq: row index out of range")
)

// Q is the canonical, dense Q-matrix described in spec.md section 4.1.
//
// matrix is the currently active M x M square (M starts at N and shrinks by
// one per merge); sumCols[i] is always the sum of matrix row i over the
// active columns. Merges compact matrix and sumCols in place via
// swap-and-pop, so row/column indices are logical positions in the current
// (shrinking) square, not stable identities - callers track identity via the
// tree builder's own index remapping (see phylotree.Tree).
type Q struct {
	matrix  [][]float64
	sumCols []float64
}

// New builds a canonical Q-matrix from a dense symmetric distance matrix,
// copying d so the caller's matrix is left untouched.
//
// Complexity: O(N^2).
func New(d [][]float64) (*Q, error) {
	n := len(d)
	if n < 3 {
		return nil, ErrTooFewTaxa
	}
	m := make([][]float64, n)
	sums := make([]float64, n)
	for i, row := range d {
		m[i] = append([]float64(nil), row...)
		var s float64
		for _, v := range row {
			s += v
		}
		sums[i] = s
	}

	return &Q{matrix: m, sumCols: sums}, nil
}

// NLeaves returns the current number of active rows (M).
//
// Complexity: O(1).
func (q *Q) NLeaves() int { return len(q.matrix) }

// Distance returns matrix[i][j].
//
// Complexity: O(1).
func (q *Q) Distance(i, j int) (float64, error) {
	if i < 0 || j < 0 || i >= len(q.matrix) || j >= len(q.matrix) {
		return 0, ErrRowMismatch
	}

	return q.matrix[i][j], nil
}

// SumCol returns the current row sum s_i for active row i.
//
// Complexity: O(1).
func (q *Q) SumCol(i int) (float64, error) {
	if i < 0 || i >= len(q.sumCols) {
		return 0, ErrRowMismatch
	}

	return q.sumCols[i], nil
}
