package canonicalq_test

import (
	"testing"

	"github.com/nj-go/njoin/canonicalq"
	"github.com/stretchr/testify/require"
)

func wikipediaMatrix() [][]float64 {
	return [][]float64{
		{0, 5, 9, 9, 8},
		{5, 0, 10, 10, 9},
		{9, 10, 0, 8, 7},
		{9, 10, 8, 0, 3},
		{8, 9, 7, 3, 0},
	}
}

func sumColsInvariant(t *testing.T, q *canonicalq.Q) {
	t.Helper()
	n := q.NLeaves()
	for i := 0; i < n; i++ {
		var want float64
		for k := 0; k < n; k++ {
			d, err := q.Distance(i, k)
			require.NoError(t, err)
			want += d
		}
		got, err := q.SumCol(i)
		require.NoError(t, err)
		require.InDelta(t, want, got, 1e-9)
	}
}

func TestNew_TooFewTaxa(t *testing.T) {
	t.Parallel()
	_, err := canonicalq.New([][]float64{{0, 1}, {1, 0}})
	require.ErrorIs(t, err, canonicalq.ErrTooFewTaxa)
}

func TestNew_SumColsInvariant(t *testing.T) {
	t.Parallel()
	q, err := canonicalq.New(wikipediaMatrix())
	require.NoError(t, err)
	sumColsInvariant(t, q)
}

func TestFindNeighbors_Wikipedia(t *testing.T) {
	t.Parallel()
	q, err := canonicalq.New(wikipediaMatrix())
	require.NoError(t, err)
	i, j, err := q.FindNeighbors()
	require.NoError(t, err)
	require.Equal(t, 0, i)
	require.Equal(t, 1, j)
}

func TestUpdate_PreservesSumInvariantAcrossMerges(t *testing.T) {
	t.Parallel()
	q, err := canonicalq.New(wikipediaMatrix())
	require.NoError(t, err)

	for q.NLeaves() > 3 {
		i, j, err := q.FindNeighbors()
		require.NoError(t, err)
		_, _, err = q.NewNodeDistances(i, j)
		require.NoError(t, err)
		require.NoError(t, q.Update(i, j))
		sumColsInvariant(t, q)
	}
	require.Equal(t, 3, q.NLeaves())
}

func TestUpdate_OutOfRange(t *testing.T) {
	t.Parallel()
	q, err := canonicalq.New(wikipediaMatrix())
	require.NoError(t, err)
	require.ErrorIs(t, q.Update(0, 99), canonicalq.ErrRowMismatch)
	require.ErrorIs(t, q.Update(2, 2), canonicalq.ErrRowMismatch)
}
