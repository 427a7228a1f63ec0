package fixtures_test

import (
	"math/rand"
	"testing"

	"github.com/nj-go/njoin/fixtures"
	"github.com/nj-go/njoin/phylotree"
	"github.com/stretchr/testify/require"
)

func TestRandomAdditiveTree_ProducesValidShape(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	tr, m, err := fixtures.RandomAdditiveTree(8, fixtures.UniformWeightFn(0.5, 5.0), rng)
	require.NoError(t, err)
	require.Equal(t, 8, m.N())
	fixtures.AssertValidUnrootedTree(t, tr, 8)

	for i := 0; i < m.N(); i++ {
		require.InDelta(t, 0, m.D[i][i], 1e-9)
		for j := 0; j < m.N(); j++ {
			if i != j {
				require.Greater(t, m.D[i][j], 0.0)
			}
		}
	}
}

func TestRandomAdditiveTree_TooFewLeaves(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	_, _, err := fixtures.RandomAdditiveTree(1, fixtures.UniformWeightFn(1, 2), rng)
	require.ErrorIs(t, err, fixtures.ErrTooFewLeaves)
}

func TestRobinsonFoulds_SameTreeIsZero(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	tr, _, err := fixtures.RandomAdditiveTree(10, fixtures.UniformWeightFn(0.5, 5.0), rng)
	require.NoError(t, err)

	dist, err := fixtures.RobinsonFoulds(tr, tr)
	require.NoError(t, err)
	require.Equal(t, 0, dist)
}

func TestBranchScore_SameTreeIsZero(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	tr, _, err := fixtures.RandomAdditiveTree(10, fixtures.UniformWeightFn(0.5, 5.0), rng)
	require.NoError(t, err)

	score, err := fixtures.BranchScore(tr, tr)
	require.NoError(t, err)
	require.InDelta(t, 0, score, 1e-9)
}

func TestRobinsonFoulds_DifferentTopologyIsNonzero(t *testing.T) {
	t.Parallel()
	a := phylotree.Build([]string{"X", "Y", "Z", "W"})
	require.NoError(t, a.MergeNeighborsCanonical(0, 1, 1, 1))
	require.NoError(t, a.Terminate(0, 1, 2, 1, 1, 1))

	b := phylotree.Build([]string{"X", "Y", "Z", "W"})
	require.NoError(t, b.MergeNeighborsCanonical(0, 2, 1, 1))
	require.NoError(t, b.Terminate(0, 1, 2, 1, 1, 1))

	dist, err := fixtures.RobinsonFoulds(a, b)
	require.NoError(t, err)
	require.Greater(t, dist, 0)
}

func TestRobinsonFoulds_MismatchedLeafSets(t *testing.T) {
	t.Parallel()
	a := phylotree.Build([]string{"X", "Y", "Z"})
	require.NoError(t, a.Terminate(0, 1, 2, 1, 1, 1))
	b := phylotree.Build([]string{"X", "Y", "Q"})
	require.NoError(t, b.Terminate(0, 1, 2, 1, 1, 1))

	_, err := fixtures.RobinsonFoulds(a, b)
	require.ErrorIs(t, err, fixtures.ErrLeafSetMismatch)
}
