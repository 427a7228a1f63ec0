package nj_test

import (
	"math/rand"
	"testing"

	"github.com/nj-go/njoin/fixtures"
	"github.com/nj-go/njoin/nj"
	"github.com/stretchr/testify/require"
)

// TestRun_StrategiesAgreeOnRandomAdditiveTree exercises Scenario R: given a
// random additive tree over N=20 leaves, canonical, pruned and hybrid (at
// several canonical_iters cutovers) all reconstruct topologically
// equivalent trees - their pairwise branch-score distance must fall below
// the floating-point tolerance a shared additive input guarantees.
func TestRun_StrategiesAgreeOnRandomAdditiveTree(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))

	const n = 20
	_, m, err := fixtures.RandomAdditiveTree(n, fixtures.UniformWeightFn(0.5, 5.0), rng)
	require.NoError(t, err)

	canonical, err := nj.Run(m, nj.Options{Strategy: nj.StrategyCanonical, Threads: 1, ChunkSize: 1})
	require.NoError(t, err)

	pruned, err := nj.Run(m, nj.Options{Strategy: nj.StrategyPruned, Threads: 4, ChunkSize: 3})
	require.NoError(t, err)

	score, err := fixtures.BranchScore(canonical, pruned)
	require.NoError(t, err)
	require.InDelta(t, 0, score, 1e-9)

	for _, ci := range []int{4, 10, 16} {
		hybrid, err := nj.Run(m, nj.Options{
			Strategy:       nj.StrategyHybrid,
			Threads:        2,
			ChunkSize:      2,
			CanonicalIters: ci,
		})
		require.NoErrorf(t, err, "canonical_iters=%d", ci)

		score, err := fixtures.BranchScore(canonical, hybrid)
		require.NoErrorf(t, err, "canonical_iters=%d", ci)
		require.InDeltaf(t, 0, score, 1e-9, "canonical_iters=%d", ci)
	}
}
