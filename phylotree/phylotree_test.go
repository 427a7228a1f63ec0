package phylotree_test

import (
	"testing"

	"github.com/nj-go/njoin/phylotree"
	"github.com/stretchr/testify/require"
)

func TestBuild_OneLeafPerName(t *testing.T) {
	t.Parallel()
	tr := phylotree.Build([]string{"A", "B", "C"})
	require.Equal(t, 3, tr.VertexCount())
	require.Equal(t, 0, tr.EdgeCount())
	for k, name := range []string{"A", "B", "C"} {
		v, ok := tr.LogicalVertex(k)
		require.True(t, ok)
		require.Equal(t, name, tr.Label(v))
	}
}

func TestMergeNeighborsCanonical_WikipediaShape(t *testing.T) {
	t.Parallel()
	tr := phylotree.Build([]string{"A", "B", "C", "D", "E"})

	// Merge (0,1) -> u, landing at compacted index 3 (m=5, b=1 != m-2=3,
	// so swap(0,3), swap(1,4), then overwrite 3 with u, drop 4).
	require.NoError(t, tr.MergeNeighborsCanonical(0, 1, 2, 3))
	require.Equal(t, 6, tr.VertexCount())
	require.Equal(t, 2, tr.EdgeCount())

	_, ok := tr.LogicalVertex(4)
	require.False(t, ok)
	uVertex, ok := tr.LogicalVertex(3)
	require.True(t, ok)
	require.Equal(t, "", tr.Label(uVertex))
	require.Equal(t, 2, tr.Degree(uVertex))
}

func TestMergeNeighborsPruned_RetiresOldLeavesOnly(t *testing.T) {
	t.Parallel()
	tr := phylotree.Build([]string{"A", "B", "C", "D", "E"})

	require.NoError(t, tr.MergeNeighborsPruned(0, 1, 5, 2, 3))
	_, ok := tr.LogicalVertex(0)
	require.False(t, ok)
	_, ok = tr.LogicalVertex(1)
	require.False(t, ok)
	uVertex, ok := tr.LogicalVertex(5)
	require.True(t, ok)
	require.Equal(t, "", tr.Label(uVertex))

	// untouched survivors keep their mapping
	for _, k := range []int{2, 3, 4} {
		_, ok := tr.LogicalVertex(k)
		require.True(t, ok)
	}
}

func TestTerminate_ThreeWayClose(t *testing.T) {
	t.Parallel()
	tr := phylotree.Build([]string{"X", "Y", "Z"})
	require.NoError(t, tr.Terminate(0, 1, 2, 0, 1, 2))
	require.Equal(t, 4, tr.VertexCount())
	require.Equal(t, 3, tr.EdgeCount())
}

func TestTerminate_UnknownLogicalID(t *testing.T) {
	t.Parallel()
	tr := phylotree.Build([]string{"X", "Y", "Z"})
	require.ErrorIs(t, tr.Terminate(0, 1, 99, 0, 1, 2), phylotree.ErrUnknownLogicalID)
}

func TestBFS_VisitsEveryVertex(t *testing.T) {
	t.Parallel()
	tr := phylotree.Build([]string{"A", "B", "C"})
	require.NoError(t, tr.Terminate(0, 1, 2, 1, 1, 1))

	root, ok := tr.LogicalVertex(0)
	require.True(t, ok)
	// root here is leaf A itself; walk from its one neighbor (v) instead to
	// cover the whole star.
	neighbors := tr.Neighbors(root)
	require.Len(t, neighbors, 1)

	result := tr.BFS(neighbors[0].To)
	require.Len(t, result.Order, 4)
}
