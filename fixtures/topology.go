package fixtures

import (
	"testing"

	"github.com/nj-go/njoin/phylotree"
	"github.com/stretchr/testify/require"
)

// AssertValidUnrootedTree checks tree against the unrooted-binary-tree shape
// invariant of spec.md section 8: exactly n labelled leaves of degree 1,
// n-2 internal vertices of degree 3, 2n-2 vertices and 2n-3 edges total,
// and full connectivity from any vertex.
//
// Grounded on algorithms/bfs.go's traversal pattern, retargeted at
// phylotree.Tree via its BFS method, per SPEC_FULL.md section 4.10.
func AssertValidUnrootedTree(t *testing.T, tree *phylotree.Tree, n int) {
	t.Helper()

	require.Equal(t, 2*n-2, tree.VertexCount())
	require.Equal(t, 2*n-3, tree.EdgeCount())

	leafCount := 0
	for v := 0; v < tree.VertexCount(); v++ {
		if tree.Label(v) != "" {
			leafCount++
			require.Equalf(t, 1, tree.Degree(v), "leaf vertex %d", v)
		} else {
			require.Equalf(t, 3, tree.Degree(v), "internal vertex %d", v)
		}
	}
	require.Equal(t, n, leafCount)

	result := tree.BFS(0)
	require.Len(t, result.Order, tree.VertexCount())
}
