package phylotree

// RebaseLogicalIDs replaces the logical row-id -> vertex mapping with a
// dense one: newNodes[a] = oldNodes[order[a]] for every a, order[a]. This is
// the tree-side half of the hybrid bridge (spec.md section 4.5): when the
// driver hands a pruned Q-matrix's monotonic ids off to a freshly built
// canonical Q-matrix (whose rows are always 0..M-1), the tree builder's
// nodes map must be relabelled the same way, in place, so the graph
// vertices already created by the pruned phase are preserved rather than
// rebuilt.
//
// Complexity: O(len(order)).
func (t *Tree) RebaseLogicalIDs(order []int) error {
	rebased := make(map[int]int, len(order))
	for a, oldID := range order {
		v, ok := t.nodes[oldID]
		if !ok {
			return ErrUnknownLogicalID
		}
		rebased[a] = v
	}
	t.nodes = rebased

	return nil
}
