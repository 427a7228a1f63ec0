package fixtures

import "github.com/nj-go/njoin/phylotree"

// leafNames returns the taxon names labelling t's leaf vertices, in
// vertex-id order (vertices labelled "" are internal nodes and are skipped).
func leafNames(t *phylotree.Tree) []string {
	names := make([]string, 0, t.VertexCount())
	for v := 0; v < t.VertexCount(); v++ {
		if name := t.Label(v); name != "" {
			names = append(names, name)
		}
	}

	return names
}

// buildLeafIndex assigns every shared leaf name a stable bit position
// (sorted order), independent of either tree's internal vertex-id layout -
// unlike original_source's tree_distances.rs, which indexes bit positions
// by raw node-iteration-order and so only agrees across two trees built
// with identical insertion order. Returns the index, the leaf count, and
// ErrLeafSetMismatch if a and b don't share exactly the same leaf set.
func buildLeafIndex(a, b *phylotree.Tree) (map[string]int, int, error) {
	namesA := leafNames(a)
	namesB := leafNames(b)
	if len(namesA) != len(namesB) {
		return nil, 0, ErrLeafSetMismatch
	}

	index := make(map[string]int, len(namesA))
	for i, name := range sortedStrings(namesA) {
		index[name] = i
	}
	for _, name := range namesB {
		if _, ok := index[name]; !ok {
			return nil, 0, ErrLeafSetMismatch
		}
	}

	return index, len(index), nil
}

// sortedStrings returns a sorted copy of ss.
func sortedStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}

// canonicalSplitKey returns a stable string encoding of a leaf bipartition,
// flipping every bit when bit 0 is set so the two complementary halves of
// the same split always produce the same key regardless of which side of
// the edge the caller's BFS happened to reach.
func canonicalSplitKey(set []bool) string {
	flip := set[0]
	buf := make([]byte, len(set))
	for i, on := range set {
		if on != flip {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	return string(buf)
}

// edgeSplit returns, for edge e, which leaves (by canonical bit position)
// are reachable from e.A without crossing directly into e.B - the
// bipartition that edge induces on the tree's leaf set.
func edgeSplit(t *phylotree.Tree, e phylotree.Edge, leafIndex map[string]int, nLeaves int) []bool {
	set := make([]bool, nLeaves)
	seen := map[int]bool{e.A: true, e.B: true}
	queue := []int{e.A}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if name := t.Label(v); name != "" {
			set[leafIndex[name]] = true
		}
		for _, nb := range t.Neighbors(v) {
			if seen[nb.To] {
				continue
			}
			seen[nb.To] = true
			queue = append(queue, nb.To)
		}
	}

	return set
}

// splitsWithWeights returns one entry per edge of t, keyed by the edge's
// canonical bipartition and valued by its weight.
func splitsWithWeights(t *phylotree.Tree, leafIndex map[string]int, nLeaves int) map[string]float64 {
	edges := t.Edges()
	out := make(map[string]float64, len(edges))
	for _, e := range edges {
		key := canonicalSplitKey(edgeSplit(t, e, leafIndex, nLeaves))
		out[key] = e.Weight
	}

	return out
}

// RobinsonFoulds counts the bipartitions present in one tree's edge set but
// not the other's - the symmetric difference of their split sets, per the
// GLOSSARY definition. a and b must share the same leaf label set.
//
// Grounded on original_source's tree_distances.rs robinson_foulds, with the
// leaf-indexing fix described on buildLeafIndex.
func RobinsonFoulds(a, b *phylotree.Tree) (int, error) {
	leafIndex, nLeaves, err := buildLeafIndex(a, b)
	if err != nil {
		return 0, err
	}

	splitsA := splitsWithWeights(a, leafIndex, nLeaves)
	splitsB := splitsWithWeights(b, leafIndex, nLeaves)

	dist := 0
	for k := range splitsA {
		if _, ok := splitsB[k]; !ok {
			dist++
		}
	}
	for k := range splitsB {
		if _, ok := splitsA[k]; !ok {
			dist++
		}
	}

	return dist, nil
}

// BranchScore returns the sum of squared weight differences over the union
// of a's and b's bipartitions (a split present in only one tree contributes
// its full weight squared, per original_source's tree_distances.rs
// branch_score). a and b must share the same leaf label set.
func BranchScore(a, b *phylotree.Tree) (float64, error) {
	leafIndex, nLeaves, err := buildLeafIndex(a, b)
	if err != nil {
		return 0, err
	}

	splitsA := splitsWithWeights(a, leafIndex, nLeaves)
	splitsB := splitsWithWeights(b, leafIndex, nLeaves)

	seen := make(map[string]bool, len(splitsA)+len(splitsB))
	var sum float64
	for k, wa := range splitsA {
		seen[k] = true
		diff := wa - splitsB[k]
		sum += diff * diff
	}
	for k, wb := range splitsB {
		if seen[k] {
			continue
		}
		sum += wb * wb
	}

	return sum, nil
}
