package prunedq

import "sort"

// entry is one element of a row's ordered set: a column index paired with
// the distance to it. Ordering is by (dist, col) - distance first, column
// second as a tiebreaker - never by distance alone, because distances can
// repeat and deletions must locate one exact (col, dist) pair (spec.md
// section 9: "the set order key is the pair (distance, column)").
type entry struct {
	col  int
	dist float64
}

// less reports whether a sorts strictly before b under (dist, col) order.
func (a entry) less(b entry) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.col < b.col
}

// orderedRow is a slice-backed ordered set of entries, kept sorted
// ascending by (dist, col). A slice is adequate here: rows shrink and grow
// by exactly one element per merge, and the dominant cost in the pruned
// search is the scan itself, not the maintenance of this structure.
type orderedRow struct {
	items []entry
}

// newOrderedRow builds an ordered row from the given entries (any order);
// the constructor sorts them once.
func newOrderedRow(items []entry) *orderedRow {
	sort.Slice(items, func(i, j int) bool { return items[i].less(items[j]) })

	return &orderedRow{items: items}
}

// insert adds e, keeping items sorted. Complexity: O(len(items)).
func (r *orderedRow) insert(e entry) {
	i := sort.Search(len(r.items), func(i int) bool { return !r.items[i].less(e) })
	r.items = append(r.items, entry{})
	copy(r.items[i+1:], r.items[i:])
	r.items[i] = e
}

// remove deletes the exact (col, dist) pair e from the row. It is a
// contract violation - the caller always knows e was present - if no exact
// match is found; remove reports that via its bool return so the caller can
// turn it into a proper error rather than silently corrupting state.
//
// Complexity: O(log len(items)) to locate + O(len(items)) to shift.
func (r *orderedRow) remove(e entry) bool {
	i := sort.Search(len(r.items), func(i int) bool { return !r.items[i].less(e) })
	if i >= len(r.items) || r.items[i] != e {
		return false
	}
	r.items = append(r.items[:i], r.items[i+1:]...)

	return true
}

// len reports the number of entries currently in the row.
func (r *orderedRow) len() int { return len(r.items) }
