package phylotree

// TraversalResult holds the outcome of a breadth-first walk of a Tree.
type TraversalResult struct {
	// Order is the sequence of visited vertex ids.
	Order []int
	// Depth maps vertex id to distance (edges) from the start.
	Depth map[int]int
	// Parent maps vertex id to its predecessor in the BFS tree.
	Parent map[int]int
}

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker holds the mutable state of one BFS execution, adapted from
// algorithms.BFS's walker (init/loop/dequeue/visit/enqueueNeighbors) but
// dropping the hook and context machinery the core package needs for
// general-purpose traversal and this package does not: topology checking
// only ever needs the full order, depth and parent maps.
type walker struct {
	tree  *Tree
	queue []queueItem
	res   *TraversalResult
	seen  map[int]bool
}

// BFS walks t starting at vertex start, visiting every reachable vertex.
//
// Complexity: O(V+E).
func (t *Tree) BFS(start int) *TraversalResult {
	res := &TraversalResult{
		Order:  make([]int, 0, t.VertexCount()),
		Depth:  map[int]int{start: 0},
		Parent: make(map[int]int),
	}
	w := &walker{
		tree:  t,
		queue: []queueItem{{id: start, depth: 0}},
		res:   res,
		seen:  map[int]bool{start: true},
	}
	w.loop()

	return res
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		for _, n := range w.tree.Neighbors(item.id) {
			if w.seen[n.To] {
				continue
			}
			w.seen[n.To] = true
			w.res.Parent[n.To] = item.id
			w.res.Depth[n.To] = item.depth + 1
			w.queue = append(w.queue, queueItem{id: n.To, depth: item.depth + 1})
		}
	}
}
