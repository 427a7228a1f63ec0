package prunedq

import "sync"

// FindNeighbors scans active rows in descending-sumCols order (q.indexes);
// within a row it walks the row's ordered candidate set ascending by
// distance and stops as soon as the pruning bound proves no remaining
// candidate in that row can beat the running minimum:
//
//	bound = (nLeaves-2)*d - s_i - uMax
//	stop scanning this row once bound >= qMin
//
// because every later candidate in the row has dist >= d, and uMax upper-
// bounds every s_j, so (nLeaves-2)*dist - s_i - s_j >= bound for all of them.
//
// Complexity: O(N) best case (heavily pruned) up to O(N^2) worst case
// (unpruned, degenerates to the canonical scan).
func (q *Q) FindNeighbors() (int, int, error) {
	if q.nLeaves < 2 {
		return 0, 0, ErrNoActivePair
	}

	n2 := float64(q.nLeaves - 2)
	bestI, bestJ, _, ok := q.scanRange(q.indexes, n2, 0, -1, 0, false)
	if !ok {
		return 0, 0, ErrNoActivePair
	}

	return bestI, bestJ, nil
}

// scanRange walks rows named by ids[start:end] (end<0 means to the end of
// ids), seeding the running minimum from seedQMin when seeded is true, and
// returns the best (i, j, qMin) found plus whether any candidate was found
// at all. It is the shared core between the serial and parallel search
// paths.
func (q *Q) scanRange(ids []int, n2 float64, start, end int, seedQMin float64, seeded bool) (int, int, float64, bool) {
	if end < 0 {
		end = len(ids)
	}

	var bestI, bestJ int
	qMin := seedQMin
	found := seeded

	for _, i := range ids[start:end] {
		si := q.sumCols[i]
		row := q.trees[i]
		for _, e := range row.items {
			bound := n2*e.dist - si - q.uMax
			if found && bound >= qMin {
				break
			}
			qij := n2*e.dist - si - q.sumCols[e.col]
			if !found || qij < qMin {
				qMin = qij
				found = true
				if i < e.col {
					bestI, bestJ = i, e.col
				} else {
					bestI, bestJ = e.col, i
				}
			}
		}
	}

	return bestI, bestJ, qMin, found
}

// FindNeighborsParallel is the concurrent variant of FindNeighbors: it
// partitions q.indexes into chunks of chunkSize rows, searches each chunk
// in its own goroutine, and reconciles results through a single shared
// (qMin, argmin) state protected by a sync.RWMutex - the same discipline
// core.Graph uses for its vertex/edge maps: readers take an RLock to
// snapshot the current minimum, writers take a full Lock and re-check
// before committing, because two workers can race to improve the same
// stale snapshot.
//
// A cheap serial pre-pass seeds the shared minimum before any goroutine
// starts (each row's nearest candidate considered once), so parallel
// workers prune immediately instead of scanning unbounded on a cold start.
//
// Complexity: O(N^2/workers) amortized, same worst case as the serial scan.
func (q *Q) FindNeighborsParallel(workers, chunkSize int) (int, int, error) {
	if q.nLeaves < 2 {
		return 0, 0, ErrNoActivePair
	}
	if workers < 1 {
		workers = 1
	}
	if chunkSize < 1 {
		chunkSize = 1
	}

	n2 := float64(q.nLeaves - 2)

	shared := &sharedMin{}
	shared.seedPrepass(q, n2)

	type chunk struct{ start, end int }
	var chunks []chunk
	for start := 0; start < len(q.indexes); start += chunkSize {
		end := start + chunkSize
		if end > len(q.indexes) {
			end = len(q.indexes)
		}
		chunks = append(chunks, chunk{start, end})
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, c := range chunks {
		c := c
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			shared.mu.RLock()
			seedQMin := shared.qMin
			seeded := shared.found
			shared.mu.RUnlock()

			i, j, localQ, found := q.scanRange(q.indexes, n2, c.start, c.end, seedQMin, seeded)
			if !found || (seeded && localQ >= seedQMin) {
				// Nothing strictly better than the snapshot: no write lock.
				return
			}

			shared.mu.Lock()
			if !shared.found || localQ < shared.qMin {
				shared.qMin = localQ
				shared.bestI, shared.bestJ = i, j
				shared.found = true
			}
			shared.mu.Unlock()
		}()
	}
	wg.Wait()

	if !shared.found {
		return 0, 0, ErrNoActivePair
	}

	return shared.bestI, shared.bestJ, nil
}

// sharedMin is the parallel search's single shared (qMin, argmin) state.
type sharedMin struct {
	mu           sync.RWMutex
	qMin         float64
	bestI, bestJ int
	found        bool
}

// seedPrepass does a serial single-candidate-per-row pass (each row's
// smallest-distance entry only) to give parallel workers a non-trivial
// qMin to prune against from the very first comparison.
func (s *sharedMin) seedPrepass(q *Q, n2 float64) {
	for _, i := range q.indexes {
		row := q.trees[i]
		if row.len() == 0 {
			continue
		}
		e := row.items[0]
		qij := n2*e.dist - q.sumCols[i] - q.sumCols[e.col]
		if !s.found || qij < s.qMin {
			s.qMin = qij
			s.found = true
			if i < e.col {
				s.bestI, s.bestJ = i, e.col
			} else {
				s.bestI, s.bestJ = e.col, i
			}
		}
	}
}

// NewNodeDistances computes the two branch lengths from the new internal
// node to i and to j, using the pruned matrix's current nLeaves and
// sumCols. Identical formula to the canonical matrix's, since the Q-
// criterion and branch-length derivation do not depend on storage layout.
//
// Complexity: O(1).
func (q *Q) NewNodeDistances(i, j int) (float64, float64, error) {
	dij, err := q.distance(i, j)
	if err != nil {
		return 0, 0, err
	}

	n2 := float64(q.nLeaves - 2)
	distUI := (dij + (q.sumCols[i]-q.sumCols[j])/n2) / 2
	distUJ := dij - distUI

	return distUI, distUJ, nil
}
