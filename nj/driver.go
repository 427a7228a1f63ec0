package nj

import (
	"github.com/nj-go/njoin/canonicalq"
	"github.com/nj-go/njoin/distmatrix"
	"github.com/nj-go/njoin/phylotree"
	"github.com/nj-go/njoin/prunedq"
)

// Run reconstructs an unrooted, weighted, binary phylogenetic tree from d
// using the strategy and tuning named by opts, per spec.md section 4.4.
//
// Stage 1: validate d's order against the chosen strategy's minimum
// (3 for canonical, 4 for pruned/hybrid) and opts against d's order.
// Stage 2: dispatch to the strategy-specific loop.
//
// No retries, no recovery, no partial trees: a non-nil error means the
// call produced nothing (spec.md section 4.6).
func Run(d *distmatrix.Matrix, opts Options) (*phylotree.Tree, error) {
	n := d.N()
	if n < 3 {
		return nil, newError(InputInvalid, "matrix order %d is below the minimum of 3", n)
	}
	if opts.Strategy != StrategyCanonical && n < 4 {
		return nil, newError(InputInvalid, "matrix order %d is below the minimum of 4 required by strategy %s", n, opts.Strategy)
	}
	if err := opts.validate(n); err != nil {
		return nil, err
	}

	switch opts.Strategy {
	case StrategyCanonical:
		return runCanonical(d)
	case StrategyPruned:
		return runPruned(d, opts)
	case StrategyHybrid:
		return runHybrid(d, opts)
	default:
		return nil, newError(ConfigInvalid, "unknown strategy %v", opts.Strategy)
	}
}

// runCanonical drives the dense Q-matrix to completion.
func runCanonical(d *distmatrix.Matrix) (*phylotree.Tree, error) {
	q, err := canonicalq.New(d.D)
	if err != nil {
		return nil, wrapContract(err)
	}
	tree := phylotree.Build(d.Names)

	for q.NLeaves() > 3 {
		i, j, err := q.FindNeighbors()
		if err != nil {
			return nil, wrapContract(err)
		}
		dui, duj, err := q.NewNodeDistances(i, j)
		if err != nil {
			return nil, wrapContract(err)
		}
		if err := tree.MergeNeighborsCanonical(i, j, dui, duj); err != nil {
			return nil, wrapContract(err)
		}
		if err := q.Update(i, j); err != nil {
			return nil, wrapContract(err)
		}
	}

	return terminateCanonical(q, tree)
}

// terminateCanonical closes the final three compacted rows (always 0,1,2).
func terminateCanonical(q *canonicalq.Q, tree *phylotree.Tree) (*phylotree.Tree, error) {
	d01, err := q.Distance(0, 1)
	if err != nil {
		return nil, wrapContract(err)
	}
	d02, err := q.Distance(0, 2)
	if err != nil {
		return nil, wrapContract(err)
	}
	d12, err := q.Distance(1, 2)
	if err != nil {
		return nil, wrapContract(err)
	}

	dv0 := (d01 + d02 - d12) / 2
	dv1 := (d01 + d12 - d02) / 2
	dv2 := (d02 + d12 - d01) / 2

	if err := tree.Terminate(0, 1, 2, dv0, dv1, dv2); err != nil {
		return nil, wrapContract(err)
	}

	return tree, nil
}

// runPruned drives the pruned Q-matrix to completion.
func runPruned(d *distmatrix.Matrix, opts Options) (*phylotree.Tree, error) {
	q, err := prunedq.New(d)
	if err != nil {
		return nil, wrapContract(err)
	}
	tree := phylotree.Build(d.Names)

	if err := drivePruned(q, tree, opts, 3); err != nil {
		return nil, err
	}

	return terminatePruned(q, tree)
}

// drivePruned runs merges on q (recording each one on tree under the
// pruned policy) until q.NLeaves() reaches stopAt.
func drivePruned(q *prunedq.Q, tree *phylotree.Tree, opts Options, stopAt int) error {
	for q.NLeaves() > stopAt {
		var i, j int
		var err error
		if opts.Threads > 1 {
			i, j, err = q.FindNeighborsParallel(opts.Threads, opts.ChunkSize)
		} else {
			i, j, err = q.FindNeighbors()
		}
		if err != nil {
			return wrapContract(err)
		}

		dui, duj, err := q.NewNodeDistances(i, j)
		if err != nil {
			return wrapContract(err)
		}

		// The new vertex's logical id must be recorded on the tree before
		// q.Update runs, per spec.md section 4.4's call order
		// (tree.merge_neighbors before q.update) - NextRowID names that id
		// without mutating q.
		newID := q.NextRowID()
		if err := tree.MergeNeighborsPruned(i, j, newID, dui, duj); err != nil {
			return wrapContract(err)
		}
		if _, err := q.Update(i, j); err != nil {
			return wrapContract(err)
		}
	}

	return nil
}

// terminatePruned closes the three ids prunedq.Q.UnmergedNodes returns.
func terminatePruned(q *prunedq.Q, tree *phylotree.Tree) (*phylotree.Tree, error) {
	ids := q.UnmergedNodes()
	if len(ids) != 3 {
		return nil, wrapContract(prunedq.ErrNoActivePair)
	}
	i, j, m := ids[0], ids[1], ids[2]

	dij, err := q.Distance(i, j)
	if err != nil {
		return nil, wrapContract(err)
	}
	dim, err := q.Distance(i, m)
	if err != nil {
		return nil, wrapContract(err)
	}
	djm, err := q.Distance(j, m)
	if err != nil {
		return nil, wrapContract(err)
	}

	dvi := (dij + dim - djm) / 2
	dvj := (dij + djm - dim) / 2
	dvm := (dim + djm - dij) / 2

	if err := tree.Terminate(i, j, m, dvi, dvj, dvm); err != nil {
		return nil, wrapContract(err)
	}

	return tree, nil
}

// runHybrid implements spec.md section 4.4's three hybrid cases.
func runHybrid(d *distmatrix.Matrix, opts Options) (*phylotree.Tree, error) {
	n := d.N()

	switch {
	case n < 4 || opts.CanonicalIters >= n:
		return runCanonical(d)
	case opts.CanonicalIters < 4:
		return runPruned(d, opts)
	default:
		return runHybridBridge(d, opts)
	}
}

// runHybridBridge runs the pruned phase down to opts.CanonicalIters active
// rows, hands the state to a canonical Q-matrix (see bridge.go), then
// finishes with the canonical loop.
func runHybridBridge(d *distmatrix.Matrix, opts Options) (*phylotree.Tree, error) {
	q, err := prunedq.New(d)
	if err != nil {
		return nil, wrapContract(err)
	}
	tree := phylotree.Build(d.Names)

	if err := drivePruned(q, tree, opts, opts.CanonicalIters); err != nil {
		return nil, err
	}

	cq, err := bridgeToCanonical(q, tree)
	if err != nil {
		return nil, err
	}

	for cq.NLeaves() > 3 {
		i, j, err := cq.FindNeighbors()
		if err != nil {
			return nil, wrapContract(err)
		}
		dui, duj, err := cq.NewNodeDistances(i, j)
		if err != nil {
			return nil, wrapContract(err)
		}
		if err := tree.MergeNeighborsCanonical(i, j, dui, duj); err != nil {
			return nil, wrapContract(err)
		}
		if err := cq.Update(i, j); err != nil {
			return nil, wrapContract(err)
		}
	}

	return terminateCanonical(cq, tree)
}
