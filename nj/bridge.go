package nj

import (
	"github.com/nj-go/njoin/canonicalq"
	"github.com/nj-go/njoin/phylotree"
	"github.com/nj-go/njoin/prunedq"
)

// bridgeToCanonical implements the Hybrid Bridge of spec.md section 4.5:
// it enumerates q's active rows ascending, rebuilds a dense canonical
// Q-matrix from q.Distance lookups (O(M^2), the spec's explicit default -
// see SPEC_FULL.md section 9, Open Question (c)), and rebases tree's
// logical-id mapping onto the same dense 0..M-1 index space, preserving
// every graph vertex the pruned phase already created.
func bridgeToCanonical(q *prunedq.Q, tree *phylotree.Tree) (*canonicalq.Q, error) {
	unmerged := q.UnmergedNodes()
	m := len(unmerged)

	dense := make([][]float64, m)
	for a := 0; a < m; a++ {
		dense[a] = make([]float64, m)
		for b := 0; b < m; b++ {
			if a == b {
				continue
			}
			d, err := q.Distance(unmerged[a], unmerged[b])
			if err != nil {
				return nil, wrapContract(err)
			}
			dense[a][b] = d
		}
	}

	cq, err := canonicalq.New(dense)
	if err != nil {
		return nil, wrapContract(err)
	}
	if err := tree.RebaseLogicalIDs(unmerged); err != nil {
		return nil, wrapContract(err)
	}

	return cq, nil
}
