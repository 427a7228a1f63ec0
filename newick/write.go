// Package newick renders a phylotree.Tree as Newick text, the external
// tree sink spec.md section 6 describes abstractly. Shape conventions
// (recursive descent over children, trailing semicolon) are grounded on
// soniakeys-bio/newick.go, rewritten against phylotree.Tree.
package newick

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/nj-go/njoin/phylotree"
)

// ErrNoDegreeThreeVertex indicates the tree has no vertex of degree 3 to
// root at - spec.md section 8's shape invariant (2N-2 vertices, internal
// degree 3) guarantees one exists for any tree a driver run produced; this
// only fires on a hand-built or corrupted Tree.
var ErrNoDegreeThreeVertex = errors.New("newick: no degree-3 vertex to root at")

// DefaultFormat renders a weight with strconv.FormatFloat's shortest exact
// round-trip representation - spec.md section 6: "the core makes no
// promises about textual precision", so callers needing fixed precision
// supply their own formatter.
func DefaultFormat(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// Write locates a degree-3 vertex and renders t rooted there: a leaf
// prints as "name:weight", an internal subtree as "(child1,child2,...):
// weight", the whole tree followed by a trailing semicolon.
//
// Complexity: O(V+E).
func Write(w io.Writer, t *phylotree.Tree, format func(float64) string) error {
	if format == nil {
		format = DefaultFormat
	}

	root := -1
	for v := 0; v < t.VertexCount(); v++ {
		if t.Degree(v) == 3 {
			root = v
			break
		}
	}
	if root < 0 {
		return ErrNoDegreeThreeVertex
	}

	if err := writeSubtree(w, t, root, -1, format); err != nil {
		return err
	}
	_, err := io.WriteString(w, ";")

	return err
}

// writeSubtree renders the subtree rooted at v, excluding the direction
// back toward parent (the caller's logical root has no parent: pass -1).
func writeSubtree(w io.Writer, t *phylotree.Tree, v, parent int, format func(float64) string) error {
	neighbors := t.Neighbors(v)

	children := make([]phylotree.Neighbor, 0, len(neighbors))
	for _, n := range neighbors {
		if n.To != parent {
			children = append(children, n)
		}
	}

	if len(children) == 0 {
		_, err := fmt.Fprintf(w, "%s", t.Label(v))

		return err
	}

	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}
	for k, c := range children {
		if k > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if err := writeSubtree(w, t, c.To, v, format); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, ":%s", format(c.Weight)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")

	return err
}
