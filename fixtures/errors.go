// Package fixtures holds the collaborators spec.md section 1 explicitly
// keeps out of the core: a random-additive-tree generator and the two
// named tree-distance metrics, so the property tests in section 8
// (Scenarios R and S) have something to check the driver's output against.
package fixtures

import "errors"

var (
	// ErrTooFewLeaves indicates RandomAdditiveTree was asked for fewer than
	// two leaves.
	ErrTooFewLeaves = errors.New("fixtures: need at least 2 leaves")

	// ErrLeafSetMismatch indicates RobinsonFoulds or BranchScore was asked
	// to compare two trees whose leaf label sets differ.
	ErrLeafSetMismatch = errors.New("fixtures: trees do not share the same leaf label set")
)
