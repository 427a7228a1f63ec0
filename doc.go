// Package njoin reconstructs unrooted, weighted, binary phylogenetic trees
// from symmetric pairwise distance matrices using Neighbor-Joining.
//
// What is njoin?
//
//	A Go implementation of Saitou & Nei's Neighbor-Joining algorithm with
//	three interchangeable strategies that converge to the same tree on
//	additive input:
//
//	  - canonical — the textbook O(n^3) dense scan
//	  - pruned    — a RapidNJ-style search that prunes candidate pairs via
//	    row-local ordered sets and a global row-sum bound, with the
//	    per-iteration search parallelized across row chunks
//	  - hybrid    — runs pruned until a configurable number of leaves
//	    remain, then switches to canonical for the final merges
//
// Under the hood, the engine is organized into:
//
//	distmatrix/ — the input fixture (symmetric distance matrix + names)
//	             and its PHYLIP collaborator
//	canonicalq/ — the dense Q-matrix and canonical neighbor search
//	prunedq/    — the sparse, row-ordered Q-matrix and pruned search
//	phylotree/  — the undirected weighted graph the driver builds
//	nj/         — the driver that ties a Q-matrix and a tree together,
//	             plus the hybrid handoff between the two Q-matrix kinds
//	newick/     — Newick text rendering of the resulting tree
//	fixtures/   — random additive trees and tree-distance metrics used
//	             by the test suite
//	config/     — YAML driver configuration
//	cmd/njoin/  — the command-line front end
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// design rationale.
package njoin
