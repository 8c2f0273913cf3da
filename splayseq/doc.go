// Package splayseq implements an indexed, splittable and concatenable
// sequence backed by a top-down splay tree: the same external contract
// as avlseq, but amortised O(log n) instead of worst-case, achieved by
// restructuring the tree toward the accessed rank on every operation
// rather than maintaining an explicit balance invariant.
package splayseq
