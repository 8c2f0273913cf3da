// Package avlseq implements an AVL-balanced, indexed, splittable and
// concatenable sequence. Two node kinds share one generic rotation/
// split/merge engine: Seq holds plain values with no algebraic
// requirement, and FoldSeq additionally caches a monoid fold over the
// whole sequence. Every operation keeps the height-balance invariant
// |height(left) - height(right)| <= 1 at every node.
package avlseq
