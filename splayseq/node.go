package splayseq

import (
	"bbst/algebra"
	"bbst/seqnode"
)

// node is a splay-sequence node: an element, its cached fold over the
// whole subtree, a size, and two children. A single node kind serves
// the whole package; unlike the AVL engine there is no plain/folding
// split, since splay's amortised bound already requires descending
// through every node's subtree size regardless of whether its fold is
// ever read.
type node[V algebra.Monoid[V]] struct {
	elem, fold  V
	sz          int
	left, right *node[V]
}

func newNode[V algebra.Monoid[V]](elem V) *node[V] {
	n := &node[V]{elem: elem}
	n.fix()
	return n
}

func (n *node[V]) Size() int { return n.sz }
func (n *node[V]) Fold() V { return n.fold }

func (n *node[V]) fix() {
	n.sz = seqnode.SizeOf[*node[V]](n.left) + seqnode.SizeOf[*node[V]](n.right) + 1
	var zero V
	ident := zero.Identity()
	lf := seqnode.FoldOf[*node[V]](n.left, ident)
	rf := seqnode.FoldOf[*node[V]](n.right, ident)
	n.fold = lf.Op(n.elem).Op(rf)
}

func (n *node[V]) cutLeft() *node[V] {
	c := n.left
	n.left = nil
	n.fix()
	return c
}

func (n *node[V]) cutRight() *node[V] {
	c := n.right
	n.right = nil
	n.fix()
	return c
}

func (n *node[V]) setLeft(c *node[V]) {
	n.left = c
	n.fix()
}

func (n *node[V]) setRight(c *node[V]) {
	n.right = c
	n.fix()
}

func sizeOf[V algebra.Monoid[V]](n *node[V]) int {
	return seqnode.SizeOf[*node[V]](n)
}
