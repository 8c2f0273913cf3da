package avlseq

import (
	"bbst/algebra"
	"bbst/seqnode"
)

// elemNode is a plain AVL sequence node: a value plus the size/height
// bookkeeping the rebalancing engine needs. No monoid is required.
type elemNode[V any] struct {
	val    V
	sz, ht int
	child  [2]*elemNode[V]
}

func (n *elemNode[V]) Size() int { return n.sz }
func (n *elemNode[V]) Height() int { return n.ht }
func (n *elemNode[V]) Val() V { return n.val }
func (n *elemNode[V]) SetVal(v V) { n.val = v }

func (n *elemNode[V]) Child(d seqnode.Dir) *elemNode[V] { return n.child[d] }

func (n *elemNode[V]) Fix() {
	n.sz = seqnode.SizeOf[*elemNode[V]](n.child[seqnode.Left]) + seqnode.SizeOf[*elemNode[V]](n.child[seqnode.Right]) + 1
	n.ht = max(seqnode.HeightOf[*elemNode[V]](n.child[seqnode.Left]), seqnode.HeightOf[*elemNode[V]](n.child[seqnode.Right])) + 1
}

func (n *elemNode[V]) Cut(d seqnode.Dir) *elemNode[V] {
	c := n.child[d]
	n.child[d] = nil
	n.Fix()
	return c
}

func (n *elemNode[V]) Set(d seqnode.Dir, c *elemNode[V]) {
	n.child[d] = c
	n.Fix()
}

// foldElemNode additionally caches fold = left.fold . val . right.fold
// over a Monoid-constrained value type.
type foldElemNode[V algebra.Monoid[V]] struct {
	val, fold V
	sz, ht    int
	child     [2]*foldElemNode[V]
}

func (n *foldElemNode[V]) Size() int { return n.sz }
func (n *foldElemNode[V]) Height() int { return n.ht }
func (n *foldElemNode[V]) Fold() V { return n.fold }
func (n *foldElemNode[V]) Val() V { return n.val }
func (n *foldElemNode[V]) SetVal(v V) { n.val = v }

func (n *foldElemNode[V]) Child(d seqnode.Dir) *foldElemNode[V] { return n.child[d] }

func (n *foldElemNode[V]) Fix() {
	n.sz = seqnode.SizeOf[*foldElemNode[V]](n.child[seqnode.Left]) + seqnode.SizeOf[*foldElemNode[V]](n.child[seqnode.Right]) + 1
	n.ht = max(seqnode.HeightOf[*foldElemNode[V]](n.child[seqnode.Left]), seqnode.HeightOf[*foldElemNode[V]](n.child[seqnode.Right])) + 1

	var zero V
	ident := zero.Identity()
	lf := seqnode.FoldOf[*foldElemNode[V]](n.child[seqnode.Left], ident)
	rf := seqnode.FoldOf[*foldElemNode[V]](n.child[seqnode.Right], ident)
	n.fold = lf.Op(n.val).Op(rf)
}

func (n *foldElemNode[V]) Cut(d seqnode.Dir) *foldElemNode[V] {
	c := n.child[d]
	n.child[d] = nil
	n.Fix()
	return c
}

func (n *foldElemNode[V]) Set(d seqnode.Dir, c *foldElemNode[V]) {
	n.child[d] = c
	n.Fix()
}
