package linkcut

import (
	"bbst/algebra"
	"bbst/seqnode"
)

// effNode is a link-cut node over a monoid value type T with a lazily
// deferred effect E pending on its whole subtree. Ported from
// original_source/src/lctree/effectnode.rs.
type effNode[T algebra.Monoid[T], E algebra.Effector[E, T]] struct {
	val, fold T
	eff       E
	rev       bool
	sz        int
	child     [2]*effNode[T, E]
	parent    *effNode[T, E]
}

func newEffNode[T algebra.Monoid[T], E algebra.Effector[E, T]](val T) *effNode[T, E] {
	var zeroE E
	n := &effNode[T, E]{val: val, fold: val, eff: zeroE.Identity(), sz: 1}
	return n
}

func (n *effNode[T, E]) Child(d seqnode.Dir) *effNode[T, E] { return n.child[d] }
func (n *effNode[T, E]) SetChild(d seqnode.Dir, c *effNode[T, E]) { n.child[d] = c }
func (n *effNode[T, E]) Parent() *effNode[T, E] { return n.parent }
func (n *effNode[T, E]) SetParent(p *effNode[T, E]) { n.parent = p }
func (n *effNode[T, E]) Size() int { return n.sz }
func (n *effNode[T, E]) Fold() T { return n.fold }

func (n *effNode[T, E]) Fix() {
	n.sz = seqnode.SizeOf[*effNode[T, E]](n.child[seqnode.Left]) + seqnode.SizeOf[*effNode[T, E]](n.child[seqnode.Right]) + 1
	n.fold = n.val
	if n.child[seqnode.Left] != nil {
		n.fold = n.child[seqnode.Left].fold.Op(n.fold)
	}
	if n.child[seqnode.Right] != nil {
		n.fold = n.fold.Op(n.child[seqnode.Right].fold)
	}
}

func (n *effNode[T, E]) Reverse() {
	n.child[seqnode.Left], n.child[seqnode.Right] = n.child[seqnode.Right], n.child[seqnode.Left]
	n.rev = !n.rev
}

// Push carries the pending effect to both children first, then the
// pending reversal, mirroring the reference's push order exactly.
func (n *effNode[T, E]) Push() {
	if n.child[seqnode.Left] != nil {
		n.child[seqnode.Left].applyEffect(n.eff)
	}
	if n.child[seqnode.Right] != nil {
		n.child[seqnode.Right].applyEffect(n.eff)
	}
	var zeroE E
	n.eff = zeroE.Identity()
	if n.rev {
		if n.child[seqnode.Left] != nil {
			n.child[seqnode.Left].Reverse()
		}
		if n.child[seqnode.Right] != nil {
			n.child[seqnode.Right].Reverse()
		}
		n.rev = false
	}
}

// applyEffect applies e to the node's own value and fold at once, then
// composes e after the pending effect, which Push later hands down to
// the children.
func (n *effNode[T, E]) applyEffect(e E) {
	n.val = e.Effect(n.val, 1)
	n.fold = e.Effect(n.fold, n.sz)
	n.eff = n.eff.Op(e)
}
