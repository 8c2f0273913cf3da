package linkcut

import "bbst/seqnode"

// valNode is a plain link-cut node: a value with no algebraic
// requirement, a reverse flag, and the splay-tree plumbing. Ported
// from original_source/src/lctree/valnode.rs.
type valNode[V any] struct {
	val    V
	rev    bool
	sz     int
	child  [2]*valNode[V]
	parent *valNode[V]
}

func newValNode[V any](val V) *valNode[V] {
	return &valNode[V]{val: val, sz: 1}
}

func (n *valNode[V]) Child(d seqnode.Dir) *valNode[V] { return n.child[d] }
func (n *valNode[V]) SetChild(d seqnode.Dir, c *valNode[V]) { n.child[d] = c }
func (n *valNode[V]) Parent() *valNode[V] { return n.parent }
func (n *valNode[V]) SetParent(p *valNode[V]) { n.parent = p }
func (n *valNode[V]) Size() int { return n.sz }

func (n *valNode[V]) Fix() {
	n.sz = seqnode.SizeOf[*valNode[V]](n.child[seqnode.Left]) + seqnode.SizeOf[*valNode[V]](n.child[seqnode.Right]) + 1
}

// Reverse swaps the two children and toggles the pending-reversal flag;
// the swap itself does not descend, matching the lazy push discipline.
func (n *valNode[V]) Reverse() {
	n.child[seqnode.Left], n.child[seqnode.Right] = n.child[seqnode.Right], n.child[seqnode.Left]
	n.rev = !n.rev
}

// Push carries a pending reversal one level down to both children.
func (n *valNode[V]) Push() {
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
