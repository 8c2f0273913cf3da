package linkcut

// Tree is a handle to one node of a plain (non-folding) link-cut
// forest. Ported from original_source/src/lctree/lctree.rs: LctNode,
// specialised to ValNode.
type Tree[V any] struct {
	n *valNode[V]
}

// NewTree returns a new one-node tree holding v, disjoint from every
// other tree until linked.
func NewTree[V any](v V) Tree[V] {
	return Tree[V]{n: newValNode(v)}
}

// Link attaches t as a new child of parent. t must currently be a tree
// root; parent must belong to a different tree (unchecked).
func (t Tree[V]) Link(parent Tree[V]) {
	link[*valNode[V]](parent.n, t.n)
}

// Cut removes the edge from t to its parent. Panics if t is already a
// forest root.
func (t Tree[V]) Cut() {
	cut[*valNode[V]](t.n)
}

// Evert makes t the root of its tree.
func (t Tree[V]) Evert() {
	evert[*valNode[V]](t.n)
}

// Value returns t's stored value.
func (t Tree[V]) Value() V {
	expose[*valNode[V]](t.n)
	return t.n.val
}

// ValueMut applies fn to t's value in place and refreshes cached
// aggregates on return. This collapses the reference implementation's
// raw value_mut() (a mutable reference the caller must remember to
// follow with fix) into a callback form with no such obligation.
func (t Tree[V]) ValueMut(fn func(*V)) {
	expose[*valNode[V]](t.n)
	fn(&t.n.val)
	t.n.Fix()
}

// LCA returns the lowest common ancestor of t and v if they belong to
// the same tree.
func (t Tree[V]) LCA(v Tree[V]) (Tree[V], bool) {
	l := lca[*valNode[V]](t.n, v.n)
	if l == nil {
		return Tree[V]{}, false
	}
	return Tree[V]{n: l}, true
}
