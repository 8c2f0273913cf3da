package linkcut

import "bbst/algebra"

// EffectTree is a handle to one node of a link-cut forest whose values
// form a monoid and which supports deferred path effects. Ported from
// original_source/src/lctree/lctree.rs: LctNode, specialised to
// EffNode.
type EffectTree[T algebra.Monoid[T], E algebra.Effector[E, T]] struct {
	n *effNode[T, E]
}

// NewEffectTree returns a new one-node tree holding v.
func NewEffectTree[T algebra.Monoid[T], E algebra.Effector[E, T]](v T) EffectTree[T, E] {
	return EffectTree[T, E]{n: newEffNode[T, E](v)}
}

// Link attaches t as a new child of parent.
func (t EffectTree[T, E]) Link(parent EffectTree[T, E]) {
	link[*effNode[T, E]](parent.n, t.n)
}

// Cut removes the edge from t to its parent.
func (t EffectTree[T, E]) Cut() {
	cut[*effNode[T, E]](t.n)
}

// Evert makes t the root of its tree.
func (t EffectTree[T, E]) Evert() {
	evert[*effNode[T, E]](t.n)
}

// Value returns t's stored value.
func (t EffectTree[T, E]) Value() T {
	expose[*effNode[T, E]](t.n)
	return t.n.val
}

// ValueMut applies fn to t's value in place and refreshes cached
// aggregates on return.
func (t EffectTree[T, E]) ValueMut(fn func(*T)) {
	expose[*effNode[T, E]](t.n)
	fn(&t.n.val)
	t.n.Fix()
}

// LCA returns the lowest common ancestor of t and v if they belong to
// the same tree.
func (t EffectTree[T, E]) LCA(v EffectTree[T, E]) (EffectTree[T, E], bool) {
	l := lca[*effNode[T, E]](t.n, v.n)
	if l == nil {
		return EffectTree[T, E]{}, false
	}
	return EffectTree[T, E]{n: l}, true
}

// Fold returns the monoid fold of the root-to-t path.
func (t EffectTree[T, E]) Fold() T {
	expose[*effNode[T, E]](t.n)
	return t.n.fold
}

// Effect applies e to the whole root-to-t path.
func (t EffectTree[T, E]) Effect(e E) {
	expose[*effNode[T, E]](t.n)
	t.n.applyEffect(e)
	t.n.Push()
}
