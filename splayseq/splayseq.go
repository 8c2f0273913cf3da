package splayseq

import "bbst/algebra"

// Seq is a splay-balanced indexed sequence over a monoid element type.
type Seq[V algebra.Monoid[V]] struct {
	root *node[V]
}

// Empty returns the empty sequence.
func Empty[V algebra.Monoid[V]]() Seq[V] {
	return Seq[V]{}
}

// New returns a singleton sequence holding v.
func New[V algebra.Monoid[V]](v V) Seq[V] {
	return Seq[V]{root: newNode[V](v)}
}

// Len returns the number of elements.
func (s Seq[V]) Len() int {
	return sizeOf(s.root)
}

// Split partitions s into a left sequence of i elements and the
// remainder. Panics if i is out of [0, Len()].
func (s Seq[V]) Split(i int) (Seq[V], Seq[V]) {
	if i < 0 || i > s.Len() {
		panic("splayseq: split index out of range")
	}
	l, r := split[V](s.root, i)
	return Seq[V]{root: l}, Seq[V]{root: r}
}

// Merge concatenates s and other, in order. s and other must not alias
// the same underlying tree.
func (s Seq[V]) Merge(other Seq[V]) Seq[V] {
	return Seq[V]{root: merge[V](s.root, other.root)}
}

// Insert places v at position i, shifting elements at or after i right.
func (s Seq[V]) Insert(i int, v V) Seq[V] {
	left, right := s.Split(i)
	n := newNode[V](v)
	n.setLeft(left.root)
	n.setRight(right.root)
	return Seq[V]{root: n}
}

// Erase removes the element at position i.
func (s Seq[V]) Erase(i int) Seq[V] {
	left, rest := s.Split(i)
	_, right := rest.Split(1)
	return left.Merge(right)
}

// At splays position i to the root and returns its element. Panics if
// i is out of [0, Len()).
func (s *Seq[V]) At(i int) V {
	s.splayTo(i)
	return s.root.elem
}

// CombineAt splays position i to the root and folds v into its element
// via the monoid operation (elem = elem.Op(v)) — a merge-into, not a
// replacement, matching the reference implementation's `set`. Panics
// if i is out of [0, Len()).
func (s *Seq[V]) CombineAt(i int, v V) {
	s.splayTo(i)
	s.root.elem = s.root.elem.Op(v)
	s.root.fix()
}

// ReplaceAt splays position i to the root and overwrites its element
// with v outright.
func (s *Seq[V]) ReplaceAt(i int, v V) {
	s.splayTo(i)
	s.root.elem = v
	s.root.fix()
}

func (s *Seq[V]) splayTo(i int) {
	if i < 0 || i >= s.Len() {
		panic("splayseq: index out of range")
	}
	s.root = splay(s.root, i)
}

// Fold returns the monoid fold of every element in order, or the
// identity element if s is empty.
func (s Seq[V]) Fold() V {
	var zero V
	ident := zero.Identity()
	if s.root == nil {
		return ident
	}
	return s.root.fold
}
