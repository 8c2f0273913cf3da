package avlseq

import (
	"bbst/algebra"
	"bbst/seqnode"
)

// Seq is an AVL-balanced indexed sequence of plain values.
type Seq[V any] struct {
	root *elemNode[V]
}

// Empty returns the empty sequence.
func Empty[V any]() Seq[V] {
	return Seq[V]{}
}

// New returns a singleton sequence holding v.
func New[V any](v V) Seq[V] {
	n := &elemNode[V]{val: v}
	n.Fix()
	return Seq[V]{root: n}
}

// Len returns the number of elements.
func (s Seq[V]) Len() int {
	return seqnode.SizeOf[*elemNode[V]](s.root)
}

// Merge concatenates s and other, in order.
func (s Seq[V]) Merge(other Seq[V]) Seq[V] {
	return Seq[V]{root: merge[*elemNode[V]](s.root, other.root)}
}

// Split partitions s into a left sequence of i elements and the
// remainder. Panics if i is out of [0, Len()].
func (s Seq[V]) Split(i int) (Seq[V], Seq[V]) {
	if i < 0 || i > s.Len() {
		panic("avlseq: split index out of range")
	}
	if s.root == nil {
		return Seq[V]{}, Seq[V]{}
	}
	l, r := split[*elemNode[V]](s.root, i)
	return Seq[V]{root: l}, Seq[V]{root: r}
}

// Insert places v at position i, shifting elements at or after i right.
func (s Seq[V]) Insert(i int, v V) Seq[V] {
	l, r := s.Split(i)
	return l.Merge(New[V](v)).Merge(r)
}

// Erase removes the element at position i.
func (s Seq[V]) Erase(i int) Seq[V] {
	l, mid := s.Split(i)
	_, r := mid.Split(1)
	return l.Merge(r)
}

// At reads the i-th element. Panics if i is out of [0, Len()).
func (s Seq[V]) At(i int) V {
	if i < 0 || i >= s.Len() {
		panic("avlseq: index out of range")
	}
	return at[*elemNode[V], V](s.root, i)
}

// AtSet writes the i-th element. Panics if i is out of [0, Len()).
func (s Seq[V]) AtSet(i int, v V) {
	if i < 0 || i >= s.Len() {
		panic("avlseq: index out of range")
	}
	atSet[*elemNode[V], V](s.root, i, v)
}

// FoldSeq is an AVL-balanced indexed sequence that additionally caches a
// monoid fold over its elements.
type FoldSeq[V algebra.Monoid[V]] struct {
	root *foldElemNode[V]
}

// EmptyFold returns the empty foldable sequence.
func EmptyFold[V algebra.Monoid[V]]() FoldSeq[V] {
	return FoldSeq[V]{}
}

// NewFold returns a singleton foldable sequence holding v.
func NewFold[V algebra.Monoid[V]](v V) FoldSeq[V] {
	n := &foldElemNode[V]{val: v}
	n.Fix()
	return FoldSeq[V]{root: n}
}

// Len returns the number of elements.
func (s FoldSeq[V]) Len() int {
	return seqnode.SizeOf[*foldElemNode[V]](s.root)
}

// Merge concatenates s and other, in order.
func (s FoldSeq[V]) Merge(other FoldSeq[V]) FoldSeq[V] {
	return FoldSeq[V]{root: merge[*foldElemNode[V]](s.root, other.root)}
}

// Split partitions s into a left sequence of i elements and the
// remainder. Panics if i is out of [0, Len()].
func (s FoldSeq[V]) Split(i int) (FoldSeq[V], FoldSeq[V]) {
	if i < 0 || i > s.Len() {
		panic("avlseq: split index out of range")
	}
	if s.root == nil {
		return FoldSeq[V]{}, FoldSeq[V]{}
	}
	l, r := split[*foldElemNode[V]](s.root, i)
	return FoldSeq[V]{root: l}, FoldSeq[V]{root: r}
}

// Insert places v at position i, shifting elements at or after i right.
func (s FoldSeq[V]) Insert(i int, v V) FoldSeq[V] {
	l, r := s.Split(i)
	return l.Merge(NewFold[V](v)).Merge(r)
}

// Erase removes the element at position i.
func (s FoldSeq[V]) Erase(i int) FoldSeq[V] {
	l, mid := s.Split(i)
	_, r := mid.Split(1)
	return l.Merge(r)
}

// At reads the i-th element. Panics if i is out of [0, Len()).
func (s FoldSeq[V]) At(i int) V {
	if i < 0 || i >= s.Len() {
		panic("avlseq: index out of range")
	}
	return at[*foldElemNode[V], V](s.root, i)
}

// AtSet writes the i-th element. Panics if i is out of [0, Len()).
func (s FoldSeq[V]) AtSet(i int, v V) {
	if i < 0 || i >= s.Len() {
		panic("avlseq: index out of range")
	}
	atSet[*foldElemNode[V], V](s.root, i, v)
}

// Fold returns the monoid fold of every element in order, or the
// identity element if s is empty.
func (s FoldSeq[V]) Fold() V {
	var zero V
	ident := zero.Identity()
	return seqnode.FoldOf[*foldElemNode[V]](s.root, ident)
}
