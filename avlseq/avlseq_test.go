package avlseq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bbst/avlseq"
)

type sum int

func (a sum) Op(b sum) sum    { return a + b }
func (sum) Identity() sum     { return 0 }

func TestAVLAppendSequence(t *testing.T) {
	s := avlseq.Empty[int]()
	for k := 0; k < 6; k++ {
		s = s.Merge(avlseq.New[int](k))
	}
	assert.Equal(t, 6, s.Len())
	for k := 0; k < 6; k++ {
		assert.Equal(t, k, s.At(k))
	}
}

func TestAVLSplitMerge(t *testing.T) {
	s := avlseq.Empty[int]()
	for k := 0; k < 6; k++ {
		s = s.Merge(avlseq.New[int](k))
	}
	l, r := s.Split(3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 0, l.At(0))
	assert.Equal(t, 3, r.At(0))

	merged := l.Merge(r)
	assert.Equal(t, 6, merged.Len())
	for k := 0; k < 6; k++ {
		assert.Equal(t, k, merged.At(k))
	}
}

func TestAVLInsertErase(t *testing.T) {
	s := avlseq.Empty[int]()
	s = s.Insert(0, 10)
	s = s.Insert(1, 20)
	s = s.Insert(0, 5)
	assert.Equal(t, []int{5, 10, 20}, collect(s))

	s = s.Erase(1)
	assert.Equal(t, []int{5, 20}, collect(s))
}

func TestAVLAtSet(t *testing.T) {
	s := avlseq.Empty[int]()
	for k := 0; k < 5; k++ {
		s = s.Merge(avlseq.New[int](k))
	}
	s.AtSet(2, 99)
	assert.Equal(t, 99, s.At(2))
}

func TestAVLIndexPanics(t *testing.T) {
	s := avlseq.New[int](1)
	assert.Panics(t, func() { s.At(5) })
	assert.Panics(t, func() { s.At(-1) })
}

func TestAVLFoldPrefixSplit(t *testing.T) {
	s := avlseq.EmptyFold[sum]()
	for _, v := range []sum{1, 2, 3} {
		s = s.Merge(avlseq.NewFold[sum](v))
	}

	left, rest := s.Split(1)
	centre, right := rest.Split(1)
	assert.Equal(t, 1, centre.Len())
	assert.Equal(t, sum(2), centre.At(0))
	assert.Equal(t, sum(2), centre.Fold())

	rebuilt := left.Merge(centre).Merge(right)
	assert.Equal(t, sum(6), rebuilt.Fold())
}

func TestAVLFoldEmptyIsIdentity(t *testing.T) {
	s := avlseq.EmptyFold[sum]()
	assert.Equal(t, sum(0), s.Fold())
}

func collect(s avlseq.Seq[int]) []int {
	out := make([]int, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
