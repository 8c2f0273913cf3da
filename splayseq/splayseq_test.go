package splayseq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bbst/splayseq"
)

type sum int

func (a sum) Op(b sum) sum { return a + b }
func (sum) Identity() sum  { return 0 }

func TestInsertEraseSequence(t *testing.T) {
	s := splayseq.Empty[sum]()
	s = s.Insert(0, 1)
	s = s.Insert(1, 2)
	s = s.Insert(2, 3)
	assert.Equal(t, []sum{1, 2, 3}, collect(&s))

	s = s.Erase(1)
	assert.Equal(t, []sum{1, 3}, collect(&s))
	assert.Equal(t, sum(4), s.Fold())
}

func TestSplitMerge(t *testing.T) {
	s := splayseq.Empty[sum]()
	for i, v := range []sum{10, 20, 30, 40} {
		s = s.Insert(i, v)
	}
	left, right := s.Split(2)
	assert.Equal(t, 2, left.Len())
	assert.Equal(t, 2, right.Len())
	assert.Equal(t, []sum{10, 20}, collect(&left))
	assert.Equal(t, []sum{30, 40}, collect(&right))

	merged := left.Merge(right)
	assert.Equal(t, []sum{10, 20, 30, 40}, collect(&merged))
	assert.Equal(t, sum(100), merged.Fold())
}

func TestCombineAtMergesIntoPosition(t *testing.T) {
	s := splayseq.Empty[sum]()
	s = s.Insert(0, 1)
	s = s.Insert(1, 2)
	s.CombineAt(1, 10)
	assert.Equal(t, sum(12), s.At(1))
}

func TestReplaceAtOverwrites(t *testing.T) {
	s := splayseq.Empty[sum]()
	s = s.Insert(0, 1)
	s = s.Insert(1, 2)
	s.ReplaceAt(1, 99)
	assert.Equal(t, sum(99), s.At(1))
}

func TestIndexPanics(t *testing.T) {
	s := splayseq.New[sum](1)
	assert.Panics(t, func() { s.At(5) })
	assert.Panics(t, func() { s.At(-1) })
}

func collect(s *splayseq.Seq[sum]) []sum {
	out := make([]sum, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
