package seqnode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bbst/seqnode"
)

type leaf struct {
	sz, ht int
	fold   int
}

func (l *leaf) Size() int   { return l.sz }
func (l *leaf) Height() int { return l.ht }
func (l *leaf) Fold() int   { return l.fold }

func TestAccessorsAbsorbNil(t *testing.T) {
	var n *leaf
	assert.Equal(t, 0, seqnode.SizeOf(n))
	assert.Equal(t, 0, seqnode.HeightOf(n))
	assert.Equal(t, -1, seqnode.FoldOf(n, -1))
}

func TestAccessorsReadPresent(t *testing.T) {
	n := &leaf{sz: 3, ht: 2, fold: 7}
	assert.Equal(t, 3, seqnode.SizeOf(n))
	assert.Equal(t, 2, seqnode.HeightOf(n))
	assert.Equal(t, 7, seqnode.FoldOf(n, -1))
}

func TestDirOther(t *testing.T) {
	assert.Equal(t, seqnode.Right, seqnode.Left.Other())
	assert.Equal(t, seqnode.Left, seqnode.Right.Other())
}

func TestDiffOf(t *testing.T) {
	l := &leaf{ht: 3}
	r := &leaf{ht: 1}
	assert.Equal(t, 2, seqnode.DiffOf[*leaf](l, r))
	assert.Equal(t, -3, seqnode.DiffOf[*leaf](nil, l))
}
