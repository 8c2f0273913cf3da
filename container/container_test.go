package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bbst/container"
)

func TestArrayPushPopOrder(t *testing.T) {
	a := container.NewArray[int]()
	for _, v := range []int{0, 1, 2, 0, 1, 2, 0, 1, 2} {
		a.Push(v)
	}
	want := []int{2, 1, 0, 2, 1, 0, 2, 1, 0}
	for _, w := range want {
		got, ok := a.Pop()
		assert.True(t, ok)
		assert.Equal(t, w, got)
	}
	_, ok := a.Pop()
	assert.False(t, ok)
}

func TestArrayRejectsZeroSized(t *testing.T) {
	assert.Panics(t, func() { container.NewArray[struct{}]() })
}

func TestStackIsPersistent(t *testing.T) {
	s0 := container.EmptyStack[int]()
	s1 := s0.Push(1)
	s2 := s1.Push(2)

	top2, ok := s2.Top()
	assert.True(t, ok)
	assert.Equal(t, 2, top2)

	top1, ok := s1.Top()
	assert.True(t, ok)
	assert.Equal(t, 1, top1)

	s3 := s2.Pop()
	top3, ok := s3.Top()
	assert.True(t, ok)
	assert.Equal(t, 1, top3)

	// s1 is untouched by building and popping s2/s3 from it.
	top1Again, _ := s1.Top()
	assert.Equal(t, 1, top1Again)
}

func TestStackEachVisitsTopToBottom(t *testing.T) {
	s := container.EmptyStack[int]().Push(1).Push(2).Push(3)
	var seen []int
	s.Each(func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{3, 2, 1}, seen)
}

func TestListFrontAndBackOperations(t *testing.T) {
	var l container.List[int]
	l.PushFront(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, 3, l.Len())

	front, ok := l.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := l.PopBack()
	assert.True(t, ok)
	assert.Equal(t, 3, back)

	last, ok := l.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 2, last)

	_, ok = l.PopFront()
	assert.False(t, ok)
}
