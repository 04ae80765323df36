package linkedlist

import (
	"iter"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// Node is one element of a LinkedList. A node belongs to exactly one list and
// can only be linked or unlinked through that list's methods.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// Value returns the payload stored in n.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the following node, or nil for the last node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// LinkedList is a singly-linked list that also keeps a reference to its last
// node so Append is constant time. The zero value is an empty list that
// compares payloads with JSON.
//
// A LinkedList is not safe for concurrent use.
type LinkedList[T any] struct {
	head *Node[T]
	tail *Node[T]
	eq   Equality[T]
}

// New returns an empty list whose payloads are compared with ==.
func New[T comparable]() *LinkedList[T] {
	return NewWith[T](Comparable[T]())
}

// NewWith returns an empty list that uses eq for Delete, IndexOf, Contains
// and RemoveDuplicates. A nil eq selects JSON.
func NewWith[T any](eq Equality[T]) *LinkedList[T] {
	return &LinkedList[T]{eq: eq}
}

// FromSlice returns a list holding the elements of s in order.
func FromSlice[T comparable](s []T) *LinkedList[T] {
	return FromSliceWith[T](Comparable[T](), s)
}

func FromSliceWith[T any](eq Equality[T], s []T) *LinkedList[T] {
	l := NewWith(eq)
	for _, v := range s {
		l.Append(v)
	}
	return l
}

func (l *LinkedList[T]) equality() Equality[T] {
	if l.eq == nil {
		return JSON[T]()
	}
	return l.eq
}

// empty returns a new list with the same equality as l
func (l *LinkedList[T]) empty() *LinkedList[T] {
	return &LinkedList[T]{eq: l.eq}
}

// Size counts the nodes by walking the chain; it is not cached.
func (l *LinkedList[T]) Size() int {
	var count = uint64(0)
	for n := l.head; n != nil; n = n.next {
		count = std.SumAssumeNoOverflow(count, 1)
	}
	return int(count)
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Clear detaches the whole chain at once.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.tail = nil
}

// Head returns the first node, or nil if the list is empty.
func (l *LinkedList[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node, or nil if the list is empty.
func (l *LinkedList[T]) Tail() *Node[T] {
	return l.tail
}

// Front returns the first value. The boolean is false if the list is empty.
func (l *LinkedList[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Back returns the last value. The boolean is false if the list is empty.
func (l *LinkedList[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Append adds v after the current tail.
func (l *LinkedList[T]) Append(v T) {
	n := &Node[T]{value: v}
	if l.tail == nil {
		l.head = n
		l.tail = n
		return
	}
	l.tail.next = n
	l.tail = n
}

// Prepend adds v before the current head.
func (l *LinkedList[T]) Prepend(v T) {
	n := &Node[T]{value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
}

// unlink removes n from the chain. prev must be the node before n, or nil if
// n is the head.
func (l *LinkedList[T]) unlink(prev *Node[T], n *Node[T]) {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	if l.tail == n {
		l.tail = prev
	}
	n.next = nil
}

// Delete removes the first node whose value equals v. It reports whether a
// node was removed.
func (l *LinkedList[T]) Delete(v T) bool {
	eq := l.equality()
	var prev *Node[T]
	for n := l.head; n != nil; n = n.next {
		if eq.Equal(n.value, v) {
			l.unlink(prev, n)
			return true
		}
		prev = n
	}
	return false
}

// IndexOf returns the 0-based position of the first value equal to v, or
// NotFound.
func (l *LinkedList[T]) IndexOf(v T) int {
	eq := l.equality()
	var i = 0
	for n := l.head; n != nil; n = n.next {
		if eq.Equal(n.value, v) {
			return i
		}
		i++
	}
	return NotFound
}

func (l *LinkedList[T]) Contains(v T) bool {
	return l.IndexOf(v) != NotFound
}

// nodeAt walks i hops from the head. The caller checks bounds.
func (l *LinkedList[T]) nodeAt(i int) *Node[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

// InsertAt links v in so that it ends up at position i; 0 makes it the new
// head and Size() makes it the new tail. Any other index fails with
// ErrOutOfBounds.
func (l *LinkedList[T]) InsertAt(v T, i int) error {
	size := l.Size()
	if i < 0 || i > size {
		return outOfBounds("insert", i, size)
	}
	if i == 0 {
		l.Prepend(v)
		return nil
	}
	if i == size {
		l.Append(v)
		return nil
	}
	prev := l.nodeAt(i - 1)
	prev.next = &Node[T]{value: v, next: prev.next}
	return nil
}

// element returns the node at i, which must be in [0, Size()).
func (l *LinkedList[T]) element(op string, i int) (*Node[T], error) {
	size := l.Size()
	if i < 0 || i >= size {
		return nil, outOfBounds(op, i, size)
	}
	return l.nodeAt(i), nil
}

// Get returns the value at position i, which must be in [0, Size()).
func (l *LinkedList[T]) Get(i int) (T, error) {
	n, err := l.element("get", i)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// Set overwrites the value at position i.
func (l *LinkedList[T]) Set(v T, i int) error {
	n, err := l.element("set", i)
	if err != nil {
		return err
	}
	n.value = v
	return nil
}

// Reverse relinks every node to point at its predecessor, so the old head
// becomes the tail.
func (l *LinkedList[T]) Reverse() {
	var prev *Node[T]
	n := l.head
	l.tail = n
	for n != nil {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	l.head = prev
	primitive.Assert(l.tail == nil || l.tail.next == nil)
}

// All returns an iterator over the values from head to tail.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) ToSlice() []T {
	var out = []T{}
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
