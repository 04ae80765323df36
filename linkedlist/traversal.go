package linkedlist

import (
	"fmt"
	"strings"
)

// Find returns the first value satisfying pred. The boolean is false if there
// is none.
func (l *LinkedList[T]) Find(pred func(T) bool) (T, bool) {
	for n := l.head; n != nil; n = n.next {
		if pred(n.value) {
			return n.value, true
		}
	}
	var zero T
	return zero, false
}

// RemoveDuplicates keeps the first occurrence of every value and unlinks the
// later ones, using the list's Equality. It returns how many nodes were
// removed.
func (l *LinkedList[T]) RemoveDuplicates() int {
	s := newSeen(l.equality())
	var removed = 0
	var prev *Node[T]
	n := l.head
	for n != nil {
		next := n.next
		if s.contains(n.value) {
			l.unlink(prev, n)
			removed++
		} else {
			s.add(n.value)
			prev = n
		}
		n = next
	}
	return removed
}

// Slice returns a new list with copies of the values in [start, end).
func (l *LinkedList[T]) Slice(start int, end int) (*LinkedList[T], error) {
	size := l.Size()
	if start < 0 || end < start || end > size {
		return nil, fmt.Errorf("slice [%d:%d]: %w (size %d)", start, end, ErrOutOfBounds, size)
	}
	out := l.empty()
	n := l.nodeAt(start)
	for i := start; i < end; i++ {
		out.Append(n.value)
		n = n.next
	}
	return out, nil
}

// Concat appends copies of every value in other and returns l. A nil or
// empty other leaves l unchanged; l.Concat(l) doubles l.
func (l *LinkedList[T]) Concat(other *LinkedList[T]) *LinkedList[T] {
	if other == nil || other.head == nil {
		return l
	}
	// other may be l itself, so stop at its tail as it was on entry
	last := other.tail
	for n := other.head; ; n = n.next {
		l.Append(n.value)
		if n == last {
			break
		}
	}
	return l
}

// String renders the values as "[1, 2, 3]".
func (l *LinkedList[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		fmt.Fprint(&b, n.value)
		if n.next != nil {
			b.WriteString(", ")
		}
	}
	b.WriteByte(']')
	return b.String()
}

// ForEach replaces every value with fn's result, in place. Use Each to visit
// values without changing them.
func (l *LinkedList[T]) ForEach(fn func(T) T) {
	for n := l.head; n != nil; n = n.next {
		n.value = fn(n.value)
	}
}

// Each calls fn on every value from head to tail.
func (l *LinkedList[T]) Each(fn func(T)) {
	for n := l.head; n != nil; n = n.next {
		fn(n.value)
	}
}

// Map returns a new list of fn applied to each value; l is not modified.
func (l *LinkedList[T]) Map(fn func(T) T) *LinkedList[T] {
	out := l.empty()
	for n := l.head; n != nil; n = n.next {
		out.Append(fn(n.value))
	}
	return out
}

// MapTo is Map for a function that changes the payload type. eq is the new
// list's Equality; nil selects JSON.
func MapTo[T any, U any](l *LinkedList[T], fn func(T) U, eq Equality[U]) *LinkedList[U] {
	out := NewWith(eq)
	for n := l.head; n != nil; n = n.next {
		out.Append(fn(n.value))
	}
	return out
}

// Filter returns a new list with the values for which pred is true.
func (l *LinkedList[T]) Filter(pred func(T) bool) *LinkedList[T] {
	out := l.empty()
	for n := l.head; n != nil; n = n.next {
		if pred(n.value) {
			out.Append(n.value)
		}
	}
	return out
}

// Reduce folds the values from head to tail starting from init.
func (l *LinkedList[T]) Reduce(fn func(acc T, v T) T, init T) T {
	return Fold(l, fn, init)
}

// Fold is Reduce with an accumulator of a different type.
func Fold[T any, A any](l *LinkedList[T], fn func(acc A, v T) A, init A) A {
	var acc = init
	for n := l.head; n != nil; n = n.next {
		acc = fn(acc, n.value)
	}
	return acc
}

// Clone returns a copy of l with the same Equality.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	return l.empty().Concat(l)
}

// Equal reports whether other holds equal values in the same order, using
// l's Equality.
func (l *LinkedList[T]) Equal(other *LinkedList[T]) bool {
	if other == nil {
		return l.head == nil
	}
	eq := l.equality()
	a, b := l.head, other.head
	for a != nil && b != nil {
		if !eq.Equal(a.value, b.value) {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}
