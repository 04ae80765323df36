package linkedlist

import "github.com/goose-lang/primitive"

// Sort orders the values by less, in place. Equal values keep their relative
// order.
func (l *LinkedList[T]) Sort(less func(a T, b T) bool) {
	// Bubble sort over node values; the links are left alone.
	var swapped = true
	for swapped {
		swapped = false
		for n := l.head; n != nil && n.next != nil; n = n.next {
			if less(n.next.value, n.value) {
				tmp := n.value
				n.value = n.next.value
				n.next.value = tmp
				swapped = true
			}
		}
	}
}

// Merge returns a new sorted list from two lists that are already sorted by
// less. On ties values from a come first. Either list may be nil.
func Merge[T any](a *LinkedList[T], b *LinkedList[T], less func(x T, y T) bool) *LinkedList[T] {
	var out *LinkedList[T]
	var na, nb *Node[T]
	if a != nil {
		out = a.empty()
		na = a.head
	}
	if b != nil {
		if out == nil {
			out = b.empty()
		}
		nb = b.head
	}
	if out == nil {
		return NewWith[T](nil)
	}
	for na != nil && nb != nil {
		if less(nb.value, na.value) {
			out.Append(nb.value)
			nb = nb.next
		} else {
			out.Append(na.value)
			na = na.next
		}
	}
	for ; na != nil; na = na.next {
		out.Append(na.value)
	}
	for ; nb != nil; nb = nb.next {
		out.Append(nb.value)
	}
	return out
}

// Split copies l into the values before i and the values from i on. Valid
// indices are 0 through Size().
func (l *LinkedList[T]) Split(i int) (*LinkedList[T], *LinkedList[T], error) {
	size := l.Size()
	if i < 0 || i > size {
		return nil, nil, outOfBounds("split", i, size)
	}
	front, err := l.Slice(0, i)
	if err != nil {
		return nil, nil, err
	}
	back, err := l.Slice(i, size)
	if err != nil {
		return nil, nil, err
	}
	return front, back, nil
}

// Rotate moves the first k values to the end, so [1, 2, 3] rotated by 1 is
// [2, 3, 1]. A negative k rotates the other way.
func (l *LinkedList[T]) Rotate(k int) {
	size := l.Size()
	if size == 0 {
		return
	}
	k = ((k % size) + size) % size
	if k == 0 {
		return
	}
	newTail := l.nodeAt(k - 1)
	l.tail.next = l.head
	l.head = newTail.next
	newTail.next = nil
	l.tail = newTail
	primitive.Assert(l.tail.next == nil)
}

// HasCycle reports whether following next from the head ever revisits a
// node. Lists built through this package never have cycles.
func (l *LinkedList[T]) HasCycle() bool {
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return true
		}
	}
	return false
}

// Intersection returns the values of a, in order, that also occur in b,
// compared with a's Equality.
//
// Lists never share nodes, so this intersects values rather than looking for
// a common suffix of nodes.
func Intersection[T any](a *LinkedList[T], b *LinkedList[T]) *LinkedList[T] {
	if a == nil {
		return NewWith[T](nil)
	}
	out := a.empty()
	if b == nil {
		return out
	}
	inB := newSeen(a.equality())
	for n := b.head; n != nil; n = n.next {
		inB.add(n.value)
	}
	for n := a.head; n != nil; n = n.next {
		if inB.contains(n.value) {
			out.Append(n.value)
		}
	}
	return out
}

// Flatten concatenates copies of every inner list, skipping nil ones. eq is
// the result's Equality; nil selects JSON.
func Flatten[T any](l *LinkedList[*LinkedList[T]], eq Equality[T]) *LinkedList[T] {
	out := NewWith(eq)
	for n := l.head; n != nil; n = n.next {
		out.Concat(n.value)
	}
	return out
}
