package linkedlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piijt/data-structures/linkedlist"
)

type person struct {
	Name string
	Age  uint64
}

func byAge(a, b person) bool {
	return a.Age < b.Age
}

func TestSortSanity(t *testing.T) {
	assert := assert.New(t)

	l := linkedlist.FromSlice([]person{
		{"Alice", 25},
		{"Bob", 20},
		{"Charlie", 30},
		{"Dave", 20},
	})
	l.Sort(byAge)
	assert.Equal([]person{
		{"Bob", 20},
		{"Dave", 20},
		{"Alice", 25},
		{"Charlie", 30},
	}, l.ToSlice(), "sort is stable")
	assert.Equal("Charlie", l.Tail().Value().Name)
}

func TestSortEmpty(t *testing.T) {
	l := linkedlist.New[int]()
	l.Sort(func(a, b int) bool { return a < b })
	assert.True(t, l.IsEmpty())
}

func TestMerge(t *testing.T) {
	assert := assert.New(t)
	less := func(a, b int) bool { return a < b }

	a := linkedlist.FromSlice([]int{1, 4, 6})
	b := linkedlist.FromSlice([]int{2, 4, 5, 9})
	m := linkedlist.Merge(a, b, less)
	assert.Equal([]int{1, 2, 4, 4, 5, 6, 9}, m.ToSlice())
	assert.Equal(9, m.Tail().Value())
	assert.Equal([]int{1, 4, 6}, a.ToSlice())

	assert.Equal([]int{1, 4, 6}, linkedlist.Merge(a, nil, less).ToSlice())
	assert.Equal([]int{2, 4, 5, 9}, linkedlist.Merge(nil, b, less).ToSlice())
	assert.True(linkedlist.Merge[int](nil, nil, less).IsEmpty())
}

func TestSplit(t *testing.T) {
	assert := assert.New(t)

	l := linkedlist.FromSlice([]int{1, 2, 3, 4})
	front, back, err := l.Split(1)
	assert.NoError(err)
	assert.Equal([]int{1}, front.ToSlice())
	assert.Equal([]int{2, 3, 4}, back.ToSlice())
	assert.Equal(4, l.Size(), "split copies")

	front, back, err = l.Split(4)
	assert.NoError(err)
	assert.Equal(4, front.Size())
	assert.True(back.IsEmpty())

	_, _, err = l.Split(5)
	assert.ErrorIs(err, linkedlist.ErrOutOfBounds)
}

func TestRotate(t *testing.T) {
	assert := assert.New(t)

	l := linkedlist.FromSlice([]int{1, 2, 3})
	l.Rotate(1)
	assert.Equal([]int{2, 3, 1}, l.ToSlice())
	assert.Equal(1, l.Tail().Value())

	l.Rotate(-1)
	assert.Equal([]int{1, 2, 3}, l.ToSlice())
	assert.Equal(3, l.Tail().Value())

	l.Rotate(3)
	assert.Equal([]int{1, 2, 3}, l.ToSlice())

	empty := linkedlist.New[int]()
	empty.Rotate(2)
	assert.True(empty.IsEmpty())
}

func TestHasCycle(t *testing.T) {
	l := linkedlist.FromSlice([]int{1, 2, 3})
	l.Reverse()
	l.Rotate(2)
	assert.False(t, l.HasCycle())
	assert.False(t, linkedlist.New[int]().HasCycle())
}

func TestIntersection(t *testing.T) {
	assert := assert.New(t)

	a := linkedlist.FromSlice([]int{1, 2, 3, 4, 2})
	b := linkedlist.FromSlice([]int{4, 2, 7})
	assert.Equal([]int{2, 4, 2}, linkedlist.Intersection(a, b).ToSlice())
	assert.True(linkedlist.Intersection(a, nil).IsEmpty())
	assert.True(linkedlist.Intersection(nil, b).IsEmpty())
}

func TestFlatten(t *testing.T) {
	assert := assert.New(t)

	nested := linkedlist.NewWith[*linkedlist.LinkedList[int]](nil)
	nested.Append(linkedlist.FromSlice([]int{1, 2}))
	nested.Append(nil)
	nested.Append(linkedlist.New[int]())
	nested.Append(linkedlist.FromSlice([]int{3}))

	flat := linkedlist.Flatten[int](nested, linkedlist.Comparable[int]())
	assert.Equal([]int{1, 2, 3}, flat.ToSlice())
	assert.Equal(3, flat.Tail().Value())
}
