// Package functional has slice versions of the list operations. Tests use
// them as the model a LinkedList is checked against, and they double as
// ready-made callbacks.
package functional

import "cmp"

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns the sum of a and b
func Add[N Number](a N, b N) N {
	return a + b
}

// Max returns the max of a and b
func Max[T cmp.Ordered](a T, b T) T {
	if a > b {
		return a
	}
	return b
}

// Map returns fn applied to every element of s, in order.
func Map[T any, U any](s []T, fn func(T) U) []U {
	var out = make([]U, 0, len(s))
	for _, x := range s {
		out = append(out, fn(x))
	}
	return out
}

// Filter returns the elements of s for which pred holds.
func Filter[T any](s []T, pred func(T) bool) []T {
	var out = []T{}
	for _, x := range s {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// Fold combines the elements of s from left to right, starting from init.
func Fold[T any, A any](s []T, fn func(A, T) A, init A) A {
	var acc = init
	for _, x := range s {
		acc = fn(acc, x)
	}
	return acc
}

// Dedupe returns s with every element after its first occurrence dropped.
func Dedupe[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	var out = []T{}
	for _, x := range s {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// RotateLeft moves the first k elements to the end. Negative k rotates right.
func RotateLeft[T any](s []T, k int) []T {
	n := len(s)
	var out = make([]T, 0, n)
	if n == 0 {
		return out
	}
	// NOTE: Go's % keeps the sign of the dividend, so normalize into [0, n)
	k = ((k % n) + n) % n
	out = append(out, s[k:]...)
	out = append(out, s[:k]...)
	return out
}
