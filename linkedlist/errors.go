package linkedlist

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned (wrapped) by index-based operations when the
// index is outside the range that operation accepts.
var ErrOutOfBounds = errors.New("index out of bounds")

// NotFound is the position IndexOf reports for a missing value.
const NotFound = -1

func outOfBounds(op string, i int, size int) error {
	return fmt.Errorf("%s at %d: %w (size %d)", op, i, ErrOutOfBounds, size)
}
