package singly

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

// indexOf returns the position of the first node holding v, or -1.
// The scan covers at most size nodes.
func (l *List[T]) indexOf(v T) int {
	cur := l.head
	for i := 0; i < l.size; i++ {
		if l.nodes.Value(cur) == v {
			return i
		}
		cur = l.nodes.Next(cur)
	}

	return -1
}

// Search returns the 0-based position of the first node holding v.
// On a miss it returns -1 together with ErrNotFound, so a miss can never be
// mistaken for position 0.
// Complexity: O(n).
func (l *List[T]) Search(v T) (int, error) {
	pos := l.indexOf(v)
	if pos < 0 {
		return -1, errors.Wrapf(ErrNotFound, "search %v", v)
	}

	return pos, nil
}

// Contains reports whether any node holds v. Complexity: O(n).
func (l *List[T]) Contains(v T) bool {
	return l.indexOf(v) >= 0
}

// GetAtPosition returns the value at pos, valid range [0, Len()).
//
// Errors:
//   - ErrOutOfRange: pos outside the valid range.
//
// Complexity: O(pos).
func (l *List[T]) GetAtPosition(pos int) (T, error) {
	var zero T
	if pos < 0 || pos >= l.size {
		return zero, errors.Wrapf(ErrOutOfRange, "get at %d, length %d", pos, l.size)
	}

	return l.nodes.Value(l.walk(pos)), nil
}

// GetFirst returns the head value. Complexity: O(1).
func (l *List[T]) GetFirst() (T, error) {
	var zero T
	if l.head == arena.Nil {
		return zero, errors.Wrap(ErrEmpty, "get first")
	}

	return l.nodes.Value(l.head), nil
}

// GetLast returns the tail value. Complexity: O(n).
func (l *List[T]) GetLast() (T, error) {
	var zero T
	if l.head == arena.Nil {
		return zero, errors.Wrap(ErrEmpty, "get last")
	}

	return l.nodes.Value(l.walk(l.size - 1)), nil
}
