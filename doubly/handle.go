// File: handle.go
// Role: O(1) operations on a node identified by its Handle.
//
// These are what the lru package and cursor-style callers build on. Each one
// checks the handle first and returns ErrInvalidHandle without touching any
// link when it is stale.
package doubly

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

func (l *List[T]) check(h Handle) error {
	if l.nodes == nil || !l.nodes.Valid(h) {
		return errors.Wrapf(ErrInvalidHandle, "handle %#x", uint64(h))
	}

	return nil
}

// unlink detaches h from its neighbours and fixes head/tail. h stays allocated.
func (l *List[T]) unlink(h Handle) {
	s := l.nodes.At(h)
	prev, next := s.Prev, s.Next
	if prev == arena.Nil {
		l.head = next
	} else {
		l.nodes.At(prev).Next = next
	}
	if next == arena.Nil {
		l.tail = prev
	} else {
		l.nodes.At(next).Prev = prev
	}
	s.Prev, s.Next = arena.Nil, arena.Nil
}

// Head returns the handle of the first node, or the zero Handle when empty.
func (l *List[T]) Head() Handle { return l.head }

// Tail returns the handle of the last node, or the zero Handle when empty.
func (l *List[T]) Tail() Handle { return l.tail }

// Next returns the handle after h; the zero Handle at the tail or when h is
// invalid.
func (l *List[T]) Next(h Handle) Handle {
	if l.check(h) != nil {
		return arena.Nil
	}

	return l.nodes.Next(h)
}

// Prev returns the handle before h; the zero Handle at the head or when h is
// invalid.
func (l *List[T]) Prev(h Handle) Handle {
	if l.check(h) != nil {
		return arena.Nil
	}

	return l.nodes.Prev(h)
}

// Value returns the value stored at h.
func (l *List[T]) Value(h Handle) (T, error) {
	var zero T
	if err := l.check(h); err != nil {
		return zero, err
	}

	return l.nodes.Value(h), nil
}

// SetValue replaces the value stored at h.
func (l *List[T]) SetValue(h Handle, v T) error {
	if err := l.check(h); err != nil {
		return err
	}
	l.nodes.At(h).Value = v

	return nil
}

// Remove deletes the node at h and returns its value. h becomes invalid.
// Complexity: O(1).
func (l *List[T]) Remove(h Handle) (T, error) {
	var zero T
	if err := l.check(h); err != nil {
		return zero, err
	}

	v := l.nodes.Value(h)
	l.unlink(h)
	l.nodes.Free(h)
	l.size--
	l.debug("doubly: removed", slog.Any("value", v))

	return v, nil
}

// MoveToFront relinks h as the head without reallocating it.
// Complexity: O(1).
func (l *List[T]) MoveToFront(h Handle) error {
	if err := l.check(h); err != nil {
		return err
	}
	if h == l.head {
		return nil
	}

	l.unlink(h)
	l.nodes.At(h).Next = l.head
	if l.head == arena.Nil {
		l.tail = h
	} else {
		l.nodes.At(l.head).Prev = h
	}
	l.head = h

	return nil
}

// InsertAfter splices v right after h and returns the new handle.
// Complexity: O(1).
func (l *List[T]) InsertAfter(h Handle, v T) (Handle, error) {
	if err := l.check(h); err != nil {
		return arena.Nil, err
	}
	if h == l.tail {
		return l.InsertAtEnd(v), nil
	}

	n := l.nodes.Alloc(v)
	next := l.nodes.Next(h)
	l.nodes.At(n).Prev = h
	l.nodes.At(n).Next = next
	l.nodes.At(h).Next = n
	l.nodes.At(next).Prev = n
	l.size++
	l.debug("doubly: inserted after handle", slog.Any("value", v))

	return n, nil
}

// TruncateAfter removes every node after h and returns how many were
// removed; h becomes the tail.
// Complexity: O(k) for k removed nodes.
func (l *List[T]) TruncateAfter(h Handle) (int, error) {
	if err := l.check(h); err != nil {
		return 0, err
	}

	removed := 0
	for cur := l.nodes.Next(h); cur != arena.Nil; {
		next := l.nodes.Next(cur)
		l.nodes.Free(cur)
		cur = next
		removed++
	}
	l.nodes.At(h).Next = arena.Nil
	l.tail = h
	l.size -= removed

	return removed, nil
}
