package doubly

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

func (l *List[T]) store() *arena.Arena[T] {
	if l.nodes == nil {
		l.nodes = arena.New[T](0)
	}

	return l.nodes
}

func (l *List[T]) debug(msg string, attrs ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, attrs...)
	}
}

// Len returns the number of nodes. Complexity: O(1).
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no nodes. Complexity: O(1).
func (l *List[T]) IsEmpty() bool { return l.head == arena.Nil }

// InsertAtBeginning makes v the new head and returns its handle.
// Complexity: O(1).
func (l *List[T]) InsertAtBeginning(v T) Handle {
	h := l.store().Alloc(v)
	if l.head == arena.Nil {
		l.head, l.tail = h, h
	} else {
		l.nodes.At(h).Next = l.head
		l.nodes.At(l.head).Prev = h
		l.head = h
	}
	l.size++
	l.debug("doubly: inserted at beginning", slog.Any("value", v))

	return h
}

// InsertAtEnd makes v the new tail and returns its handle.
// Complexity: O(1).
func (l *List[T]) InsertAtEnd(v T) Handle {
	h := l.store().Alloc(v)
	if l.tail == arena.Nil {
		l.head, l.tail = h, h
	} else {
		l.nodes.At(h).Prev = l.tail
		l.nodes.At(l.tail).Next = h
		l.tail = h
	}
	l.size++
	l.debug("doubly: inserted at end", slog.Any("value", v))

	return h
}

// DeleteAtBeginning removes the head and returns its value. When the head
// is also the tail, both collapse to nil.
//
// Errors:
//   - ErrEmpty: the list has no nodes.
//
// Complexity: O(1).
func (l *List[T]) DeleteAtBeginning() (T, error) {
	var zero T
	if l.head == arena.Nil {
		return zero, errors.Wrap(ErrEmpty, "delete at beginning")
	}

	h := l.head
	v := l.nodes.Value(h)
	if l.head == l.tail {
		l.head, l.tail = arena.Nil, arena.Nil
	} else {
		l.head = l.nodes.Next(h)
		l.nodes.At(l.head).Prev = arena.Nil
	}
	l.nodes.Free(h)
	l.size--
	l.debug("doubly: deleted from beginning", slog.Any("value", v))

	return v, nil
}

// DeleteAtEnd removes the tail and returns its value. When the tail is also
// the head, both collapse to nil.
//
// Errors:
//   - ErrEmpty: the list has no nodes.
//
// Complexity: O(1).
func (l *List[T]) DeleteAtEnd() (T, error) {
	var zero T
	if l.tail == arena.Nil {
		return zero, errors.Wrap(ErrEmpty, "delete at end")
	}

	h := l.tail
	v := l.nodes.Value(h)
	if l.head == l.tail {
		l.head, l.tail = arena.Nil, arena.Nil
	} else {
		l.tail = l.nodes.Prev(h)
		l.nodes.At(l.tail).Next = arena.Nil
	}
	l.nodes.Free(h)
	l.size--
	l.debug("doubly: deleted from end", slog.Any("value", v))

	return v, nil
}

// Front returns the head value. Complexity: O(1).
func (l *List[T]) Front() (T, error) {
	var zero T
	if l.head == arena.Nil {
		return zero, errors.Wrap(ErrEmpty, "front")
	}

	return l.nodes.Value(l.head), nil
}

// Back returns the tail value. Complexity: O(1).
func (l *List[T]) Back() (T, error) {
	var zero T
	if l.tail == arena.Nil {
		return zero, errors.Wrap(ErrEmpty, "back")
	}

	return l.nodes.Value(l.tail), nil
}

// Clear drops every node. Outstanding handles become invalid.
func (l *List[T]) Clear() {
	if l.nodes != nil {
		l.nodes.Reset()
	}
	l.head, l.tail = arena.Nil, arena.Nil
	l.size = 0
	l.debug("doubly: cleared")
}
