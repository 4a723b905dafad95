// File: list.go
// Role: insertion and deletion.
//
// Every operation validates its input before touching a link, so a rejected
// call leaves head, size and all links exactly as they were.
package singly

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

// store returns the node arena, creating it for a zero-value List.
func (l *List[T]) store() *arena.Arena[T] {
	if l.nodes == nil {
		l.nodes = arena.New[T](0)
	}

	return l.nodes
}

// debug emits a Debug record when a logger is configured.
func (l *List[T]) debug(msg string, attrs ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, attrs...)
	}
}

// walk returns the node at 0-based position pos by following pos links from
// head. The walk is bounded by pos, never by a Nil link, so it terminates
// even while the list is looped. pos must be in [0, size).
func (l *List[T]) walk(pos int) arena.Handle {
	cur := l.head
	for i := 0; i < pos; i++ {
		cur = l.nodes.Next(cur)
	}

	return cur
}

// breakLoop restores a finite list before a structural mutation.
func (l *List[T]) breakLoop() {
	if l.looped {
		l.BreakLoop()
	}
}

// Len returns the number of nodes. Complexity: O(1).
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no nodes. Complexity: O(1).
func (l *List[T]) IsEmpty() bool { return l.head == arena.Nil }

// InsertAtBeginning makes v the new head.
// Complexity: O(1).
func (l *List[T]) InsertAtBeginning(v T) {
	l.breakLoop()
	h := l.store().Alloc(v)
	l.nodes.At(h).Next = l.head
	l.head = h
	l.size++
	l.debug("singly: inserted at beginning", slog.Any("value", v))
}

// InsertAtEnd appends v after the current last node; on an empty list v
// becomes the head.
// Complexity: O(n), the last node is found by traversal.
func (l *List[T]) InsertAtEnd(v T) {
	l.breakLoop()
	h := l.store().Alloc(v)
	if l.head == arena.Nil {
		l.head = h
	} else {
		cur := l.head
		for l.nodes.Next(cur) != arena.Nil {
			cur = l.nodes.Next(cur)
		}
		l.nodes.At(cur).Next = h
	}
	l.size++
	l.debug("singly: inserted at end", slog.Any("value", v))
}

// InsertAtPosition splices v so that it ends up at position pos.
// Valid positions are [0, Len()]; pos == 0 behaves as InsertAtBeginning and
// pos == Len() appends.
//
// Errors:
//   - ErrOutOfRange: pos < 0 or pos > Len(); nothing is inserted.
//
// Complexity: O(pos).
func (l *List[T]) InsertAtPosition(v T, pos int) error {
	if pos < 0 || pos > l.size {
		l.debug("singly: invalid insert position", slog.Int("position", pos), slog.Int("len", l.size))
		return errors.Wrapf(ErrOutOfRange, "insert at %d, length %d", pos, l.size)
	}
	if pos == 0 {
		l.InsertAtBeginning(v)
		return nil
	}

	l.breakLoop()
	prev := l.walk(pos - 1)
	h := l.store().Alloc(v)
	l.nodes.At(h).Next = l.nodes.Next(prev)
	l.nodes.At(prev).Next = h
	l.size++
	l.debug("singly: inserted at position", slog.Any("value", v), slog.Int("position", pos))

	return nil
}

// InsertAfterValue splices v right after the first node whose value equals
// target, in head-to-tail scan order.
//
// Errors:
//   - ErrNotFound: no node holds target; nothing is inserted.
//
// Complexity: O(n).
func (l *List[T]) InsertAfterValue(v, target T) error {
	pos := l.indexOf(target)
	if pos < 0 {
		l.debug("singly: insert target not found", slog.Any("target", target))
		return errors.Wrapf(ErrNotFound, "insert after %v", target)
	}

	l.breakLoop()
	at := l.walk(pos)
	h := l.store().Alloc(v)
	l.nodes.At(h).Next = l.nodes.Next(at)
	l.nodes.At(at).Next = h
	l.size++
	l.debug("singly: inserted after value", slog.Any("value", v), slog.Any("target", target))

	return nil
}

// DeleteAtBeginning removes the head and returns its value.
//
// Errors:
//   - ErrEmpty: the list has no nodes.
//
// Complexity: O(1).
func (l *List[T]) DeleteAtBeginning() (T, error) {
	var zero T
	if l.head == arena.Nil {
		l.debug("singly: delete on empty list")
		return zero, errors.Wrap(ErrEmpty, "delete at beginning")
	}

	l.breakLoop()
	h := l.head
	v := l.nodes.Value(h)
	l.head = l.nodes.Next(h)
	l.nodes.Free(h)
	l.size--
	l.debug("singly: deleted from beginning", slog.Any("value", v))

	return v, nil
}

// DeleteAtEnd removes the last node and returns its value. A single-node
// list becomes empty.
//
// Errors:
//   - ErrEmpty: the list has no nodes.
//
// Complexity: O(n), the second-to-last node is found by traversal.
func (l *List[T]) DeleteAtEnd() (T, error) {
	var zero T
	if l.head == arena.Nil {
		l.debug("singly: delete on empty list")
		return zero, errors.Wrap(ErrEmpty, "delete at end")
	}

	l.breakLoop()
	if l.nodes.Next(l.head) == arena.Nil {
		v := l.nodes.Value(l.head)
		l.nodes.Free(l.head)
		l.head = arena.Nil
		l.size--
		l.debug("singly: deleted from end", slog.Any("value", v))
		return v, nil
	}

	cur := l.head
	for l.nodes.Next(l.nodes.Next(cur)) != arena.Nil {
		cur = l.nodes.Next(cur)
	}
	last := l.nodes.Next(cur)
	v := l.nodes.Value(last)
	l.nodes.At(cur).Next = arena.Nil
	l.nodes.Free(last)
	l.size--
	l.debug("singly: deleted from end", slog.Any("value", v))

	return v, nil
}

// DeleteAtPosition removes the node at pos and returns its value.
// Valid positions are [0, Len()).
//
// Errors:
//   - ErrEmpty: the list has no nodes.
//   - ErrOutOfRange: pos < 0 or pos >= Len(); nothing is removed.
//
// Complexity: O(pos).
func (l *List[T]) DeleteAtPosition(pos int) (T, error) {
	var zero T
	if l.head == arena.Nil {
		l.debug("singly: delete on empty list")
		return zero, errors.Wrapf(ErrEmpty, "delete at %d", pos)
	}
	if pos < 0 || pos >= l.size {
		l.debug("singly: invalid delete position", slog.Int("position", pos), slog.Int("len", l.size))
		return zero, errors.Wrapf(ErrOutOfRange, "delete at %d, length %d", pos, l.size)
	}
	if pos == 0 {
		return l.DeleteAtBeginning()
	}

	l.breakLoop()
	prev := l.walk(pos - 1)
	victim := l.nodes.Next(prev)
	v := l.nodes.Value(victim)
	l.nodes.At(prev).Next = l.nodes.Next(victim)
	l.nodes.Free(victim)
	l.size--
	l.debug("singly: deleted at position", slog.Any("value", v), slog.Int("position", pos))

	return v, nil
}

// DeleteByValue removes the first node holding v and reports whether one
// was found.
// Complexity: O(n).
func (l *List[T]) DeleteByValue(v T) bool {
	pos := l.indexOf(v)
	if pos < 0 {
		l.debug("singly: value not found", slog.Any("value", v))
		return false
	}
	_, err := l.DeleteAtPosition(pos)

	return err == nil
}

// Clear drops every node.
// Complexity: O(1) for the list, O(capacity) for the arena to release values.
func (l *List[T]) Clear() {
	if l.nodes != nil {
		l.nodes.Reset()
	}
	l.head = arena.Nil
	l.size = 0
	l.looped = false
	l.debug("singly: cleared")
}
