package circular

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

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

// last finds the node whose next link points back to head. head must not be nil.
func (l *List[T]) last() arena.Handle {
	cur := l.head
	for l.nodes.Next(cur) != l.head {
		cur = l.nodes.Next(cur)
	}

	return cur
}

// Len returns the number of nodes. Complexity: O(1).
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no nodes. Complexity: O(1).
func (l *List[T]) IsEmpty() bool { return l.head == arena.Nil }

// InsertAtBeginning makes v the new head. A first node links to itself;
// otherwise the last node is found and re-pointed at the new head.
// Complexity: O(n).
func (l *List[T]) InsertAtBeginning(v T) {
	h := l.store().Alloc(v)
	if l.head == arena.Nil {
		l.nodes.At(h).Next = h
	} else {
		last := l.last()
		l.nodes.At(h).Next = l.head
		l.nodes.At(last).Next = h
	}
	l.head = h
	l.size++
	l.debug("circular: inserted at beginning", slog.Any("value", v))
}

// InsertAtEnd links v between the last node and head; head is unchanged
// unless the list was empty.
// Complexity: O(n).
func (l *List[T]) InsertAtEnd(v T) {
	h := l.store().Alloc(v)
	if l.head == arena.Nil {
		l.nodes.At(h).Next = h
		l.head = h
	} else {
		last := l.last()
		l.nodes.At(h).Next = l.head
		l.nodes.At(last).Next = h
	}
	l.size++
	l.debug("circular: inserted at end", slog.Any("value", v))
}

// DeleteAtBeginning removes head and returns its value; the last node is
// re-pointed at the new head.
//
// Errors:
//   - ErrEmpty: the list has no nodes.
//
// Complexity: O(n).
func (l *List[T]) DeleteAtBeginning() (T, error) {
	var zero T
	if l.head == arena.Nil {
		return zero, errors.Wrap(ErrEmpty, "delete at beginning")
	}

	old := l.head
	v := l.nodes.Value(old)
	if l.size == 1 {
		l.head = arena.Nil
	} else {
		last := l.last()
		l.head = l.nodes.Next(old)
		l.nodes.At(last).Next = l.head
	}
	l.nodes.Free(old)
	l.size--
	l.debug("circular: deleted from beginning", slog.Any("value", v))

	return v, nil
}

// Clear drops every node. Cursors become detached, even after new inserts.
func (l *List[T]) Clear() {
	if l.nodes != nil {
		l.nodes.Reset()
	}
	l.head = arena.Nil
	l.size = 0
	l.debug("circular: cleared")
}

// All yields each value once, starting at head and stopping when the walk
// comes back to head.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.head == arena.Nil {
			return
		}
		cur := l.head
		for {
			if !yield(l.nodes.Value(cur)) {
				return
			}
			cur = l.nodes.Next(cur)
			if cur == l.head {
				return
			}
		}
	}
}

// Display returns the values in traversal order from head. The walk ends
// when head is reached again, after exactly Len() steps.
// Complexity: O(n).
func (l *List[T]) Display() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// String renders the list as "10 -> 20 -> 30 -> 10 (circular)".
func (l *List[T]) String() string {
	if l.head == arena.Nil {
		return "NULL"
	}

	var sb strings.Builder
	for v := range l.All() {
		fmt.Fprintf(&sb, "%v -> ", v)
	}
	fmt.Fprintf(&sb, "%v (circular)", l.nodes.Value(l.head))

	return sb.String()
}
