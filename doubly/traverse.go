package doubly

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvlist/internal/arena"
)

// All yields values from head to tail following Next links.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != arena.Nil; cur = l.nodes.Next(cur) {
			if !yield(l.nodes.Value(cur)) {
				return
			}
		}
	}
}

// Backward yields values from tail to head following Prev links.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.tail; cur != arena.Nil; cur = l.nodes.Prev(cur) {
			if !yield(l.nodes.Value(cur)) {
				return
			}
		}
	}
}

// DisplayForward returns the values from head to tail. Complexity: O(n).
func (l *List[T]) DisplayForward() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// DisplayBackward returns the values from tail to head, the exact reverse
// of DisplayForward. Complexity: O(n).
func (l *List[T]) DisplayBackward() []T {
	out := make([]T, 0, l.size)
	for v := range l.Backward() {
		out = append(out, v)
	}

	return out
}

// String renders the list as "NULL <- 10 <-> 20 -> NULL".
func (l *List[T]) String() string {
	parts := make([]string, 0, l.size)
	for v := range l.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	if len(parts) == 0 {
		return "NULL"
	}

	return "NULL <- " + strings.Join(parts, " <-> ") + " -> NULL"
}
