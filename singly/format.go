package singly

import (
	"fmt"
	"iter"
	"strings"
)

// All yields (position, value) pairs from head to tail. Iteration is bounded
// by Len(), so it terminates on a looped list too.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		cur := l.head
		for i := 0; i < l.size; i++ {
			if !yield(i, l.nodes.Value(cur)) {
				return
			}
			cur = l.nodes.Next(cur)
		}
	}
}

// ToSlice returns the values from head to tail. Complexity: O(n).
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for _, v := range l.All() {
		out = append(out, v)
	}

	return out
}

// String renders the list as "10 -> 20 -> 30 -> NULL".
func (l *List[T]) String() string {
	var sb strings.Builder
	for _, v := range l.All() {
		fmt.Fprintf(&sb, "%v -> ", v)
	}
	sb.WriteString("NULL")

	return sb.String()
}

// DisplayDetailed renders one row per node with its position, value and the
// value its next link points at.
//
//	Position | Data | Next
//	---------|------|-----
//	       0 |   10 | 20
//	       1 |   20 | NULL
func (l *List[T]) DisplayDetailed() string {
	var sb strings.Builder
	sb.WriteString("Position | Data | Next\n")
	sb.WriteString("---------|------|-----\n")

	cur := l.head
	for i := 0; i < l.size; i++ {
		next := "NULL"
		if n := l.nodes.Next(cur); i+1 < l.size || l.looped {
			next = fmt.Sprint(l.nodes.Value(n))
		}
		fmt.Fprintf(&sb, "%8d | %4v | %s\n", i, l.nodes.Value(cur), next)
		cur = l.nodes.Next(cur)
	}

	return sb.String()
}
