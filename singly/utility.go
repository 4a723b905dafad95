// File: utility.go
// Role: whole-list transformations and two-pointer queries.
//
// Reverse and RemoveDuplicates relink nodes in place and allocate nothing.
// FindMiddle, DetectLoop and LoopStart use the slow/fast technique: fast
// advances two links per step, slow advances one.
package singly

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

// Reverse reverses the list in place by pointing each node back at its
// predecessor through a (prev, cur, next) window. The former tail becomes
// head.
// Complexity: O(n) time, O(1) extra space.
func (l *List[T]) Reverse() {
	l.breakLoop()

	prev, cur := arena.Nil, l.head
	for cur != arena.Nil {
		next := l.nodes.Next(cur)
		l.nodes.At(cur).Next = prev
		prev = cur
		cur = next
	}
	l.head = prev
	l.debug("singly: reversed", slog.Int("len", l.size))
}

// FindMiddle returns the middle value. For an even length it returns the
// upper middle, e.g. 3 for [1 2 3 4], which is where slow stops when fast
// runs out.
//
// Errors:
//   - ErrEmpty: the list has no nodes.
//
// Complexity: O(n).
func (l *List[T]) FindMiddle() (T, error) {
	var zero T
	if l.head == arena.Nil {
		return zero, errors.Wrap(ErrEmpty, "find middle")
	}

	slow, fast := l.head, l.head
	// fastPos bounds the walk while the tail is linked back into the list.
	for fastPos := 0; fast != arena.Nil && l.nodes.Next(fast) != arena.Nil && fastPos+1 < l.size; fastPos += 2 {
		slow = l.nodes.Next(slow)
		fast = l.nodes.Next(l.nodes.Next(fast))
	}

	return l.nodes.Value(slow), nil
}

// meet runs Floyd's cycle search and returns the node where slow and fast
// meet, or arena.Nil when fast reaches the end.
func (l *List[T]) meet() arena.Handle {
	slow, fast := l.head, l.head
	for fast != arena.Nil && l.nodes.Next(fast) != arena.Nil {
		slow = l.nodes.Next(slow)
		fast = l.nodes.Next(l.nodes.Next(fast))
		if slow == fast {
			return slow
		}
	}

	return arena.Nil
}

// DetectLoop reports whether following next links from head ever revisits a
// node. It is false for every finite list.
// Complexity: O(n) time, O(1) space.
func (l *List[T]) DetectLoop() bool {
	return l.meet() != arena.Nil
}

// LoopStart returns the position of the node where the loop begins, or
// (-1, false) for a finite list.
// Complexity: O(n).
func (l *List[T]) LoopStart() (int, bool) {
	m := l.meet()
	if m == arena.Nil {
		return -1, false
	}

	pos, a, b := 0, l.head, m
	for a != b {
		a = l.nodes.Next(a)
		b = l.nodes.Next(b)
		pos++
	}

	return pos, true
}

// LinkTailTo points the tail's next link at the node at pos, creating a loop.
// It exists to exercise DetectLoop and LoopStart. While looped, reads stay
// bounded by Len() and the next structural mutation calls BreakLoop first.
//
// Errors:
//   - ErrEmpty: the list has no nodes.
//   - ErrOutOfRange: pos outside [0, Len()).
//
// Complexity: O(n).
func (l *List[T]) LinkTailTo(pos int) error {
	if l.head == arena.Nil {
		return errors.Wrap(ErrEmpty, "link tail")
	}
	if pos < 0 || pos >= l.size {
		return errors.Wrapf(ErrOutOfRange, "link tail to %d, length %d", pos, l.size)
	}

	tail := l.walk(l.size - 1)
	l.nodes.At(tail).Next = l.walk(pos)
	l.looped = true
	l.debug("singly: tail linked back", slog.Int("position", pos))

	return nil
}

// BreakLoop clears the tail's back link and reports whether a loop existed.
// Complexity: O(n).
func (l *List[T]) BreakLoop() bool {
	l.looped = false
	if !l.DetectLoop() {
		return false
	}

	tail := l.walk(l.size - 1)
	l.nodes.At(tail).Next = arena.Nil
	l.debug("singly: loop broken")

	return true
}

// RemoveDuplicates drops every node whose value equals its successor's and
// returns how many were removed. The list is expected to be sorted; on
// unsorted input only adjacent repeats are removed.
// Complexity: O(n).
func (l *List[T]) RemoveDuplicates() int {
	l.breakLoop()

	removed := 0
	cur := l.head
	for cur != arena.Nil && l.nodes.Next(cur) != arena.Nil {
		next := l.nodes.Next(cur)
		if l.nodes.Value(cur) == l.nodes.Value(next) {
			l.nodes.At(cur).Next = l.nodes.Next(next)
			l.nodes.Free(next)
			l.size--
			removed++
			continue
		}
		cur = next
	}
	l.debug("singly: duplicates removed", slog.Int("removed", removed))

	return removed
}
