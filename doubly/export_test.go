package doubly

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

// Validate checks head/tail termination, back-link symmetry and the size.
func (l *List[T]) Validate() error {
	if (l.head == arena.Nil) != (l.tail == arena.Nil) {
		return errors.Errorf("head %d, tail %d: one nil without the other", l.head, l.tail)
	}
	if l.head == arena.Nil {
		if l.size != 0 {
			return errors.Errorf("empty list with size %d", l.size)
		}
		return nil
	}
	if l.nodes.Prev(l.head) != arena.Nil {
		return errors.New("head.prev is not nil")
	}
	if l.nodes.Next(l.tail) != arena.Nil {
		return errors.New("tail.next is not nil")
	}

	steps := 0
	cur := l.head
	for cur != l.tail {
		next := l.nodes.Next(cur)
		if next == arena.Nil || steps > l.size {
			return errors.Errorf("forward walk lost the tail after %d steps", steps)
		}
		if l.nodes.Prev(next) != cur {
			return errors.Errorf("node %d: next.prev mismatch", cur)
		}
		cur = next
		steps++
	}
	if steps != l.size-1 {
		return errors.Errorf("forward steps %d, size %d", steps, l.size)
	}

	back := 0
	for cur = l.tail; cur != l.head; cur = l.nodes.Prev(cur) {
		back++
	}
	if back != steps {
		return errors.Errorf("backward steps %d, forward steps %d", back, steps)
	}
	if l.nodes.Live() != l.size {
		return errors.Errorf("live arena slots %d, size %d", l.nodes.Live(), l.size)
	}

	return nil
}
