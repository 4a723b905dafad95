package singly

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

// Validate checks that the cached size matches the reachable node count and
// that the arena holds no leaked nodes.
func (l *List[T]) Validate() error {
	n := 0
	for cur := l.head; cur != arena.Nil; cur = l.nodes.Next(cur) {
		n++
		if n > l.size {
			return errors.Errorf("reachable nodes exceed size %d", l.size)
		}
	}
	if n != l.size {
		return errors.Errorf("size %d, reachable %d", l.size, n)
	}
	if l.nodes != nil && l.nodes.Live() != l.size {
		return errors.Errorf("size %d, live arena slots %d", l.size, l.nodes.Live())
	}

	return nil
}
