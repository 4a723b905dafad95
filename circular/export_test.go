package circular

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

// Validate checks that next from head returns to head after exactly size
// steps and never earlier, and that no next link is nil.
func (l *List[T]) Validate() error {
	if l.head == arena.Nil {
		if l.size != 0 {
			return errors.Errorf("empty list with size %d", l.size)
		}
		return nil
	}

	cur := l.head
	for i := 1; i <= l.size; i++ {
		cur = l.nodes.Next(cur)
		if cur == arena.Nil {
			return errors.Errorf("nil next link after %d steps", i)
		}
		if cur == l.head && i != l.size {
			return errors.Errorf("returned to head after %d steps, size %d", i, l.size)
		}
	}
	if cur != l.head {
		return errors.Errorf("did not return to head after %d steps", l.size)
	}
	if l.nodes.Live() != l.size {
		return errors.Errorf("live arena slots %d, size %d", l.nodes.Live(), l.size)
	}

	return nil
}
