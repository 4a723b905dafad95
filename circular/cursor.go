package circular

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

// Cursor walks a List round and round, like a playlist on repeat.
// A cursor created on an empty list attaches to head on first use.
type Cursor[T comparable] struct {
	list *List[T]
	cur  arena.Handle
}

// NewCursor returns a Cursor positioned at head.
func (l *List[T]) NewCursor() *Cursor[T] {
	return &Cursor[T]{list: l, cur: l.head}
}

// position resolves the cursor's node, attaching it to head if unset.
func (c *Cursor[T]) position() (arena.Handle, error) {
	l := c.list
	if l.head == arena.Nil {
		return arena.Nil, errors.Wrap(ErrEmpty, "cursor")
	}
	if c.cur == arena.Nil {
		c.cur = l.head
	}
	if !l.nodes.Valid(c.cur) {
		return arena.Nil, errors.Wrapf(ErrDetached, "handle %#x", uint64(c.cur))
	}

	return c.cur, nil
}

// Current returns the value under the cursor.
func (c *Cursor[T]) Current() (T, error) {
	var zero T
	h, err := c.position()
	if err != nil {
		return zero, err
	}

	return c.list.nodes.Value(h), nil
}

// Next advances one node, wrapping from the last node to head.
// Complexity: O(1).
func (c *Cursor[T]) Next() (T, error) {
	var zero T
	h, err := c.position()
	if err != nil {
		return zero, err
	}
	c.cur = c.list.nodes.Next(h)

	return c.list.nodes.Value(c.cur), nil
}

// Prev steps back one node, wrapping from head to the last node.
// Complexity: O(n), the predecessor is found by walking the ring.
func (c *Cursor[T]) Prev() (T, error) {
	var zero T
	h, err := c.position()
	if err != nil {
		return zero, err
	}

	p := h
	for c.list.nodes.Next(p) != h {
		p = c.list.nodes.Next(p)
	}
	c.cur = p

	return c.list.nodes.Value(p), nil
}

// Reset moves the cursor back to head.
func (c *Cursor[T]) Reset() {
	c.cur = c.list.head
}
