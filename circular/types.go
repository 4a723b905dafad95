// Package circular defines the circular singly-linked List, its Cursor,
// options and sentinel errors.
package circular

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

var (
	// ErrEmpty is returned by reads and deletions on a list with no nodes.
	ErrEmpty = errors.New("circular: list is empty")

	// ErrDetached is returned by a Cursor whose node has been removed.
	ErrDetached = errors.New("circular: cursor node was removed")
)

// Option configures a List at construction time.
type Option func(*Options)

// Options holds the construction parameters of a List.
type Options struct {
	// Logger receives Debug records for every mutation. Nil disables logging.
	Logger *slog.Logger

	// CapacityHint pre-sizes the node arena. Zero lets it grow on demand.
	CapacityHint int
}

// DefaultOptions returns Options with logging disabled and no pre-sizing.
func DefaultOptions() Options {
	return Options{}
}

// WithLogger routes operation narration to logger at Debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithCapacityHint reserves room for n nodes. Negative values are ignored.
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.CapacityHint = n
		}
	}
}

// List is a circular singly-linked list: the last node links back to head
// and no node's next link is ever nil. Following next from head exactly
// Len() times returns to head.
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use.
type List[T comparable] struct {
	nodes  *arena.Arena[T]
	head   arena.Handle
	size   int
	logger *slog.Logger
}

// New returns an empty List configured by opts.
func New[T comparable](opts ...Option) *List[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &List[T]{
		nodes:  arena.New[T](o.CapacityHint),
		logger: o.Logger,
	}
}

// FromSlice returns a List whose traversal order from head is values.
// Complexity: O(n).
func FromSlice[T comparable](values []T, opts ...Option) *List[T] {
	l := New[T](append([]Option{WithCapacityHint(len(values))}, opts...)...)
	if len(values) == 0 {
		return l
	}

	l.head = l.nodes.Alloc(values[0])
	last := l.head
	for _, v := range values[1:] {
		h := l.nodes.Alloc(v)
		l.nodes.At(last).Next = h
		last = h
	}
	l.nodes.At(last).Next = l.head
	l.size = len(values)

	return l
}
