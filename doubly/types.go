// Package doubly defines the doubly-linked List, its handles, options and
// sentinel errors.
package doubly

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

// Handle identifies one node of the List that returned it. It stays valid
// until that node is removed or the list is cleared; after that, and on any
// other List, it is rejected with ErrInvalidHandle even if the node's slot
// has been reused.
type Handle = arena.Handle

// Nil is the zero Handle. It never identifies a node and is what Head, Tail,
// Next and Prev return when there is no such node.
const Nil Handle = arena.Nil

var (
	// ErrEmpty is returned by reads and deletions on a list with no nodes.
	ErrEmpty = errors.New("doubly: list is empty")

	// ErrInvalidHandle is returned when a handle does not identify a live
	// node of the list: Nil, removed, cleared or issued by another list.
	ErrInvalidHandle = errors.New("doubly: invalid handle")
)

// Option configures a List at construction time.
type Option func(*Options)

// Options holds the construction parameters of a List.
type Options struct {
	// Logger receives Debug records for mutations. Nil disables logging.
	Logger *slog.Logger

	// CapacityHint pre-sizes the node arena.
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

// List is a doubly-linked list with head and tail references.
//
// head.Prev and tail.Next are always Nil, and following Next from head
// reaches tail in exactly size-1 steps (Prev from tail likewise reaches head).
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use.
type List[T comparable] struct {
	nodes  *arena.Arena[T]
	head   Handle
	tail   Handle
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

// FromSlice returns a List holding values in order.
// Complexity: O(n).
func FromSlice[T comparable](values []T, opts ...Option) *List[T] {
	l := New[T](append([]Option{WithCapacityHint(len(values))}, opts...)...)
	for _, v := range values {
		l.InsertAtEnd(v)
	}

	return l
}
