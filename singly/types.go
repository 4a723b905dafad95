// Package singly defines the singly-linked List, its options and sentinel errors.
package singly

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/internal/arena"
)

// Sentinel errors for singly-linked list operations.
var (
	// ErrEmpty is returned by reads and deletions on a list with no nodes.
	ErrEmpty = errors.New("singly: list is empty")

	// ErrOutOfRange is returned when a position lies outside the valid range
	// of the operation. The list is left unchanged.
	ErrOutOfRange = errors.New("singly: position out of range")

	// ErrNotFound is returned when a searched or targeted value is absent.
	ErrNotFound = errors.New("singly: value not found")
)

// Option configures a List at construction time.
type Option func(*Options)

// Options holds the construction parameters of a List.
type Options struct {
	// Logger receives Debug records for every mutation and rejection.
	// Nil disables logging.
	Logger *slog.Logger

	// CapacityHint pre-sizes the node arena. Zero lets it grow on demand.
	CapacityHint int
}

// DefaultOptions returns Options with logging disabled and no pre-sizing.
func DefaultOptions() Options {
	return Options{
		Logger:       nil,
		CapacityHint: 0,
	}
}

// WithLogger routes operation narration to logger at Debug level.
// Passing nil keeps logging disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithCapacityHint reserves room for n nodes. Negative values are ignored.
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.CapacityHint = n
		}
	}
}

// List is a singly-linked list of comparable values.
//
// head is the first node (arena.Nil when empty) and size is the cached node
// count; size always equals the number of nodes reachable from head.
// looped is set while the tail has been linked back into the list by
// LinkTailTo.
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use.
type List[T comparable] struct {
	nodes  *arena.Arena[T]
	head   arena.Handle
	size   int
	looped bool
	logger *slog.Logger
}

// New returns an empty List configured by opts.
// Complexity: O(1) plus the capacity hint.
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

	tail := arena.Nil
	for _, v := range values {
		h := l.nodes.Alloc(v)
		if tail == arena.Nil {
			l.head = h
		} else {
			l.nodes.At(tail).Next = h
		}
		tail = h
	}
	l.size = len(values)

	return l
}
