// Package algorithms collects classic problems solved over singly.List.
package algorithms

import "github.com/pkg/errors"

var (
	// ErrNilList is returned when a nil *singly.List is passed.
	ErrNilList = errors.New("algorithms: list is nil")

	// ErrOutOfRange is returned when a count or offset does not fit the list.
	ErrOutOfRange = errors.New("algorithms: argument out of range")

	// ErrInvalidDigit is returned by AddTwoNumbers for a node outside 0..9.
	ErrInvalidDigit = errors.New("algorithms: digit outside 0..9")
)
