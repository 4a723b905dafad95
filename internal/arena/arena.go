// Package arena provides the node storage shared by every list variant.
//
// A list never holds Go pointers between its nodes. Each node lives in a
// Slot of an Arena and links to its neighbours by Handle. A Handle packs the
// slot index (low 32 bits) with the stamp the slot received when it was
// allocated (high 32 bits). Index 0 is reserved and plays the role of nil, so
// a zero-valued link is always "no node".
//
// Stamps come from one process-wide counter, so no two live allocations
// share one. Freed slots are pushed onto a free list and reused by the next
// Alloc under a fresh stamp: a handle to the freed node, or one issued by
// another arena, never passes Valid.
//
// Because the slot slice may grow, a *Slot returned by At is only valid until
// the next Alloc on the same arena; callers keep Handles, not slot pointers.
//
// An Arena is not safe for concurrent use.
package arena

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// Handle addresses one allocation inside an Arena. Nil (0) never refers to
// a slot.
type Handle uint64

// Nil is the empty link.
const Nil Handle = 0

// ErrInvalidHandle is returned when a handle is Nil, out of range, refers
// to a slot that has been freed since, or was issued by another arena.
var ErrInvalidHandle = errors.New("arena: invalid handle")

// stamps feeds every Alloc in the process. Zero marks a free slot.
var stamps atomic.Uint32

func nextStamp() uint32 {
	for {
		if s := stamps.Add(1); s != 0 {
			return s
		}
	}
}

func (h Handle) index() uint32 { return uint32(h) }

func (h Handle) stamp() uint32 { return uint32(h >> 32) }

// Slot is a single node: one value plus forward and backward links.
// Singly-linked and circular lists leave Prev unused.
type Slot[T any] struct {
	Value T
	Next  Handle
	Prev  Handle

	stamp uint32 // 0 while the slot is free
}

// Arena owns the slots of exactly one list.
type Arena[T any] struct {
	slots []Slot[T] // slots[0] is the reserved nil slot
	free  []uint32
	live  int
}

// New returns an empty arena with room for capHint nodes before growing.
// Complexity: O(capHint).
func New[T any](capHint int) *Arena[T] {
	if capHint < 0 {
		capHint = 0
	}

	return &Arena[T]{slots: make([]Slot[T], 1, capHint+1)}
}

// Alloc stores v in a fresh slot with both links set to Nil.
// Complexity: O(1) amortized.
func (a *Arena[T]) Alloc(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, Slot[T]{})
		idx = uint32(len(a.slots) - 1)
	}
	s := nextStamp()
	a.slots[idx] = Slot[T]{Value: v, stamp: s}
	a.live++

	return Handle(uint64(s)<<32 | uint64(idx))
}

// Free releases h for reuse and zeroes its slot so the value can be
// collected. Freeing an invalid handle is a no-op.
func (a *Arena[T]) Free(h Handle) {
	if !a.Valid(h) {
		return
	}
	a.slots[h.index()] = Slot[T]{}
	a.free = append(a.free, h.index())
	a.live--
}

// Valid reports whether h refers to a slot of this arena that is still
// holding the allocation h was issued for.
func (a *Arena[T]) Valid(h Handle) bool {
	idx := h.index()
	if idx == 0 || int(idx) >= len(a.slots) {
		return false
	}
	s := a.slots[idx].stamp

	return s != 0 && s == h.stamp()
}

// At returns the slot for h. h must be valid; the pointer is invalidated by
// the next Alloc.
func (a *Arena[T]) At(h Handle) *Slot[T] {
	return &a.slots[h.index()]
}

// Lookup is the checked form of At.
func (a *Arena[T]) Lookup(h Handle) (*Slot[T], error) {
	if !a.Valid(h) {
		return nil, errors.Wrapf(ErrInvalidHandle, "handle %#x", uint64(h))
	}

	return &a.slots[h.index()], nil
}

// Next returns the forward link of h.
func (a *Arena[T]) Next(h Handle) Handle { return a.slots[h.index()].Next }

// Prev returns the backward link of h.
func (a *Arena[T]) Prev(h Handle) Handle { return a.slots[h.index()].Prev }

// Value returns the value stored at h.
func (a *Arena[T]) Value(h Handle) T { return a.slots[h.index()].Value }

// Live returns the number of allocated slots.
func (a *Arena[T]) Live() int { return a.live }

// Reset frees every slot at once while keeping the backing capacity.
// Outstanding handles become invalid.
// Complexity: O(len) to drop value references.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:1]
	a.free = a.free[:0]
	a.live = 0
}
