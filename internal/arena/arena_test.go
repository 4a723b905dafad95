package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/internal/arena"
)

// TestAlloc_ReservesNil verifies that the first allocation never returns Nil.
func TestAlloc_ReservesNil(t *testing.T) {
	a := arena.New[int](0)
	h := a.Alloc(7)

	assert.NotEqual(t, arena.Nil, h)
	assert.True(t, a.Valid(h))
	assert.False(t, a.Valid(arena.Nil))
	assert.Equal(t, 7, a.Value(h))
	assert.Equal(t, arena.Nil, a.Next(h))
	assert.Equal(t, arena.Nil, a.Prev(h))
	assert.Equal(t, 1, a.Live())
}

// TestFree_ReusesSlot checks that a freed slot is handed out again and zeroed.
func TestFree_ReusesSlot(t *testing.T) {
	a := arena.New[string](2)
	h1 := a.Alloc("a")
	h2 := a.Alloc("b")
	a.At(h1).Next = h2

	a.Free(h1)
	assert.False(t, a.Valid(h1))
	assert.Equal(t, 1, a.Live())

	h3 := a.Alloc("c")
	assert.NotEqual(t, h1, h3, "a reused slot gets a fresh handle")
	assert.Equal(t, uint32(h1), uint32(h3), "free list should be reused first")
	assert.Equal(t, arena.Nil, a.Next(h3), "reused slot must start unlinked")
	assert.Equal(t, "c", a.Value(h3))
	assert.False(t, a.Valid(h1), "the old handle must not reach the new node")
	assert.True(t, a.Valid(h3))
	assert.True(t, a.Valid(h2))
}

// TestValid_RejectsForeign keeps handles of one arena out of another.
func TestValid_RejectsForeign(t *testing.T) {
	a := arena.New[int](0)
	b := arena.New[int](0)
	ha := a.Alloc(1)
	hb := b.Alloc(2)

	assert.Equal(t, uint32(ha), uint32(hb), "both sit at the first slot")
	assert.False(t, a.Valid(hb))
	assert.False(t, b.Valid(ha))
	_, err := a.Lookup(hb)
	assert.ErrorIs(t, err, arena.ErrInvalidHandle)
}

// TestFree_InvalidIsNoop ensures double frees and out-of-range handles are ignored.
func TestFree_InvalidIsNoop(t *testing.T) {
	a := arena.New[int](0)
	h := a.Alloc(1)
	a.Free(h)
	a.Free(h)
	a.Free(arena.Handle(99))
	a.Free(arena.Nil)

	assert.Equal(t, 0, a.Live())
	h2 := a.Alloc(2)
	assert.Equal(t, uint32(h), uint32(h2))
	assert.Equal(t, 1, a.Live())

	a.Free(h)
	assert.Equal(t, 1, a.Live(), "a stale handle must not free the new node")
	assert.Equal(t, 2, a.Value(h2))
}

// TestLookup reports ErrInvalidHandle for stale handles.
func TestLookup(t *testing.T) {
	a := arena.New[int](0)
	h := a.Alloc(5)

	s, err := a.Lookup(h)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Value)

	a.Free(h)
	_, err = a.Lookup(h)
	assert.ErrorIs(t, err, arena.ErrInvalidHandle)
}

// TestReset drops every slot.
func TestReset(t *testing.T) {
	a := arena.New[int](4)
	handles := make([]arena.Handle, 0, 4)
	for i := 0; i < 4; i++ {
		handles = append(handles, a.Alloc(i))
	}
	a.Free(handles[1])

	a.Reset()
	assert.Equal(t, 0, a.Live())
	for _, h := range handles {
		assert.False(t, a.Valid(h))
	}
	h := a.Alloc(10)
	assert.Equal(t, uint32(1), uint32(h))
	assert.False(t, a.Valid(handles[0]), "slot 1 is reused under a new stamp")
	assert.True(t, a.Valid(h))
}
