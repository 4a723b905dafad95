package doubly_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/doubly"
)

// TestEnds follows the classic walkthrough: three appends, one prepend, then
// deletions from both ends.
func TestEnds(t *testing.T) {
	l := doubly.New[int]()
	l.InsertAtEnd(10)
	l.InsertAtEnd(20)
	l.InsertAtEnd(30)
	l.InsertAtBeginning(5)
	require.NoError(t, l.Validate())

	assert.Equal(t, []int{5, 10, 20, 30}, l.DisplayForward())
	assert.Equal(t, []int{30, 20, 10, 5}, l.DisplayBackward())
	assert.Equal(t, "NULL <- 5 <-> 10 <-> 20 <-> 30 -> NULL", l.String())

	v, err := l.DeleteAtBeginning()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = l.DeleteAtEnd()
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	assert.Equal(t, []int{10, 20}, l.DisplayForward())
	require.NoError(t, l.Validate())
}

// TestSingleNode collapses head and tail together from either end.
func TestSingleNode(t *testing.T) {
	l := doubly.New[string]()
	l.InsertAtBeginning("only")
	v, err := l.DeleteAtEnd()
	require.NoError(t, err)
	assert.Equal(t, "only", v)
	assert.True(t, l.IsEmpty())
	require.NoError(t, l.Validate())

	l.InsertAtEnd("again")
	v, err = l.DeleteAtBeginning()
	require.NoError(t, err)
	assert.Equal(t, "again", v)
	assert.True(t, l.IsEmpty())
	require.NoError(t, l.Validate())
	assert.Equal(t, "NULL", l.String())
}

// TestEmpty reports ErrEmpty and leaves the list intact.
func TestEmpty(t *testing.T) {
	var l doubly.List[int]
	_, err := l.DeleteAtBeginning()
	assert.ErrorIs(t, err, doubly.ErrEmpty)
	_, err = l.DeleteAtEnd()
	assert.ErrorIs(t, err, doubly.ErrEmpty)
	_, err = l.Front()
	assert.ErrorIs(t, err, doubly.ErrEmpty)
	_, err = l.Back()
	assert.ErrorIs(t, err, doubly.ErrEmpty)
	assert.Empty(t, l.DisplayForward())
	require.NoError(t, l.Validate())
}

// TestForwardIsReverseOfBackward drives a random sequence of end operations
// and checks the traversal symmetry after every step.
func TestForwardIsReverseOfBackward(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	l := doubly.New[int]()
	for i := 0; i < 500; i++ {
		switch r.Intn(4) {
		case 0:
			l.InsertAtBeginning(i)
		case 1:
			l.InsertAtEnd(i)
		case 2:
			_, _ = l.DeleteAtBeginning()
		case 3:
			_, _ = l.DeleteAtEnd()
		}
		fwd := l.DisplayForward()
		back := l.DisplayBackward()
		slices.Reverse(back)
		require.Equal(t, fwd, back, "step %d", i)
		require.Equal(t, l.Len(), len(fwd))
	}
	require.NoError(t, l.Validate())
}

// TestHandles covers Value, SetValue, InsertAfter, MoveToFront and Remove.
func TestHandles(t *testing.T) {
	l := doubly.New[string]()
	a := l.InsertAtEnd("a")
	b := l.InsertAtEnd("b")
	c := l.InsertAtEnd("c")

	x, err := l.InsertAfter(a, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x", "b", "c"}, l.DisplayForward())

	_, err = l.InsertAfter(c, "d")
	require.NoError(t, err)
	assert.Equal(t, "d", mustBack(t, l))

	require.NoError(t, l.MoveToFront(c))
	assert.Equal(t, []string{"c", "a", "x", "b", "d"}, l.DisplayForward())
	require.NoError(t, l.MoveToFront(c))
	require.NoError(t, l.Validate())

	require.NoError(t, l.SetValue(x, "X"))
	v, err := l.Value(x)
	require.NoError(t, err)
	assert.Equal(t, "X", v)

	v, err = l.Remove(b)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, []string{"c", "a", "X", "d"}, l.DisplayForward())
	require.NoError(t, l.Validate())

	assert.Equal(t, a, l.Next(c))
	assert.Equal(t, c, l.Prev(a))
	assert.Equal(t, c, l.Head())
	assert.Equal(t, doubly.Nil, l.Prev(c))
}

// TestHandles_Stale rejects removed handles without mutation.
func TestHandles_Stale(t *testing.T) {
	l := doubly.New[int]()
	h := l.InsertAtEnd(1)
	l.InsertAtEnd(2)
	_, err := l.Remove(h)
	require.NoError(t, err)

	_, err = l.Remove(h)
	assert.ErrorIs(t, err, doubly.ErrInvalidHandle)
	assert.ErrorIs(t, l.MoveToFront(h), doubly.ErrInvalidHandle)
	assert.ErrorIs(t, l.SetValue(h, 9), doubly.ErrInvalidHandle)
	_, err = l.InsertAfter(h, 9)
	assert.ErrorIs(t, err, doubly.ErrInvalidHandle)
	_, err = l.Value(0)
	assert.ErrorIs(t, err, doubly.ErrInvalidHandle)
	assert.Equal(t, doubly.Nil, l.Next(h))

	assert.Equal(t, []int{2}, l.DisplayForward())
	require.NoError(t, l.Validate())
}

// TestHandles_StaleAfterReuse rejects a removed handle even after its slot
// has been handed to a new node.
func TestHandles_StaleAfterReuse(t *testing.T) {
	l := doubly.FromSlice([]int{1, 2, 3})
	h := l.Head()
	_, err := l.Remove(h)
	require.NoError(t, err)
	fresh := l.InsertAtEnd(99)

	_, err = l.Remove(h)
	assert.ErrorIs(t, err, doubly.ErrInvalidHandle)
	assert.ErrorIs(t, l.SetValue(h, 7), doubly.ErrInvalidHandle)
	assert.ErrorIs(t, l.MoveToFront(h), doubly.ErrInvalidHandle)
	_, err = l.TruncateAfter(h)
	assert.ErrorIs(t, err, doubly.ErrInvalidHandle)
	assert.Equal(t, []int{2, 3, 99}, l.DisplayForward())

	v, err := l.Value(fresh)
	require.NoError(t, err)
	assert.Equal(t, 99, v)
	require.NoError(t, l.Validate())
}

// TestHandles_OtherList rejects handles issued by a different list.
func TestHandles_OtherList(t *testing.T) {
	a := doubly.FromSlice([]int{1, 2, 3})
	b := doubly.FromSlice([]int{7, 8, 9})

	assert.ErrorIs(t, a.SetValue(b.Head(), 42), doubly.ErrInvalidHandle)
	_, err := a.Remove(b.Tail())
	assert.ErrorIs(t, err, doubly.ErrInvalidHandle)
	assert.Equal(t, doubly.Nil, a.Next(b.Head()))

	assert.Equal(t, []int{1, 2, 3}, a.DisplayForward())
	assert.Equal(t, []int{7, 8, 9}, b.DisplayForward())
	require.NoError(t, a.Validate())
}

// TestHandles_StaleAfterClear rejects handles from before Clear.
func TestHandles_StaleAfterClear(t *testing.T) {
	l := doubly.FromSlice([]int{1, 2})
	h := l.Head()
	l.Clear()
	l.InsertAtEnd(5)

	_, err := l.Value(h)
	assert.ErrorIs(t, err, doubly.ErrInvalidHandle)
	assert.Equal(t, []int{5}, l.DisplayForward())
}

// TestTruncateAfter drops the forward part of the list.
func TestTruncateAfter(t *testing.T) {
	l := doubly.FromSlice([]int{1, 2, 3, 4})
	second := l.Next(l.Head())

	n, err := l.TruncateAfter(second)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1, 2}, l.DisplayForward())
	assert.Equal(t, second, l.Tail())
	require.NoError(t, l.Validate())

	n, err = l.TruncateAfter(second)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestClear invalidates handles.
func TestClear(t *testing.T) {
	l := doubly.FromSlice([]int{1, 2, 3})
	h := l.Head()
	l.Clear()
	assert.True(t, l.IsEmpty())
	_, err := l.Value(h)
	assert.ErrorIs(t, err, doubly.ErrInvalidHandle)
	require.NoError(t, l.Validate())
}

func mustBack(t *testing.T, l *doubly.List[string]) string {
	t.Helper()
	v, err := l.Back()
	require.NoError(t, err)

	return v
}
