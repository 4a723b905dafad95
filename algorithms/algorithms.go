package algorithms

import (
	"cmp"
	"iter"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/singly"
)

// MergeSorted merges two ascending lists into a new ascending list. On ties
// the value from a comes first.
// Complexity: O(n+m).
func MergeSorted[T cmp.Ordered](a, b *singly.List[T]) (*singly.List[T], error) {
	if a == nil || b == nil {
		return nil, ErrNilList
	}

	nextA, stopA := iter.Pull2(a.All())
	defer stopA()
	nextB, stopB := iter.Pull2(b.All())
	defer stopB()

	merged := make([]T, 0, a.Len()+b.Len())
	_, va, okA := nextA()
	_, vb, okB := nextB()
	for okA && okB {
		if va <= vb {
			merged = append(merged, va)
			_, va, okA = nextA()
		} else {
			merged = append(merged, vb)
			_, vb, okB = nextB()
		}
	}
	for ; okA; _, va, okA = nextA() {
		merged = append(merged, va)
	}
	for ; okB; _, vb, okB = nextB() {
		merged = append(merged, vb)
	}

	return singly.FromSlice(merged), nil
}

// RemoveNthFromEnd returns a copy of l without its n-th node counted from
// the end (n = 1 is the tail).
//
// Errors:
//   - ErrNilList: l is nil.
//   - ErrOutOfRange: n outside [1, l.Len()].
//
// Complexity: O(n).
func RemoveNthFromEnd[T comparable](l *singly.List[T], n int) (*singly.List[T], error) {
	if l == nil {
		return nil, ErrNilList
	}
	if n < 1 || n > l.Len() {
		return nil, errors.Wrapf(ErrOutOfRange, "n=%d, length %d", n, l.Len())
	}

	out := singly.FromSlice(l.ToSlice())
	if _, err := out.DeleteAtPosition(l.Len() - n); err != nil {
		return nil, err
	}

	return out, nil
}

// IsPalindrome reports whether l reads the same in both directions. A copy
// is reversed in place and the first half compared against l.
// Complexity: O(n) time, O(n) space for the copy.
func IsPalindrome[T comparable](l *singly.List[T]) bool {
	if l == nil || l.Len() < 2 {
		return true
	}

	rev := singly.FromSlice(l.ToSlice())
	rev.Reverse()

	next, stop := iter.Pull2(rev.All())
	defer stop()
	for i, v := range l.All() {
		if i >= l.Len()/2 {
			break
		}
		_, w, _ := next()
		if v != w {
			return false
		}
	}

	return true
}

// RotateRight returns a copy of l rotated right by k places:
// [1 2 3 4 5] rotated by 2 is [4 5 1 2 3]. k may exceed Len().
//
// Errors:
//   - ErrNilList: l is nil.
//   - ErrOutOfRange: k < 0.
//
// Complexity: O(n).
func RotateRight[T comparable](l *singly.List[T], k int) (*singly.List[T], error) {
	if l == nil {
		return nil, ErrNilList
	}
	if k < 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "k=%d", k)
	}

	values := l.ToSlice()
	n := len(values)
	if n == 0 || k%n == 0 {
		return singly.FromSlice(values), nil
	}
	split := n - k%n

	return singly.FromSlice(append(values[split:], values[:split]...)), nil
}

// AddTwoNumbers adds two non-negative integers stored as digit lists with
// the least significant digit at the head: [2 4 3] + [5 6 4] = [7 0 8]
// (342 + 465 = 807).
//
// Errors:
//   - ErrNilList: a or b is nil.
//   - ErrInvalidDigit: a node holds a value outside 0..9.
//
// Complexity: O(max(n, m)).
func AddTwoNumbers(a, b *singly.List[int]) (*singly.List[int], error) {
	if a == nil || b == nil {
		return nil, ErrNilList
	}

	nextA, stopA := iter.Pull2(a.All())
	defer stopA()
	nextB, stopB := iter.Pull2(b.All())
	defer stopB()

	var digits []int
	carry := 0
	for {
		_, da, okA := nextA()
		_, db, okB := nextB()
		if !okA && !okB && carry == 0 {
			break
		}
		if da < 0 || da > 9 || db < 0 || db > 9 {
			return nil, errors.Wrapf(ErrInvalidDigit, "position %d", len(digits))
		}
		sum := da + db + carry
		carry = sum / 10
		digits = append(digits, sum%10)
	}

	return singly.FromSlice(digits), nil
}

// FindPairWithSum returns the first pair (x, y), in scan order of y, with
// x appearing before y and x + y == target.
// Complexity: O(n) time and space.
func FindPairWithSum(l *singly.List[int], target int) (x, y int, ok bool) {
	if l == nil {
		return 0, 0, false
	}

	seen := make(map[int]struct{}, l.Len())
	for _, v := range l.All() {
		if _, found := seen[target-v]; found {
			return target - v, v, true
		}
		seen[v] = struct{}{}
	}

	return 0, 0, false
}
