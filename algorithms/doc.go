// Package algorithms implements the classic linked-list exercises on top of
// singly.List: merging sorted lists, removing the n-th node from the end,
// palindrome checks, rotation, digit-list addition and pair sums.
//
// Every function leaves its inputs untouched and returns a new list where a
// list is produced. Inputs are read through List.All, so each runs in a
// single pass or two over the nodes.
//
// Not provided: intersection of two lists. Each singly.List owns its nodes,
// so two lists can never share a tail.
//
// Errors:
//
//   - ErrNilList       a nil list argument
//   - ErrOutOfRange    n or k that does not fit the list
//   - ErrInvalidDigit  AddTwoNumbers input that is not a digit list
package algorithms
