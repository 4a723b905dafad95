// Package singly implements a singly-linked list whose nodes live in a
// per-list arena and link to each other by handle.
//
// What:
//
//   - Insertion at the beginning, end, a position or after a value
//   - Deletion at the beginning, end, a position or by value
//   - Search, Contains and bounds-checked positional access
//   - In-place Reverse, FindMiddle, Floyd's DetectLoop/LoopStart
//   - RemoveDuplicates for sorted input
//
// Invariants:
//
//   - Len() always equals the number of nodes reachable from head.
//   - A rejected call (ErrEmpty, ErrOutOfRange, ErrNotFound) mutates nothing.
//   - FindMiddle returns the upper middle on even lengths: [1 2 3 4] → 3.
//
// Complexity:
//
//   - InsertAtBeginning, DeleteAtBeginning, GetFirst, Len, Clear: O(1)
//   - InsertAtEnd, DeleteAtEnd, GetLast, Search, Reverse: O(n)
//   - *AtPosition(pos): O(pos)
//
// Errors:
//
//   - ErrEmpty       read or delete on an empty list
//   - ErrOutOfRange  position outside the operation's range
//   - ErrNotFound    searched or targeted value absent
//
// Errors carry the failing position or value; test them with errors.Is.
package singly
