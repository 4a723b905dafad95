// Package doubly implements a doubly-linked list with head and tail
// references, so both ends insert and delete in O(1).
//
// Nodes live in a per-list arena. The back link of each node is a handle,
// not an owning reference: dropping a node only requires relinking its two
// neighbours and returning its slot to the arena.
//
// Beyond the end operations the list exposes Handle-based access (Value,
// SetValue, Remove, MoveToFront, InsertAfter, TruncateAfter, Next, Prev),
// all O(1). The lru package is built on these.
//
// Invariants:
//
//   - head.Prev and tail.Next are nil.
//   - Next from head reaches tail in Len()-1 steps; Prev from tail reaches
//     head in the same number of steps.
//   - DisplayBackward is always the reverse of DisplayForward.
//
// Errors:
//
//   - ErrEmpty          delete or peek on an empty list
//   - ErrInvalidHandle  handle removed, cleared or never issued
package doubly
