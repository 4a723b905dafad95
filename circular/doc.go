// Package circular implements a circular singly-linked list.
//
// The last node links back to head, so no next link is ever nil. Traversal
// therefore stops on reaching head again rather than on a nil link, and
// takes exactly Len() steps on a well-formed list.
//
// Nodes live in a per-list arena and link by handle, so the reference cycle
// through head never needs special handling when nodes are dropped.
//
// Inserting at either end is O(n): the last node has to be found to keep
// the ring closed. Cursor offers playlist-style Next/Prev navigation that
// wraps around.
package circular
