// Package lvlist is a small collection of generic linked lists and the
// classic algorithms built on them.
//
// What is inside?
//
//	singly/      singly linked List: positional and value inserts/deletes,
//	              search, reverse, middle, Floyd loop detection, de-duplication
//	doubly/      doubly linked List with O(1) ends and Handle-based splicing
//	circular/    circular singly linked List and a wrap-around Cursor
//	algorithms/  merge, rotate, palindrome, nth-from-end, digit addition
//	lru/         LRU Cache on top of doubly, and a metro-hashed Sharded cache
//
// Nodes of every list live in an index-addressed arena (internal/arena), so a
// list never holds Go pointers between nodes and a freed slot is reused by
// the next insert.
//
// Quick ASCII example:
//
//	head
//	 │
//	 ▼
//	[10]──►[20]──►[30]──► NULL
//
// renders as "10 -> 20 -> 30 -> NULL".
//
// Failures are reported through sentinel errors (ErrEmpty, ErrOutOfRange, …)
// wrapped with context; test with errors.Is. Every list accepts an optional
// *slog.Logger that narrates mutations at Debug level.
//
//	go get github.com/katalvlaran/lvlist
package lvlist
