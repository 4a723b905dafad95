// Package lru provides least-recently-used caches built on doubly.List.
//
// Cache keeps its keys in a doubly-linked list from most to least recently
// used and indexes list nodes by key, so every operation is O(1): a hit
// moves the node to the front, and a miss on a full cache drops the tail.
//
// Sharded partitions the key space over several Caches, picking a shard
// with go-metro's 64-bit hash. Each shard has its own mutex; Cache on its
// own is single-goroutine.
//
// Errors:
//
//   - ErrBadCapacity  capacity below 1
//   - ErrBadShards    shard count below 1
package lru
