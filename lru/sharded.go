package lru

import (
	"sync"

	metro "github.com/dgryski/go-metro"
	"github.com/pkg/errors"
)

type shard[V any] struct {
	mu    sync.Mutex
	cache *Cache[V]
}

// Sharded spreads keys over independent Caches, each behind its own mutex,
// so unrelated keys do not contend. The shard of a key is
// metro.Hash64Str(key, seed) mod the shard count; recency and eviction are
// per shard.
//
// Sharded is safe for concurrent use.
type Sharded[V any] struct {
	shards []*shard[V]
	seed   uint64
}

// NewSharded returns a cache of n shards with perShard capacity each.
func NewSharded[V any](n, perShard int, opts ...Option) (*Sharded[V], error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrBadShards, "shards %d", n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Sharded[V]{shards: make([]*shard[V], n), seed: o.Seed}
	for i := range s.shards {
		c, err := New[V](perShard, opts...)
		if err != nil {
			return nil, err
		}
		s.shards[i] = &shard[V]{cache: c}
	}

	return s, nil
}

// ShardOf returns the index of the shard holding key.
func (s *Sharded[V]) ShardOf(key string) int {
	return int(metro.Hash64Str(key, s.seed) % uint64(len(s.shards)))
}

// Get returns the value for key and marks it most recently used in its shard.
func (s *Sharded[V]) Get(key string) (V, bool) {
	sh := s.shards[s.ShardOf(key)]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	return sh.cache.Get(key)
}

// Put stores value under key and reports whether its shard evicted an entry.
func (s *Sharded[V]) Put(key string, value V) bool {
	sh := s.shards[s.ShardOf(key)]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	return sh.cache.Put(key, value)
}

// Remove deletes key and reports whether it was present.
func (s *Sharded[V]) Remove(key string) bool {
	sh := s.shards[s.ShardOf(key)]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	return sh.cache.Remove(key)
}

// Len returns the total number of entries over all shards.
func (s *Sharded[V]) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		total += sh.cache.Len()
		sh.mu.Unlock()
	}

	return total
}
