package lru

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlist/doubly"
)

type item[V any] struct {
	node  doubly.Handle
	value V
}

// Cache is a fixed-capacity LRU cache with string keys.
//
// Keys are kept in a doubly.List ordered from most to least recently used;
// the map points each key at its list node, so Get, Put and Remove are O(1).
// A Cache is not safe for concurrent use; see Sharded.
type Cache[V any] struct {
	capacity int
	order    *doubly.List[string]
	items    map[string]item[V]
	onEvict  func(key string, value V)
	logger   *slog.Logger
}

// New returns an empty Cache holding at most capacity entries.
func New[V any](capacity int, opts ...Option) (*Cache[V], error) {
	return NewWithEvict[V](capacity, nil, opts...)
}

// NewWithEvict is New with a callback invoked for every entry dropped to
// make room. Explicit Remove and Purge do not invoke it.
func NewWithEvict[V any](capacity int, onEvict func(key string, value V), opts ...Option) (*Cache[V], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrBadCapacity, "capacity %d", capacity)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache[V]{
		capacity: capacity,
		order:    doubly.New[string](doubly.WithCapacityHint(capacity)),
		items:    make(map[string]item[V], capacity),
		onEvict:  onEvict,
		logger:   o.Logger,
	}, nil
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[V]) Get(key string) (V, bool) {
	it, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	_ = c.order.MoveToFront(it.node)

	return it.value, true
}

// Peek returns the value for key without changing its recency.
func (c *Cache[V]) Peek(key string) (V, bool) {
	it, ok := c.items[key]

	return it.value, ok
}

// Put stores value under key as the most recently used entry and reports
// whether an older entry was evicted to make room.
func (c *Cache[V]) Put(key string, value V) (evicted bool) {
	if it, ok := c.items[key]; ok {
		it.value = value
		c.items[key] = it
		_ = c.order.MoveToFront(it.node)
		return false
	}

	if len(c.items) >= c.capacity {
		c.evict()
		evicted = true
	}
	c.items[key] = item[V]{node: c.order.InsertAtBeginning(key), value: value}

	return evicted
}

// evict drops the least recently used entry.
func (c *Cache[V]) evict() {
	key, err := c.order.DeleteAtEnd()
	if err != nil {
		return
	}
	it := c.items[key]
	delete(c.items, key)
	if c.logger != nil {
		c.logger.Debug("lru: evicted", slog.String("key", key))
	}
	if c.onEvict != nil {
		c.onEvict(key, it.value)
	}
}

// Remove deletes key and reports whether it was present.
func (c *Cache[V]) Remove(key string) bool {
	it, ok := c.items[key]
	if !ok {
		return false
	}
	_, _ = c.order.Remove(it.node)
	delete(c.items, key)

	return true
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int { return len(c.items) }

// Cap returns the capacity.
func (c *Cache[V]) Cap() int { return c.capacity }

// Keys returns the cached keys from most to least recently used.
func (c *Cache[V]) Keys() []string { return c.order.DisplayForward() }

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	c.order.Clear()
	clear(c.items)
}
