// Package lru defines the least-recently-used caches, their options and
// sentinel errors.
package lru

import (
	"log/slog"

	"github.com/pkg/errors"
)

var (
	// ErrBadCapacity is returned for a capacity below 1.
	ErrBadCapacity = errors.New("lru: capacity must be at least 1")

	// ErrBadShards is returned for a shard count below 1.
	ErrBadShards = errors.New("lru: shard count must be at least 1")
)

// Option configures a Cache or Sharded cache.
type Option func(*Options)

// Options holds the construction parameters shared by Cache and Sharded.
type Options struct {
	// Logger receives Debug records for evictions. Nil disables logging.
	Logger *slog.Logger

	// Seed is mixed into the key hash that picks a shard.
	Seed uint64
}

// DefaultOptions returns Options with logging disabled and seed 0.
func DefaultOptions() Options {
	return Options{}
}

// WithLogger routes eviction records to logger at Debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithSeed sets the shard hash seed of a Sharded cache.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}
