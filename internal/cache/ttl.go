// Package cache is a small keyed cache with per-entry expiry. Expired
// entries are dropped on access; there is no background sweeper, the key
// space here (timezone names) is tiny.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	val    T
	expiry time.Time
}

type TTL[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[T]
}

func NewTTL[T any](ttl time.Duration) *TTL[T] {
	return &TTL[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
	}
}

func (c *TTL[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.entries[key]
	if !found {
		var zero T
		return zero, false
	}
	if time.Now().After(e.expiry) {
		delete(c.entries, key)
		var zero T
		return zero, false
	}
	return e.val, true
}

func (c *TTL[T]) Set(key string, val T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{
		val:    val,
		expiry: time.Now().Add(c.ttl),
	}
}

// GetOrCompute returns the cached value for key, or computes, stores, and
// returns it. Compute errors are returned and not cached.
func (c *TTL[T]) GetOrCompute(key string, compute func() (T, error)) (T, error) {
	if v, found := c.Get(key); found {
		return v, nil
	}

	v, err := compute()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}
