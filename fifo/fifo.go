// Package fifo provides a size-capped key/value cache with first-in-first-out
// eviction.
//
// What:
//
//   - Cache[K, V]: bounded map that evicts the oldest inserted key when a new key
//     arrives at capacity.
//   - Get never reorders entries; Set on an existing key replaces the value but
//     keeps its original eviction slot.
//
// Eviction order is insertion order, never access order.
//
// Complexity:
//
//   - Get, Set, Has, Delete: O(1)
//   - Clear:                 O(1) (old storage is released to the GC)
//
// A Cache is not safe for concurrent use.
package fifo

import (
	"container/list"
	"errors"
)

// ErrInvalidLimit is returned by New when limit is not positive.
var ErrInvalidLimit = errors.New("fifo: limit must be positive")

// Cache is a bounded map with insertion-order eviction.
type Cache[K comparable, V any] struct {
	limit int
	order *list.List          // front = oldest insertion
	items map[K]*list.Element // key -> element holding *entry
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding at most limit entries.
func New[K comparable, V any](limit int) (*Cache[K, V], error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	return &Cache[K, V]{
		limit: limit,
		order: list.New(),
		items: make(map[K]*list.Element, limit),
	}, nil
}

// Get returns the cached value for key and whether it was present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if el, ok := c.items[key]; ok {
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V

	return zero, false
}

// Has reports whether key is cached.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.items[key]

	return ok
}

// Set stores value under key. When key is new and the cache is full, the
// oldest inserted key is evicted first. It returns the evicted key, if any.
func (c *Cache[K, V]) Set(key K, value V) (evicted K, didEvict bool) {
	// 1) Existing key: update in place, eviction slot unchanged
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		return evicted, false
	}

	// 2) New key at capacity: drop the oldest insertion
	if c.order.Len() >= c.limit {
		oldest := c.order.Front()
		e := oldest.Value.(*entry[K, V])
		c.order.Remove(oldest)
		delete(c.items, e.key)
		evicted, didEvict = e.key, true
	}

	// 3) Append as newest
	c.items[key] = c.order.PushBack(&entry[K, V]{key: key, value: value})

	return evicted, didEvict
}

// Delete removes key if present.
func (c *Cache[K, V]) Delete(key K) {
	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Keys returns the cached keys from oldest to newest insertion.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry[K, V]).key)
	}

	return keys
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int { return c.order.Len() }

// Limit returns the configured capacity.
func (c *Cache[K, V]) Limit() int { return c.limit }

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.order.Init()
	c.items = make(map[K]*list.Element, c.limit)
}
