package utils

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Cache is a concurrency-safe map holding at most capacity entries. When
// full, storing a new key evicts the oldest one.
type Cache[K comparable, V any] struct {
	mutex    sync.Mutex
	items    *orderedmap.OrderedMap[K, V]
	capacity int
	hits     int
	misses   int
}

// NewCache creates a cache; a capacity below 1 is treated as 1
func NewCache[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		items:    orderedmap.New[K, V](),
		capacity: capacity,
	}
}

// Get retrieves an item from the cache
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	value, ok := c.items.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return value, ok
}

// Set stores an item in the cache
func (c *Cache[K, V]) Set(key K, value V) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.items.Set(key, value); exists {
		return
	}
	for c.items.Len() > c.capacity {
		c.items.Delete(c.items.Oldest().Key)
	}
}

// GetOrCreate returns the cached value for key, or stores and returns the
// result of create. Errors are not cached.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := create()
	if err != nil {
		return value, err
	}
	c.Set(key, value)
	return value, nil
}

// GetStats returns cache statistics
func (c *Cache[K, V]) GetStats() CacheStats {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return CacheStats{
		Size:   c.items.Len(),
		Hits:   c.hits,
		Misses: c.misses,
	}
}

// CacheStats provides cache statistics
type CacheStats struct {
	Size   int
	Hits   int
	Misses int
}
