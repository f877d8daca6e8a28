package utils

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_BasicOperations(t *testing.T) {
	cache := NewCache[string, int](10)

	cache.Set("key1", 42)
	value, exists := cache.Get("key1")
	assert.True(t, exists)
	assert.Equal(t, 42, value)

	_, exists = cache.Get("nonexistent")
	assert.False(t, exists)

	cache.Set("key1", 43)
	value, _ = cache.Get("key1")
	assert.Equal(t, 43, value)
	assert.Equal(t, 1, cache.GetStats().Size)
}

func TestCache_EvictsOldest(t *testing.T) {
	cache := NewCache[string, int](2)

	cache.Set("key1", 1)
	cache.Set("key2", 2)
	cache.Set("key1", 10) // update keeps position
	cache.Set("key3", 3)

	assert.Equal(t, 2, cache.GetStats().Size)

	_, exists := cache.Get("key1")
	assert.False(t, exists)
	value, exists := cache.Get("key2")
	assert.True(t, exists)
	assert.Equal(t, 2, value)
	_, exists = cache.Get("key3")
	assert.True(t, exists)
}

func TestCache_GetOrCreate(t *testing.T) {
	cache := NewCache[string, int](10)
	calls := 0
	create := func() (int, error) {
		calls++
		return 7, nil
	}

	for i := 0; i < 3; i++ {
		v, err := cache.GetOrCreate("k", create)
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	}
	assert.Equal(t, 1, calls)

	_, err := cache.GetOrCreate("bad", func() (int, error) { return 0, errors.New("boom") })
	assert.Error(t, err)
	_, exists := cache.Get("bad")
	assert.False(t, exists)

	stats := cache.GetStats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 2, stats.Hits)
	assert.Equal(t, 3, stats.Misses)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache[string, int](50)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key%d_%d", id, j)
				cache.Set(key, j)
				cache.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, cache.GetStats().Size)
}
