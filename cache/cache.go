package cache

import "sync"

type Cacheable[K comparable] interface {
	CacheKey() K
}

// Cache is a goroutine safe read-through cache with generics type.
type Cache[K comparable, V Cacheable[K]] struct {
	mu   sync.RWMutex
	data map[K]V
	read func(K) (V, error)
}

// NewCache creates a new Cache backed by the given read function.
func NewCache[K comparable, V Cacheable[K]](read func(K) (V, error)) *Cache[K, V] {
	return &Cache[K, V]{
		mu:   sync.RWMutex{},
		data: make(map[K]V),
		read: read,
	}
}

// Get returns a value from the cache, reading through on a miss.
func (c *Cache[K, V]) Get(key K) (V, error) {
	c.mu.RLock()
	v, ok := c.data[key]
	c.mu.RUnlock()
	if ok {
		return v, nil // cache hit
	}

	v, err := c.read(key)
	if err != nil {
		var zero V
		return zero, err // read error
	}

	c.mu.Lock()
	c.data[key] = v
	c.mu.Unlock()

	return v, nil
}

// Invalidate drops the cached value for key, if any.
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

// Len returns the number of cached values.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
