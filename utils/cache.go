package utils

import (
	"container/list"
	"sync"
)

type Cache[K comparable, V any] interface {
	Add(K, V)
	Get(K) (V, bool)
	Len() int
}

// Bounded map cache, oldest keys are evicted first
type cache[K comparable, V any] struct {
	mu sync.RWMutex

	cacheMap map[K]V
	keys     *list.List
	maxSize  int
}

func NewCache[K comparable, V any](maxSize int) Cache[K, V] {
	return &cache[K, V]{
		cacheMap: make(map[K]V),
		keys:     list.New(),
		maxSize:  maxSize,
	}
}

func (c *cache[K, V]) Add(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.cacheMap[k]; ok {
		c.cacheMap[k] = v
		return
	}
	c.cacheMap[k] = v
	c.keys.PushBack(k)
	if c.keys.Len() > c.maxSize {
		e := c.keys.Front()
		c.keys.Remove(e)
		delete(c.cacheMap, e.Value.(K))
	}
}

func (c *cache[K, V]) Get(k K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.cacheMap[k]
	return v, ok
}

func (c *cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.keys.Len()
}
