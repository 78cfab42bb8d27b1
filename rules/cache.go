package rules

import (
	"container/list"
	"regexp"
	"sync"
)

const defaultCacheSize = 1 << 16

type regexKey struct {
	re   *regexp.Regexp
	text string
}

var (
	// regexResults memoizes negative-exemplar and context checks, which
	// several rules run against the same lines.
	regexResults = NewLRUCache[regexKey, bool](defaultCacheSize)
	// entropyResults memoizes zxcvbn estimates for candidate secrets.
	entropyResults = NewLRUCache[string, float64](defaultCacheSize / 4)
)

// LRUCache is a thread-safe generic LRU cache.
type LRUCache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	index    map[K]*list.Element
	order    *list.List
}

type cacheEntry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRUCache creates a cache holding at most capacity entries.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		index:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the cached value and marks it as recently used.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*cacheEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Add stores a value, evicting the least recently used entry when full.
func (c *LRUCache[K, V]) Add(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		el.Value.(*cacheEntry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	c.index[key] = c.order.PushFront(&cacheEntry[K, V]{key: key, value: value})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(*cacheEntry[K, V]).key)
	}
}

// Len returns the number of cached entries.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// GetOrCompute returns the cached value for key, computing and storing it
// on a miss. compute runs outside the lock and must be pure.
func (c *LRUCache[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute()
	c.Add(key, v)
	return v
}

// RegexMatch returns re.MatchString(s), reusing earlier results.
func RegexMatch(re *regexp.Regexp, s string) bool {
	return regexResults.GetOrCompute(regexKey{re, s}, func() bool {
		return re.MatchString(s)
	})
}
