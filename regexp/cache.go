package regexp

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache stores compiled patterns keyed by their exact source text.
type Cache interface {
	Load(key string) (Pattern, bool)

	// LoadOrStore returns the existing pattern for key if present.
	// Otherwise it stores p and returns it. loaded is true if the value
	// was already present.
	LoadOrStore(key string, p Pattern) (actual Pattern, loaded bool)

	Len() int
}

// MapCache is an unbounded Cache. Entries are never evicted, so memory
// grows with the number of distinct patterns seen.
type MapCache struct {
	mu      sync.RWMutex
	entries map[string]Pattern
}

func NewMapCache() *MapCache {
	return &MapCache{
		entries: make(map[string]Pattern),
	}
}

func (c *MapCache) Load(key string) (Pattern, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.entries[key]
	return p, ok
}

func (c *MapCache) LoadOrStore(key string, p Pattern) (Pattern, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		return existing, true
	}

	c.entries[key] = p
	return p, false
}

func (c *MapCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// LRUCache is a size-bounded Cache that evicts the least recently used pattern.
type LRUCache struct {
	lruCache *lru.Cache[string, Pattern]
}

func NewLRUCache(size int) (*LRUCache, error) {
	lruCache, err := lru.New[string, Pattern](size)
	if err != nil {
		return nil, err
	}

	return &LRUCache{
		lruCache: lruCache,
	}, nil
}

func (c *LRUCache) Load(key string) (Pattern, bool) {
	return c.lruCache.Get(key)
}

func (c *LRUCache) LoadOrStore(key string, p Pattern) (Pattern, bool) {
	previous, ok, _ := c.lruCache.PeekOrAdd(key, p)
	if ok {
		return previous, true
	}
	return p, false
}

func (c *LRUCache) Len() int {
	return c.lruCache.Len()
}

var (
	_ Cache = &MapCache{}
	_ Cache = &LRUCache{}
)
