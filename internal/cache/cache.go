package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// DefaultExpiration makes Set fall back to the repository's default TTL.
const DefaultExpiration time.Duration = 0

// Repository interface is the API signature for an expiring object cache.
type Repository interface {
	Get(string) (interface{}, bool)
	Set(string, interface{}, time.Duration)
	Delete(string)
	Count() int
	Flush()
	Close()
}

// New creates a cache whose items live for defaultExpiration and whose
// expired items are swept every cleanupInterval.
func New(defaultExpiration, cleanupInterval time.Duration) Repository {
	return &repository{
		defaultExpiration: defaultExpiration,
		cache:             cache.New(defaultExpiration, cleanupInterval),
	}
}

type repository struct {
	mu sync.RWMutex

	// Expiration applied when Set is called with DefaultExpiration.
	defaultExpiration time.Duration

	// The underlying cache driver, nil once closed.
	cache *cache.Cache
}

// Get retrieves a cache item by key.
func (r *repository) Get(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.cache == nil {
		return nil, false
	}

	return r.cache.Get(key)
}

// Set writes a cache item with the given timeout. If timeout is
// DefaultExpiration or below, the repository default is used.
func (r *repository) Set(key string, value interface{}, timeout time.Duration) {
	if timeout <= 0 {
		timeout = r.defaultExpiration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil {
		return
	}

	r.cache.Set(key, value, timeout)
}

// Delete removes a cache item by key.
func (r *repository) Delete(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil {
		return
	}

	r.cache.Delete(key)
}

// Count returns the number of items in the cache.
func (r *repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.cache == nil {
		return 0
	}

	return r.cache.ItemCount()
}

// Flush drops all items from the cache.
func (r *repository) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil {
		return
	}

	r.cache.Flush()
}

// Close shuts down the underlying cache. Every method is safe to call on a
// closed repository.
func (r *repository) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache != nil {
		r.cache.Flush()
		r.cache = nil
	}
}
