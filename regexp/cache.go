package regexp

import (
	"time"

	gocache "github.com/TykTechnologies/regexcache/internal/cache"
)

const (
	defaultCacheItemTTL         = 60 * time.Second
	defaultCacheCleanupInterval = 5 * time.Minute

	maxKeySize   = 1024
	maxValueSize = 2048
)

// cache is the shared base of the per-operation result caches. Entries
// expire after the configured TTL; a disabled cache makes every lookup miss
// and every add a no-op.
type cache struct {
	gocache.Repository

	isEnabled bool
	ttl       time.Duration
}

func newCache(ttl time.Duration, isEnabled bool) *cache {
	return &cache{
		Repository: gocache.New(ttl, defaultCacheCleanupInterval),
		isEnabled:  isEnabled,
		ttl:        ttl,
	}
}

func (c *cache) enabled() bool {
	return c.isEnabled && c.Repository != nil
}

func (c *cache) add(key string, value interface{}) {
	c.Set(key, value, c.ttl)
}

func (c *cache) getString(key string) (string, bool) {
	if val, found := c.Get(key); found {
		return val.(string), true
	}

	return "", false
}

func (c *cache) getStrSlice(key string) ([]string, bool) {
	if val, found := c.Get(key); found {
		return val.([]string), true
	}

	return []string{}, false
}

func (c *cache) getStrSliceOfSlices(key string) ([][]string, bool) {
	if val, found := c.Get(key); found {
		return val.([][]string), true
	}

	return [][]string{}, false
}

func (c *cache) getBool(key string) (bool, bool) {
	if val, found := c.Get(key); found {
		return val.(bool), true
	}

	return false, false
}

func (c *cache) reset(ttl time.Duration, isEnabled bool) {
	if c.Repository == nil {
		return
	}

	c.isEnabled = isEnabled
	c.ttl = ttl
	c.Flush()
}
