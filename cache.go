package regexcache

import (
	"errors"
	"regexp"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// ErrInvalidCapacity is returned by New and NewWithCompile when the
// requested capacity is zero or negative.
var ErrInvalidCapacity = errors.New("cache capacity must be positive")

// CompileFunc turns pattern source text into a compiled regular expression.
// It is how RegexpCache and the lazy holders consume the regexp engine; the
// default is regexp.Compile, and regexp.CompilePOSIX is the usual
// alternative.
type CompileFunc func(expr string) (*regexp.Regexp, error)

// RegexpCache keeps up to a fixed number of compiled regular expressions,
// keyed by their exact source text. Get compiles on a miss and evicts the
// least recently used entry once the cache is full.
//
// All methods are safe for concurrent use. A Get that misses holds the cache
// lock for the duration of the compile, so concurrent misses on the same
// source compile it once and the size bound is never exceeded, not even
// transiently.
type RegexpCache struct {
	mu       sync.Mutex
	compile  CompileFunc
	entries  *simplelru.LRU[string, *regexp.Regexp]
	capacity int
}

// New creates a RegexpCache holding at most capacity compiled patterns.
func New(capacity int) (*RegexpCache, error) {
	return NewWithCompile(capacity, regexp.Compile)
}

// NewWithCompile creates a RegexpCache that compiles through the given
// function instead of regexp.Compile. A nil compile falls back to
// regexp.Compile.
func NewWithCompile(capacity int, compile CompileFunc) (*RegexpCache, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if compile == nil {
		compile = regexp.Compile
	}

	entries, err := simplelru.NewLRU[string, *regexp.Regexp](capacity, nil)
	if err != nil {
		return nil, err
	}

	return &RegexpCache{
		compile:  compile,
		entries:  entries,
		capacity: capacity,
	}, nil
}

// Get returns the compiled form of source, compiling and caching it on a
// miss. A hit marks the entry most recently used and never recompiles or
// revalidates the pattern. A failed compile returns the engine's error and
// leaves the cache exactly as it was.
//
// The returned value stays valid after the entry is evicted; eviction only
// drops the cache's reference to it.
func (c *RegexpCache) Get(source string) (*regexp.Regexp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if re, ok := c.entries.Get(source); ok {
		return re, nil
	}

	re, err := c.compile(source)
	if err != nil {
		return nil, err
	}
	c.entries.Add(source, re)

	return re, nil
}

// Lookup returns the cached compiled form of source, or nil and false on a
// miss. Unlike Get it never compiles. A hit counts as an access and marks
// the entry most recently used.
func (c *RegexpCache) Lookup(source string) (*regexp.Regexp, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Get(source)
}

// Contains reports whether source is currently cached without touching the
// entry's recency.
func (c *RegexpCache) Contains(source string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Contains(source)
}

// Len returns the number of patterns currently cached.
func (c *RegexpCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Len()
}

// Capacity returns the fixed capacity the cache was created with.
func (c *RegexpCache) Capacity() int {
	return c.capacity
}

// Keys returns the cached sources ordered from least to most recently used.
func (c *RegexpCache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Keys()
}

// Remove drops source from the cache and reports whether it was present.
func (c *RegexpCache) Remove(source string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Remove(source)
}

// Purge drops every cached pattern.
func (c *RegexpCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Purge()
}
