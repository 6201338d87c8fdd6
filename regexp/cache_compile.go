package regexp

import (
	"github.com/TykTechnologies/regexcache"
)

// patternCache serves compiled patterns out of a bounded LRU keyed by
// source text. Each returned Regexp wraps its own copy of the cached value,
// so callers that flip Longest or similar state cannot affect each other.
type patternCache struct {
	engine   regexcache.CompileFunc
	patterns *regexcache.RegexpCache
}

func newPatternCache(capacity int, engine regexcache.CompileFunc) *patternCache {
	patterns, err := regexcache.NewWithCompile(capacity, engine)
	if err != nil {
		panic("regexp: " + err.Error())
	}

	return &patternCache{
		engine:   engine,
		patterns: patterns,
	}
}

func (c *patternCache) get(expr string) (*Regexp, error) {
	// cache hit
	if hit, ok := c.patterns.Lookup(expr); ok {
		return &Regexp{
				hit.Copy(),
				true,
			},
			nil
	}

	// cache miss, compile and store
	compiled, err := c.patterns.Get(expr)
	if err != nil {
		return nil, err
	}

	// return ready to use copy
	return &Regexp{
			compiled.Copy(),
			false,
		},
		nil
}

// resize rebuilds the cache with a new capacity, dropping every cached
// pattern. Not safe to call concurrently with get.
func (c *patternCache) resize(capacity int) error {
	patterns, err := regexcache.NewWithCompile(capacity, c.engine)
	if err != nil {
		return err
	}
	c.patterns = patterns

	return nil
}

func (c *patternCache) reset() {
	c.patterns.Purge()
}
