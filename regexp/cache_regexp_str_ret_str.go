package regexp

import (
	"regexp"
	"time"
)

type regexpStrRetStrCache struct {
	*cache
}

func newRegexpStrRetStrCache(ttl time.Duration, isEnabled bool) *regexpStrRetStrCache {
	return &regexpStrRetStrCache{
		cache: newCache(
			ttl,
			isEnabled,
		),
	}
}

func (c *regexpStrRetStrCache) do(r *regexp.Regexp, s string, noCacheFn func(string) string) string {
	// return if cache is not enabled
	if !c.enabled() {
		return noCacheFn(s)
	}

	kb := keyBuilderPool.Get().(*keyBuilder)
	defer keyBuilderPool.Put(kb)
	kb.Reset()

	// generate key, check key size
	nsKey := kb.AppendString(r.String()).AppendString(s).UnsafeKey()
	if len(nsKey) > maxKeySize {
		return noCacheFn(s)
	}

	// cache hit
	if res, found := c.getString(nsKey); found {
		return res
	}

	// cache miss, add to cache if value is not too big
	res := noCacheFn(s)
	if len(res) > maxValueSize {
		return res
	}

	c.add(kb.Key(), res)

	return res
}
