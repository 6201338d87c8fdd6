package regexcache

import "regexp"

// CachedRegexp is a pattern bound to a shared RegexpCache. Every operation
// fetches the compiled form through the cache, so a pattern evicted since
// its last use is transparently recompiled and re-inserted. The pattern is
// validated when the handle is created; operations on a handle obtained from
// Cached cannot fail.
type CachedRegexp struct {
	cache  *RegexpCache
	source string
}

// Cached validates source by compiling it through the cache and returns a
// handle bound to it. The compiled pattern is left in the cache, so the
// handle's first operation hits unless capacity pressure evicts it first.
func (c *RegexpCache) Cached(source string) (*CachedRegexp, error) {
	if _, err := c.Get(source); err != nil {
		return nil, err
	}

	return &CachedRegexp{cache: c, source: source}, nil
}

// regexp fetches the compiled pattern through the cache. The source was
// validated at construction and compilation is deterministic, so a failure
// here means the handle was built by hand around an unvalidated source.
func (r *CachedRegexp) regexp() *regexp.Regexp {
	re, err := r.cache.Get(r.source)
	if err != nil {
		panic("regexcache: validated pattern failed to recompile: " + err.Error())
	}

	return re
}

// MatchString reports whether the pattern matches s.
func (r *CachedRegexp) MatchString(s string) bool {
	return r.regexp().MatchString(s)
}

// Match reports whether the pattern matches b.
func (r *CachedRegexp) Match(b []byte) bool {
	return r.regexp().Match(b)
}

// FindString returns the leftmost match in s, or the empty string if there
// is none.
func (r *CachedRegexp) FindString(s string) string {
	return r.regexp().FindString(s)
}

// FindStringSubmatch returns the leftmost match and its submatches, or nil
// if there is no match.
func (r *CachedRegexp) FindStringSubmatch(s string) []string {
	return r.regexp().FindStringSubmatch(s)
}

// FindAllString returns at most n successive matches, or nil if there are
// none. n < 0 means all matches.
func (r *CachedRegexp) FindAllString(s string, n int) []string {
	return r.regexp().FindAllString(s, n)
}

// ReplaceAllString returns src with matches replaced by repl. $ signs in
// repl expand as in the standard library.
func (r *CachedRegexp) ReplaceAllString(src, repl string) string {
	return r.regexp().ReplaceAllString(src, repl)
}

// Split slices s around matches of the pattern. n behaves as in the
// standard library.
func (r *CachedRegexp) Split(s string, n int) []string {
	return r.regexp().Split(s, n)
}

// Source returns the pattern text the handle was created with.
func (r *CachedRegexp) Source() string {
	return r.source
}

func (r *CachedRegexp) String() string {
	return r.source
}
