// Package regexp is a drop-in replacement for the standard library regexp
// package for workloads that compile the same expressions over and over.
//
// Compile and CompilePOSIX serve compiled patterns out of bounded LRU
// caches keyed by expression source, and the most common operations on a
// Regexp memoize their results for a short TTL. Oversized inputs and
// results bypass memoization, so hot small lookups stay cheap without the
// caches absorbing unbounded payloads.
//
// Result memoization can be tuned or disabled with ResetCache; the compile
// caches are always on. Both are process wide.
package regexp

import (
	"regexp"
	"strconv"
	"time"

	"github.com/TykTechnologies/regexcache"
)

// DefaultCacheSize is the capacity of each compile cache until Setup says
// otherwise.
const DefaultCacheSize = 1024

var (
	compileCache      = newPatternCache(DefaultCacheSize, regexp.Compile)
	compilePOSIXCache = newPatternCache(DefaultCacheSize, regexp.CompilePOSIX)

	matchStringCache             = newRegexpStrRetBoolCache(defaultCacheItemTTL, true)
	matchCache                   = newRegexpByteRetBoolCache(defaultCacheItemTTL, true)
	findStringCache              = newRegexpStrRetStrCache(defaultCacheItemTTL, true)
	findStringSubmatchCache      = newRegexpStrRetSliceStrCache(defaultCacheItemTTL, true)
	findAllStringCache           = newRegexpStrIntRetSliceStrCache(defaultCacheItemTTL, true)
	findAllStringSubmatchCache   = newRegexpStrIntRetSliceSliceStrCache(defaultCacheItemTTL, true)
	splitCache                   = newRegexpStrIntRetSliceStrCache(defaultCacheItemTTL, true)
	replaceAllStringCache        = newRegexpStrStrRetStrCache(defaultCacheItemTTL, true)
	replaceAllLiteralStringCache = newRegexpStrStrRetStrCache(defaultCacheItemTTL, true)
	replaceAllStringFuncCache    = newRegexpStrFuncRetStrCache(defaultCacheItemTTL, true)
)

// Regexp wraps regexp.Regexp. FromCache reports whether this value was
// served from the compile cache rather than freshly compiled.
type Regexp struct {
	*regexp.Regexp
	FromCache bool
}

// Compile behaves like regexp.Compile, serving repeat compilations of the
// same expression from a bounded cache.
func Compile(expr string) (*Regexp, error) {
	return compileCache.get(expr)
}

// CompilePOSIX behaves like regexp.CompilePOSIX with the same caching as
// Compile. POSIX patterns are cached apart from Perl ones, so the same
// source can live in both caches with its flavor's semantics.
func CompilePOSIX(expr string) (*Regexp, error) {
	return compilePOSIXCache.get(expr)
}

// MustCompile is like Compile but panics if the expression cannot be
// parsed.
func MustCompile(str string) *Regexp {
	re, err := Compile(str)
	if err != nil {
		panic(`regexp: Compile(` + quote(str) + `): ` + err.Error())
	}

	return re
}

// MustCompilePOSIX is like CompilePOSIX but panics if the expression cannot
// be parsed.
func MustCompilePOSIX(str string) *Regexp {
	re, err := CompilePOSIX(str)
	if err != nil {
		panic(`regexp: CompilePOSIX(` + quote(str) + `): ` + err.Error())
	}

	return re
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}

	return strconv.Quote(s)
}

// MatchString reports whether the string s contains any match of pattern,
// compiling through the cache.
func MatchString(pattern string, s string) (matched bool, err error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(s), nil
}

// Match reports whether the byte slice b contains any match of pattern,
// compiling through the cache.
func Match(pattern string, b []byte) (matched bool, err error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}

	return re.Match(b), nil
}

// QuoteMeta returns a string that escapes all regular expression
// metacharacters inside the argument text.
func QuoteMeta(s string) string {
	return regexp.QuoteMeta(s)
}

// MatchString reports whether the string s contains any match of re,
// memoizing the answer.
func (re *Regexp) MatchString(s string) bool {
	return matchStringCache.do(re.Regexp, s, re.Regexp.MatchString)
}

// Match reports whether the byte slice b contains any match of re,
// memoizing the answer.
func (re *Regexp) Match(b []byte) bool {
	return matchCache.do(re.Regexp, b, re.Regexp.Match)
}

// FindString returns the text of the leftmost match, memoizing the answer.
func (re *Regexp) FindString(s string) string {
	return findStringCache.do(re.Regexp, s, re.Regexp.FindString)
}

// FindStringSubmatch returns the leftmost match and its submatches,
// memoizing the answer.
func (re *Regexp) FindStringSubmatch(s string) []string {
	return findStringSubmatchCache.do(re.Regexp, s, re.Regexp.FindStringSubmatch)
}

// FindAllString returns at most n successive matches, memoizing the answer.
func (re *Regexp) FindAllString(s string, n int) []string {
	return findAllStringCache.do(re.Regexp, s, n, re.Regexp.FindAllString)
}

// FindAllStringSubmatch returns at most n successive matches with their
// submatches, memoizing the answer.
func (re *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	return findAllStringSubmatchCache.do(re.Regexp, s, n, re.Regexp.FindAllStringSubmatch)
}

// Split slices s around matches of re, memoizing the answer.
func (re *Regexp) Split(s string, n int) []string {
	return splitCache.do(re.Regexp, s, n, re.Regexp.Split)
}

// ReplaceAllString returns src with matches replaced by repl, memoizing the
// answer.
func (re *Regexp) ReplaceAllString(src, repl string) string {
	return replaceAllStringCache.do(re.Regexp, src, repl, re.Regexp.ReplaceAllString)
}

// ReplaceAllLiteralString returns src with matches replaced by the literal
// repl, memoizing the answer.
func (re *Regexp) ReplaceAllLiteralString(src, repl string) string {
	return replaceAllLiteralStringCache.do(re.Regexp, src, repl, re.Regexp.ReplaceAllLiteralString)
}

// ReplaceAllStringFunc returns src with matches replaced by the result of
// repl. Results are memoized by the func's identity, so only stable,
// input-determined replacement funcs should be passed here.
func (re *Regexp) ReplaceAllStringFunc(src string, repl func(string) string) string {
	return replaceAllStringFuncCache.do(re.Regexp, src, repl, re.Regexp.ReplaceAllStringFunc)
}

// Setup applies conf to the package: the compile caches are rebuilt with
// conf.CacheSize and the result caches adopt the configured TTL and
// enablement. Call it once at startup, before the package is shared between
// goroutines.
func Setup(conf regexcache.Config) error {
	if err := compileCache.resize(conf.CacheSize); err != nil {
		return err
	}
	if err := compilePOSIXCache.resize(conf.CacheSize); err != nil {
		return err
	}

	ResetCache(conf.ResultCacheTTL(), !conf.DisableResultCache)

	return nil
}

// ResetCache purges the compile caches and flushes every result cache,
// re-arming them with the given TTL. A zero ttl selects the default.
func ResetCache(ttl time.Duration, isEnabled bool) {
	if ttl == 0 {
		ttl = defaultCacheItemTTL
	}

	compileCache.reset()
	compilePOSIXCache.reset()

	matchStringCache.reset(ttl, isEnabled)
	matchCache.reset(ttl, isEnabled)
	findStringCache.reset(ttl, isEnabled)
	findStringSubmatchCache.reset(ttl, isEnabled)
	findAllStringCache.reset(ttl, isEnabled)
	findAllStringSubmatchCache.reset(ttl, isEnabled)
	splitCache.reset(ttl, isEnabled)
	replaceAllStringCache.reset(ttl, isEnabled)
	replaceAllLiteralStringCache.reset(ttl, isEnabled)
	replaceAllStringFuncCache.reset(ttl, isEnabled)
}
