package regexcache

import (
	"errors"
	"fmt"
	"regexp"
	"regexp/syntax"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compileCounter wraps regexp.Compile and records how often each source was
// compiled.
type compileCounter struct {
	mu    sync.Mutex
	calls map[string]int
}

func newCompileCounter() *compileCounter {
	return &compileCounter{calls: make(map[string]int)}
}

func (c *compileCounter) compile(expr string) (*regexp.Regexp, error) {
	c.mu.Lock()
	c.calls[expr]++
	c.mu.Unlock()

	return regexp.Compile(expr)
}

func (c *compileCounter) count(expr string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls[expr]
}

func (c *compileCounter) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, n := range c.calls {
		total += n
	}

	return total
}

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -1024} {
		t.Run(fmt.Sprintf("capacity %d", capacity), func(t *testing.T) {
			cache, err := New(capacity)
			assert.Nil(t, cache)
			assert.ErrorIs(t, err, ErrInvalidCapacity)
		})
	}

	cache, err := New(1)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Capacity())
}

func TestGetCompilesEachSourceOnce(t *testing.T) {
	counter := newCompileCounter()
	cache, err := NewWithCompile(4, counter.compile)
	require.NoError(t, err)

	first, err := cache.Get(`\d+`)
	require.NoError(t, err)
	second, err := cache.Get(`\d+`)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, counter.count(`\d+`))
	assert.True(t, first.MatchString("42"))
}

func TestGetEvictsLeastRecentlyUsed(t *testing.T) {
	counter := newCompileCounter()
	cache, err := NewWithCompile(2, counter.compile)
	require.NoError(t, err)

	for _, source := range []string{"a+", "b+", "c+"} {
		_, err := cache.Get(source)
		require.NoError(t, err)
	}

	// Capacity 2, three inserts: the oldest entry is gone.
	assert.Equal(t, 2, cache.Len())
	assert.False(t, cache.Contains("a+"))
	assert.True(t, cache.Contains("b+"))
	assert.True(t, cache.Contains("c+"))

	// A hit on b+ makes c+ the eviction candidate.
	_, err = cache.Get("b+")
	require.NoError(t, err)
	_, err = cache.Get("d+")
	require.NoError(t, err)

	assert.True(t, cache.Contains("b+"))
	assert.True(t, cache.Contains("d+"))
	assert.False(t, cache.Contains("c+"))

	// The surviving entry was never recompiled, the evicted one is compiled
	// again on re-access.
	assert.Equal(t, 1, counter.count("b+"))
	_, err = cache.Get("c+")
	require.NoError(t, err)
	assert.Equal(t, 2, counter.count("c+"))
}

func TestKeysReflectRecencyOrder(t *testing.T) {
	cache, err := New(3)
	require.NoError(t, err)

	for _, source := range []string{"a+", "b+", "c+"} {
		_, err := cache.Get(source)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a+", "b+", "c+"}, cache.Keys())

	_, err = cache.Get("a+")
	require.NoError(t, err)
	assert.Equal(t, []string{"b+", "c+", "a+"}, cache.Keys())
}

func TestLenNeverExceedsCapacity(t *testing.T) {
	cache, err := New(3)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		_, err := cache.Get(fmt.Sprintf("x{%d}", i+1))
		require.NoError(t, err)
		assert.LessOrEqual(t, cache.Len(), 3)
	}

	seen := make(map[string]bool)
	for _, key := range cache.Keys() {
		assert.False(t, seen[key], "duplicate key %q", key)
		seen[key] = true
	}
}

func TestFailedCompileLeavesCacheUnchanged(t *testing.T) {
	cache, err := New(2)
	require.NoError(t, err)

	_, err = cache.Get("a+")
	require.NoError(t, err)
	keys := cache.Keys()

	re, err := cache.Get("[invalid(")
	assert.Nil(t, re)
	require.Error(t, err)

	var synErr *syntax.Error
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, "[invalid(", synErr.Expr)

	assert.Equal(t, keys, cache.Keys())
	assert.False(t, cache.Contains("[invalid("))

	// The same source keeps failing the same way on later calls.
	_, err2 := cache.Get("[invalid(")
	assert.Equal(t, err.Error(), err2.Error())
}

func TestLookupDoesNotCompile(t *testing.T) {
	counter := newCompileCounter()
	cache, err := NewWithCompile(2, counter.compile)
	require.NoError(t, err)

	re, ok := cache.Lookup("a+")
	assert.Nil(t, re)
	assert.False(t, ok)
	assert.Equal(t, 0, counter.total())

	cached, err := cache.Get("a+")
	require.NoError(t, err)

	re, ok = cache.Lookup("a+")
	assert.True(t, ok)
	assert.Same(t, cached, re)
}

func TestLookupPromotesButContainsDoesNot(t *testing.T) {
	cache, err := New(2)
	require.NoError(t, err)

	_, err = cache.Get("a+")
	require.NoError(t, err)
	_, err = cache.Get("b+")
	require.NoError(t, err)

	// Lookup counts as an access: a+ becomes most recent, b+ is evicted.
	_, ok := cache.Lookup("a+")
	require.True(t, ok)
	_, err = cache.Get("c+")
	require.NoError(t, err)
	assert.True(t, cache.Contains("a+"))
	assert.False(t, cache.Contains("b+"))

	// Contains does not: a+ stays the eviction candidate.
	assert.True(t, cache.Contains("a+"))
	_, err = cache.Get("d+")
	require.NoError(t, err)
	assert.False(t, cache.Contains("a+"))
	assert.True(t, cache.Contains("c+"))
	assert.True(t, cache.Contains("d+"))
}

func TestRemoveAndPurge(t *testing.T) {
	cache, err := New(4)
	require.NoError(t, err)

	_, err = cache.Get("a+")
	require.NoError(t, err)
	_, err = cache.Get("b+")
	require.NoError(t, err)

	assert.True(t, cache.Remove("a+"))
	assert.False(t, cache.Remove("a+"))
	assert.Equal(t, 1, cache.Len())

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
	assert.False(t, cache.Contains("b+"))
}

func TestEvictedRegexpStaysUsable(t *testing.T) {
	cache, err := New(1)
	require.NoError(t, err)

	re, err := cache.Get("a+")
	require.NoError(t, err)

	_, err = cache.Get("b+")
	require.NoError(t, err)
	require.False(t, cache.Contains("a+"))

	assert.True(t, re.MatchString("aaa"))
}

func TestNewWithCompilePOSIX(t *testing.T) {
	cache, err := NewWithCompile(2, regexp.CompilePOSIX)
	require.NoError(t, err)

	// Leftmost-longest semantics distinguish the POSIX engine.
	re, err := cache.Get("a+|a+b")
	require.NoError(t, err)
	assert.Equal(t, "aab", re.FindString("aab"))

	// Non-capturing groups are a Perl extension and a POSIX syntax error.
	_, err = cache.Get("a(?:bc)")
	assert.Error(t, err)

	// Stacked repetition is rejected in Perl mode only; POSIX reads a+? as
	// (a+)? and compiles it.
	re, err = cache.Get("a+?")
	require.NoError(t, err)
	assert.Equal(t, "aaa", re.FindString("aaa"))
	assert.Equal(t, "", re.FindString("bbb"))
}

func TestConcurrentGetKeepsInvariants(t *testing.T) {
	counter := newCompileCounter()
	cache, err := NewWithCompile(4, counter.compile)
	require.NoError(t, err)

	sources := []string{"a+", "b+", "c+", "d+", "e+", "f+"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				source := sources[(g+i)%len(sources)]
				re, err := cache.Get(source)
				if assert.NoError(t, err) {
					assert.Equal(t, source, re.String())
				}
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 4)
	assert.Equal(t, cache.Len(), len(cache.Keys()))
}
