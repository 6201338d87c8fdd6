// Package regexcache bounds the number of live compiled regular expressions
// in programs that reference more distinct patterns than they should keep
// compiled at once, and defers compilation of known patterns until first use.
//
// RegexpCache is a fixed-capacity LRU of compiled patterns keyed by their
// source text: hits promote the entry, misses compile through the configured
// engine, and inserting over capacity evicts the least recently used entry.
//
// LazyRegexp and LocalLazyRegexp hold a single pattern each. LazyRegexp
// compiles at most once process-wide and is safe for concurrent use;
// LocalLazyRegexp avoids synchronization entirely and is meant to be cloned
// per goroutine. CachedRegexp binds a pattern to a shared RegexpCache and
// fetches the compiled object through it on every operation, so it keeps
// working across evictions.
//
// The subpackage regexp is a drop-in replacement for the standard library
// regexp package that routes compilation through a bounded cache and
// memoizes operation results with a TTL.
package regexcache
