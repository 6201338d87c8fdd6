package regexcache

import (
	"regexp"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// LazyRegexp holds a single pattern and defers compiling it until the first
// call to Regexp. One compiled value is shared by every goroutine that
// touches the holder; after the first successful compile an access costs a
// single atomic load.
//
// Creating a LazyRegexp never fails. An invalid pattern surfaces its compile
// error from Regexp instead, on every access.
type LazyRegexp struct {
	source  string
	compile CompileFunc

	flight singleflight.Group
	re     atomic.Pointer[regexp.Regexp]
}

// NewLazy returns an uncompiled LazyRegexp for source.
func NewLazy(source string) *LazyRegexp {
	return &LazyRegexp{source: source, compile: regexp.Compile}
}

// Regexp returns the compiled pattern, compiling it on first use. Callers
// that arrive while the initializing compile is in flight block on it and
// share its outcome. A successful compile is stored permanently and never
// repeated. A failed compile is reported to every waiter, nothing is stored,
// and the next call starts over.
func (l *LazyRegexp) Regexp() (*regexp.Regexp, error) {
	if re := l.re.Load(); re != nil {
		return re, nil
	}

	v, err, _ := l.flight.Do(l.source, func() (interface{}, error) {
		// Re-check under the flight: a caller that lost the fast-path race
		// to a finished compile must not compile again.
		if re := l.re.Load(); re != nil {
			return re, nil
		}

		compile := l.compile
		if compile == nil {
			compile = regexp.Compile
		}

		re, err := compile(l.source)
		if err != nil {
			return nil, err
		}
		l.re.Store(re)

		return re, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*regexp.Regexp), nil
}

// Source returns the pattern text the holder was created with.
func (l *LazyRegexp) Source() string {
	return l.source
}

func (l *LazyRegexp) String() string {
	return l.source
}
