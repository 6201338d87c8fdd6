package regexcache

import "regexp"

// LocalLazyRegexp holds a single pattern and defers compiling it until the
// first call to Regexp, without any synchronization. A value must stay
// confined to one goroutine. Workers that each want their own compiled copy
// call Clone on a shared prototype and compile independently, trading a
// compile per worker for the absence of cross-goroutine coordination.
type LocalLazyRegexp struct {
	source  string
	compile CompileFunc
	re      *regexp.Regexp
}

// NewLocalLazy returns an uncompiled LocalLazyRegexp for source.
func NewLocalLazy(source string) *LocalLazyRegexp {
	return &LocalLazyRegexp{source: source, compile: regexp.Compile}
}

// Regexp returns the compiled pattern, compiling it on first use. A
// successful compile is kept for every later call. A failed compile stores
// nothing, so the next call compiles again.
func (l *LocalLazyRegexp) Regexp() (*regexp.Regexp, error) {
	if l.re != nil {
		return l.re, nil
	}

	compile := l.compile
	if compile == nil {
		compile = regexp.Compile
	}

	re, err := compile(l.source)
	if err != nil {
		return nil, err
	}
	l.re = re

	return re, nil
}

// Clone returns a fresh uncompiled holder for the same source, suitable for
// handing to another goroutine. Compiled state is not carried over.
func (l *LocalLazyRegexp) Clone() *LocalLazyRegexp {
	return &LocalLazyRegexp{source: l.source, compile: l.compile}
}

// Source returns the pattern text the holder was created with.
func (l *LocalLazyRegexp) Source() string {
	return l.source
}

func (l *LocalLazyRegexp) String() string {
	return l.source
}
