package regexp

import (
	"fmt"
	"strconv"
	"sync"
	"unsafe"
)

var keyBuilderPool = sync.Pool{
	New: func() interface{} {
		return &keyBuilder{}
	},
}

// keyBuilder assembles result cache keys in a reusable buffer. Builders are
// pooled; callers must Reset before use.
type keyBuilder struct {
	buf []byte
}

func (kb *keyBuilder) Reset() {
	kb.buf = kb.buf[:0]
}

func (kb *keyBuilder) AppendString(s string) *keyBuilder {
	kb.buf = append(kb.buf, s...)
	return kb
}

func (kb *keyBuilder) AppendBytes(b []byte) *keyBuilder {
	kb.buf = append(kb.buf, b...)
	return kb
}

func (kb *keyBuilder) AppendInt(i int) *keyBuilder {
	kb.buf = strconv.AppendInt(kb.buf, int64(i), 10)
	return kb
}

func (kb *keyBuilder) Appendf(format string, args ...interface{}) *keyBuilder {
	fmt.Fprintf(kb, format, args...)
	return kb
}

// Write implements io.Writer so Appendf can print straight into the buffer.
func (kb *keyBuilder) Write(p []byte) (int, error) {
	kb.buf = append(kb.buf, p...)
	return len(p), nil
}

// Key returns an immutable copy of the accumulated key, safe to retain.
func (kb *keyBuilder) Key() string {
	return string(kb.buf)
}

// UnsafeKey returns the accumulated key without copying. The result aliases
// the builder's buffer and must not be retained past the next append or
// Reset.
func (kb *keyBuilder) UnsafeKey() string {
	return unsafe.String(unsafe.SliceData(kb.buf), len(kb.buf))
}
