package log

import (
	"io"
)

// Logger is the leveled, field-aware logging interface the library works
// against. It is satisfied by a wrapped logrus entry.
type Logger interface {
	Level() Level

	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithPrefix(prefix string) Logger

	SetLevel(level Level)
	SetFormatter(formatter Formatter)
	SetOutput(w io.Writer)

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
}
