package log

import (
	"io"
)

// Logger represents a logger interface that can be satisfied with logrus.
type Logger interface {
	Level() Level

	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithPrefix(prefix string) Logger

	ReplaceHooks(h LevelHooks) LevelHooks

	SetLevel(level Level)
	SetFormatter(formatter Formatter)
	SetOutput(w io.Writer)

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}
