package logger

import (
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Logger is a component-tagged logger. The zero value logs through the
// logrus standard logger without a component field.
type Logger struct {
	entry *logrus.Entry
}

func New(prefix string) Logger {
	return FromLogrus(logrus.StandardLogger(), prefix)
}

// FromLogrus tags l with a component field.
func FromLogrus(l *logrus.Logger, prefix string) Logger {
	return Logger{entry: l.WithField("component", prefix)}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return FromLogrus(l, "discard")
}

func (l Logger) get() *logrus.Entry {
	if l.entry == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return l.entry
}

// With returns a child logger sharing the output with an extra field.
func (l Logger) With(key string, value interface{}) Logger {
	return Logger{entry: l.get().WithField(key, value)}
}

func (l Logger) Log(format string, a ...interface{}) {
	l.get().Infof(format, a...)
}

func (l Logger) Warn(format string, a ...interface{}) {
	l.get().Warnf(format, a...)
}

func (l Logger) Err(err error, format string, a ...interface{}) {
	e := l.get()
	if err != nil {
		e = e.WithError(err)
	}
	e.Errorf(format, a...)
}

func (l Logger) Trace(format string, a ...interface{}) {
	l.get().Debugf(format, a...)
}

// Emit writes one driver diagnostic line. It is the debug sink used by
// the instance debug callback.
func (l Logger) Emit(message string) {
	e := l.get().WithField("source", "driver")
	switch {
	case strings.HasPrefix(message, "[VK ERR"):
		e.Error(message)
	case strings.HasPrefix(message, "[VK WARN"), strings.HasPrefix(message, "[VK PERF"):
		e.Warn(message)
	default:
		e.Info(message)
	}
}

// Configure sets the level and format of the logrus standard logger.
func Configure(level, format string) error {
	return ConfigureLogger(logrus.StandardLogger(), level, format)
}

func ConfigureLogger(l *logrus.Logger, level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	l.SetLevel(lvl)

	switch format {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %q", format)
	}
	return nil
}
