package latlong

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// loggerPtr stores the package logger. Accessed atomically so SetLogger can
// race with filters logging from a render loop.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

func newNopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger sets the logger used by filters that were not given one through
// WithLogger. By default nothing is logged. Pass nil to silence logging again.
//
// Levels used:
//   - Debug: skipped render passes, per-frame mapping changes
//   - Info: filter creation and destruction
//   - Warn: calls on a destroyed filter
//   - Error: effect load failures
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
