// Package ctxlog provides a context key for safely passing a logrus logger
// through context.Context.
package ctxlog

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

var loggerKey = key{}

// discard is returned when no logger was attached, so library code and tests
// can log without wiring.
var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// New builds the process logger: text to w, Debug level when verbose.
func New(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}

// WithLogger returns a new context with the provided logger entry embedded.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from ctx, falling back to a discarding logger.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if logger, ok := ctx.Value(loggerKey).(logrus.FieldLogger); ok {
		return logger
	}

	return discard
}

// Timed logs the duration of a step at debug level when the returned func is called.
//
//	defer ctxlog.Timed(ctx, "part1")()
func Timed(ctx context.Context, step string) func() {
	start := time.Now()
	return func() {
		FromContext(ctx).WithFields(logrus.Fields{
			"step":    step,
			"elapsed": time.Since(start).String(),
		}).Debug("step finished")
	}
}
