package ctxlog

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()), "falls back to a discarding logger")

	var buf bytes.Buffer
	l := New(&buf, true)
	ctx := WithLogger(context.Background(), l.WithField("day", 17))
	FromContext(ctx).Debug("cycle found")
	Timed(ctx, "part2")()

	out := buf.String()
	assert.Contains(t, out, "cycle found")
	assert.Contains(t, out, "day=17")
	assert.Contains(t, out, "step=part2")
}

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, logrus.InfoLevel, New(&buf, false).GetLevel())
	assert.Equal(t, logrus.DebugLevel, New(&buf, true).GetLevel())
}
