package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/forgebsd/isoforge/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuffered(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()

	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newBuffered(t)

	lg.Info("fetching base image")

	out := buf.String()
	assert.Contains(t, out, "fetching base image")
	assert.Contains(t, out, "INFO")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newBuffered(t)

	lg.Warn("mount failed, continuing")

	out := buf.String()
	assert.Contains(t, out, "mount failed, continuing")
	assert.Contains(t, out, "WARN")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBuffered(t)

	lg.Error(os.ErrPermission)

	out := buf.String()
	assert.Contains(t, out, "permission denied")
	assert.Contains(t, out, "ERROR")
}

func TestLogger_SetOutputSwitches(t *testing.T) {
	lg, first := newBuffered(t)

	lg.Info("before")

	var second bytes.Buffer
	lg.SetOutput(&second)
	lg.Info("after")

	assert.True(t, strings.Contains(first.String(), "before"))
	assert.False(t, strings.Contains(first.String(), "after"))
	assert.True(t, strings.Contains(second.String(), "after"))
}
