package shell_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/forgebsd/isoforge/internal/adapters/shell"
	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/forgebsd/isoforge/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires POSIX shell utilities")
	}
}

func newExecutor(t *testing.T) *shell.Executor {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return shell.NewExecutor(log)
}

func TestExecute_Success(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)

	var stdout bytes.Buffer
	target := &domain.Target{
		Name:   domain.NewInternedString("hello"),
		Action: []string{"echo", "hello world"},
	}

	err := executor.Execute(context.Background(), target, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "hello world")
}

func TestExecute_EmptyActionIsNoop(t *testing.T) {
	executor := newExecutor(t)

	target := &domain.Target{Name: domain.NewInternedString("marker")}
	require.NoError(t, executor.Execute(context.Background(), target, io.Discard, io.Discard))
}

func TestExecute_NonZeroExit(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)

	target := &domain.Target{
		Name:   domain.NewInternedString("fail"),
		Action: []string{"sh", "-c", "exit 3"},
	}

	err := executor.Execute(context.Background(), target, io.Discard, io.Discard)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestExecute_WorkingDir(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)

	dir := t.TempDir()
	var stdout bytes.Buffer
	target := &domain.Target{
		Name:       domain.NewInternedString("pwd"),
		Action:     []string{"pwd"},
		WorkingDir: domain.NewInternedString(dir),
	}

	require.NoError(t, executor.Execute(context.Background(), target, &stdout, io.Discard))

	// Resolve symlinks: on darwin TempDir lives under /var -> /private/var.
	got, err := filepath.EvalSymlinks(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecute_EnvironmentOverride(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)

	var stdout bytes.Buffer
	target := &domain.Target{
		Name:        domain.NewInternedString("env"),
		Action:      []string{"sh", "-c", "echo $ISO_FLAVOR"},
		Environment: map[string]string{"ISO_FLAVOR": "router"},
	}

	require.NoError(t, executor.Execute(context.Background(), target, &stdout, io.Discard))
	assert.Contains(t, stdout.String(), "router")
}

func TestExecute_ContextCancellation(t *testing.T) {
	skipOnWindows(t)
	executor := newExecutor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	target := &domain.Target{
		Name:   domain.NewInternedString("sleep"),
		Action: []string{"sleep", "30"},
	}

	err := executor.Execute(ctx, target, io.Discard, io.Discard)
	require.Error(t, err)
}
