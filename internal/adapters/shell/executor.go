// Package shell provides the process execution adapter.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/forgebsd/isoforge/internal/core/domain"
	"github.com/forgebsd/isoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new shell Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the target's action and waits for it to complete.
// The action is an argv vector, never shell text, so substituting fake
// executables in tests needs no quoting games. Output is streamed both to
// the logger and to the provided writers.
func (e *Executor) Execute(ctx context.Context, target *domain.Target, stdout, stderr io.Writer) error {
	if len(target.Action) == 0 {
		return nil
	}

	name := target.Action[0]
	args := target.Action[1:]

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // recipe-provided command

	if target.WorkingDir.String() != "" {
		cmd.Dir = target.WorkingDir.String()
	}

	// The external utilities this tool drives (pkg, mdconfig, make) rely on
	// the ambient system environment; target entries only override.
	cmd.Env = mergeEnvironment(os.Environ(), target.Environment)

	stdoutLog := &logWriter{logger: e.logger, level: "info"}
	stderrLog := &logWriter{logger: e.logger, level: "error"}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	cmd.Stdout = io.MultiWriter(stdoutLog, stdout)
	cmd.Stderr = io.MultiWriter(stderrLog, stderr)

	if err := cmd.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1 // not started, or killed by signal
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return nil
}

// logWriter buffers process output and forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}

// mergeEnvironment overlays target environment entries on the system
// environment.
func mergeEnvironment(sysEnv []string, targetEnv map[string]string) []string {
	if len(targetEnv) == 0 {
		return sysEnv
	}

	envMap := make(map[string]string, len(sysEnv)+len(targetEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range targetEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
