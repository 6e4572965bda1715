// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const tailSize = 4096

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes the invocation inside its working directory.
//
// Output goes to the vertex carried by ctx when there is one, to the logger otherwise,
// and nowhere when the invocation is silent. The tail of stderr is kept for the error either way.
func (e *Executor) Run(ctx context.Context, inv domain.Invocation) error {
	return e.run(ctx, inv, nil)
}

// Output executes the invocation like Run and returns its standard output.
func (e *Executor) Output(ctx context.Context, inv domain.Invocation) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.run(ctx, inv, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Executor) run(ctx context.Context, inv domain.Invocation, capture io.Writer) error {
	stdout, stderr, closers := e.writers(ctx, inv.Silent)
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	if capture != nil {
		stdout = capture
	}
	tail := &tailWriter{limit: tailSize}
	stderr = io.MultiWriter(stderr, tail)

	return Within(inv.Dir, func() error {
		cmd := exec.CommandContext(ctx, inv.Path, inv.Args...) //nolint:gosec // toolchain paths come from the locator
		cmd.Stdout = stdout
		cmd.Stderr = stderr

		if err := cmd.Run(); err != nil {
			return processError(inv, err, tail.String())
		}
		return nil
	})
}

func (e *Executor) writers(ctx context.Context, silent bool) (stdout, stderr io.Writer, closers []io.Closer) {
	if silent {
		return io.Discard, io.Discard, nil
	}
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		return vertex.Stdout(), vertex.Stderr(), nil
	}
	stdoutLog := &logWriter{logger: e.logger, level: "info"}
	stderrLog := &logWriter{logger: e.logger, level: "error"}
	return stdoutLog, stderrLog, []io.Closer{stdoutLog, stderrLog}
}

func processError(inv domain.Invocation, err error, stderrTail string) error {
	tool := filepath.Base(inv.Path)

	exitCode := -1
	msg := "failed to start " + tool
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
		msg = fmt.Sprintf("%s exited with code %d", tool, exitCode)
	}

	wrapped := zerr.Wrap(errors.Join(domain.ErrProcessFailed, err), msg)
	wrapped = zerr.With(wrapped, "exit_code", exitCode)
	wrapped = zerr.With(wrapped, "command", inv.String())
	wrapped = zerr.With(wrapped, "dir", inv.Dir)
	if stderrTail = strings.TrimSpace(stderrTail); stderrTail != "" {
		wrapped = zerr.With(wrapped, "stderr", stderrTail)
	}
	return wrapped
}

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
	// MSBuild writes CRLF.
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}

// tailWriter keeps the last limit bytes written to it.
type tailWriter struct {
	limit int
	buf   []byte
}

func (w *tailWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	if over := len(w.buf) - w.limit; over > 0 {
		w.buf = w.buf[over:]
	}
	return len(p), nil
}

func (w *tailWriter) String() string {
	return string(w.buf)
}
