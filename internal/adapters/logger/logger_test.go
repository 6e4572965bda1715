package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/sdkbuild/internal/adapters/logger"
	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "banner", msg: "building target osx-static", goldenName: "info_basic"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("skipping tizen targets")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("exit status 2"), "command failed"),
				"failed to build Debug",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "classified with metadata",
			err: zerr.With(
				zerr.With(zerr.Wrap(domain.ErrToolNotFound, "cmake is not installed"), "tool", "cmake"),
				"path", "/opt/cmake/bin/cmake",
			),
			goldenName: "error_metadata",
		},
		{
			name: "target build failure",
			err: zerr.With(zerr.With(zerr.Wrap(
				zerr.With(zerr.With(zerr.Wrap(errors.New("exit status 2"), "make exited with an error"),
					"exit_code", 2), "configuration", "Debug"),
				"build failed"),
				"target", "linux-x64-static"), "stage", "building-debug"),
			goldenName: "error_build_context",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	inner := errors.New("connection refused")
	outer := fmt.Errorf("failed to fetch: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	assert.Equal(t, "✗ Error: failed to fetch: connection refused\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_Error_FieldsOnPlainError(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.With(errors.New("exit status 1"), "exit_code", 1))

	assert.Equal(t, "✗ Error: exit status 1 (exit code 1)\n", buf.String())
}

func TestLogger_Error_OuterTargetWins(t *testing.T) {
	inner := zerr.With(zerr.Wrap(domain.ErrMissingArtifact, "raw output missing"), "target", "inner")
	outer := zerr.With(zerr.Wrap(inner, "build failed"), "target", "osx-static")

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	assert.Equal(t,
		"✗ [osx-static] Error: build failed\n\n  Caused by:\n    → raw output missing\n    → missing artifact\n",
		buf.String())
}

func TestPrettyHandler_BuildContext(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		log  func(*slog.Logger)
		want string
	}{
		{
			name: "tag and trailing attrs",
			log: func(l *slog.Logger) {
				l.Info("compiling", "jobs", 8, "target", "osx-static", "stage", "building-release")
			},
			want: "[osx-static building-release] compiling jobs=8\n",
		},
		{
			name: "handler attrs feed the tag",
			log: func(l *slog.Logger) {
				l.With("target", "win-x64-static").Warn("slow link", "configuration", "Release")
			},
			want: "! [win-x64-static Release] slow link\n",
		},
		{
			name: "grouped attrs stay plain",
			log: func(l *slog.Logger) {
				l.WithGroup("cmake").Info("configured", "target", "all")
			},
			want: "configured cmake.target=all\n",
		},
		{
			name: "multiline keeps attrs on the headline",
			log: func(l *slog.Logger) {
				l.Error("make failed\nsee log", "exit_code", 2)
			},
			want: "✗ make failed (exit code 2)\nsee log\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.log(slog.New(logger.NewPrettyHandler(buf, nil)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
