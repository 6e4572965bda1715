package locator_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkbuild/internal/adapters/locator"
	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
}

func noRegistry(string) (string, error) {
	return "", errors.New("no registry")
}

func noPath(string) (string, error) {
	return "", exec.ErrNotFound
}

func TestLocate_CMake(t *testing.T) {
	root := t.TempDir()
	settings := &domain.Settings{CMakeRoot: root}

	tests := []struct {
		goos string
		file string
	}{
		{goos: "darwin", file: "cmake"},
		{goos: "windows", file: "cmake.exe"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			l := locator.NewForHost(nil, tt.goos, noPath, noRegistry)

			_, err := l.Locate(context.Background(), domain.ToolCMake, settings)
			require.ErrorIs(t, err, domain.ErrToolNotFound)

			want := filepath.Join(root, "bin", tt.file)
			touch(t, want)

			got, err := l.Locate(context.Background(), domain.ToolCMake, settings)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLocate_Tizen(t *testing.T) {
	root := t.TempDir()
	l := locator.NewForHost(nil, "darwin", noPath, noRegistry)

	_, err := l.Locate(context.Background(), domain.ToolTizen, &domain.Settings{})
	require.ErrorIs(t, err, domain.ErrToolNotFound)

	want := filepath.Join(root, "tools", "ide", "bin", "tizen")
	touch(t, want)

	got, err := l.Locate(context.Background(), domain.ToolTizen, &domain.Settings{Tizen: domain.TizenSettings{Root: root}})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocate_PathTools(t *testing.T) {
	lookPath := func(file string) (string, error) {
		if file == "make" {
			return "/usr/bin/make", nil
		}
		return "", exec.ErrNotFound
	}
	l := locator.NewForHost(nil, "linux", lookPath, noRegistry)

	got, err := l.Locate(context.Background(), domain.ToolMake, &domain.Settings{})
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/make", got)

	_, err = l.Locate(context.Background(), domain.ToolXcodeBuild, &domain.Settings{})
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestLocate_MSBuildFromRegistry(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "MSBuild.exe")
	touch(t, want)

	var requested string
	registry := func(toolset string) (string, error) {
		requested = toolset
		return want, nil
	}

	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Output(gomock.Any(), gomock.Any()).Times(0)

	l := locator.NewForHost(executor, "windows", noPath, registry)
	got, err := l.Locate(context.Background(), domain.ToolMSBuild, &domain.Settings{Toolset: "14.0"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "14.0", requested)
}

func TestLocate_MSBuildFromVSWhere(t *testing.T) {
	tests := []struct {
		toolset    string
		versionDir string
	}{
		{toolset: "15.0", versionDir: "15.0"},
		{toolset: "16.0", versionDir: "Current"},
	}

	for _, tt := range tests {
		t.Run(tt.toolset, func(t *testing.T) {
			dir := t.TempDir()
			vswhere := filepath.Join(dir, "vswhere.exe")
			touch(t, vswhere)
			install := filepath.Join(dir, "VS")
			want := filepath.Join(install, "MSBuild", tt.versionDir, "Bin", "MSBuild.exe")
			touch(t, want)

			ctrl := gomock.NewController(t)
			executor := mocks.NewMockExecutor(ctrl)
			executor.EXPECT().
				Output(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, inv domain.Invocation) ([]byte, error) {
					assert.Equal(t, vswhere, inv.Path)
					assert.Contains(t, inv.Args, "Microsoft.Component.MSBuild")
					assert.True(t, inv.Silent)
					return []byte("\n" + install + "\r\nignored\n"), nil
				})

			l := locator.NewForHost(executor, "windows", noPath, noRegistry)
			got, err := l.Locate(context.Background(), domain.ToolMSBuild, &domain.Settings{
				Toolset:     tt.toolset,
				VSWherePath: vswhere,
			})
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLocate_MSBuildNotFound(t *testing.T) {
	dir := t.TempDir()
	vswhere := filepath.Join(dir, "vswhere.exe")
	touch(t, vswhere)

	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Output(gomock.Any(), gomock.Any()).Return(nil, domain.ErrProcessFailed)

	l := locator.NewForHost(executor, "windows", noPath, noRegistry)
	_, err := l.Locate(context.Background(), domain.ToolMSBuild, &domain.Settings{VSWherePath: vswhere})
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestLocate_UnknownTool(t *testing.T) {
	l := locator.New(nil)

	_, err := l.Locate(context.Background(), domain.ToolKind("ninja"), &domain.Settings{})
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}
