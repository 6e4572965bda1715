// Package locator resolves the paths of external build tools.
package locator

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainLocator = (*Locator)(nil)

// Locator implements ports.ToolchainLocator for the current host.
type Locator struct {
	executor ports.Executor
	goos     string
	lookPath func(file string) (string, error)
	registry func(toolset string) (string, error)
}

// New creates a Locator for the running operating system.
func New(executor ports.Executor) *Locator {
	return &Locator{
		executor: executor,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		registry: registryMSBuildPath,
	}
}

// Locate returns the path of the requested tool.
func (l *Locator) Locate(ctx context.Context, kind domain.ToolKind, settings *domain.Settings) (string, error) {
	switch kind {
	case domain.ToolCMake:
		return l.cmake(settings)
	case domain.ToolMSBuild:
		return l.msbuild(ctx, settings)
	case domain.ToolTizen:
		return l.tizen(settings)
	case domain.ToolXcodeBuild, domain.ToolMake:
		path, err := l.lookPath(string(kind))
		if err != nil {
			return "", notFound(kind, "not on PATH")
		}
		return path, nil
	default:
		return "", notFound(kind, "unknown tool")
	}
}

func (l *Locator) cmake(settings *domain.Settings) (string, error) {
	name := "cmake"
	if l.goos == string(domain.HostWindows) {
		name = "cmake.exe"
	}
	path := filepath.Join(settings.CMakeRoot, "bin", name)
	if !isFile(path) {
		return "", zerr.With(notFound(domain.ToolCMake, "not installed under the cmake root"), "path", path)
	}
	return path, nil
}

func (l *Locator) tizen(settings *domain.Settings) (string, error) {
	if settings.Tizen.Root == "" {
		return "", notFound(domain.ToolTizen, "tizen root is not configured")
	}
	name := "tizen"
	if l.goos == string(domain.HostWindows) {
		name = "tizen.bat"
	}
	path := filepath.Join(settings.Tizen.Root, "tools", "ide", "bin", name)
	if !isFile(path) {
		return "", zerr.With(notFound(domain.ToolTizen, "not installed under the tizen root"), "path", path)
	}
	return path, nil
}

func notFound(kind domain.ToolKind, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrToolNotFound, string(kind)+" "+reason), "tool", string(kind))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
