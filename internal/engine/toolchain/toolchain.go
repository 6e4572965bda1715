// Package toolchain drives the external build systems of each platform family.
package toolchain

import (
	"context"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainProvider = (*Set)(nil)

// Set implements ports.ToolchainProvider with one toolchain per platform family.
type Set struct {
	families map[domain.PlatformFamily]ports.Toolchain
}

// NewSet creates the toolchains of every known platform family.
func NewSet(executor ports.Executor, locator ports.ToolchainLocator, fs ports.FileSystem) *Set {
	r := runner{executor: executor, locator: locator, fs: fs}
	return &Set{
		families: map[domain.PlatformFamily]ports.Toolchain{
			domain.FamilyDesktopApple:   &Xcode{runner: r},
			domain.FamilyDesktopWindows: &MSBuild{runner: r},
			domain.FamilyWindowsStore:   &MSBuild{runner: r, store: true},
			domain.FamilyEmbeddedIDE:    &Tizen{runner: r},
			domain.FamilyDesktopLinux:   &Make{runner: r},
		},
	}
}

// For returns the toolchain of family.
func (s *Set) For(family domain.PlatformFamily) (ports.Toolchain, error) {
	tc, ok := s.families[family]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedTarget, "no toolchain for platform family"), "family", string(family))
	}
	return tc, nil
}

// runner holds the collaborators every toolchain shares.
type runner struct {
	executor ports.Executor
	locator  ports.ToolchainLocator
	fs       ports.FileSystem
}

// run locates tool and runs it in dir. The tool path is resolved on every call.
func (r runner) run(ctx context.Context, job *domain.Job, tool domain.ToolKind, dir string, args ...string) error {
	path, err := r.locator.Locate(ctx, tool, job.Settings)
	if err != nil {
		return err
	}
	return r.executor.Run(ctx, job.Invocation(path, dir, args...))
}
