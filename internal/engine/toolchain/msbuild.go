package toolchain

import (
	"context"
	"path/filepath"

	"go.trai.ch/sdkbuild/internal/core/domain"
)

// Windows Store cross-compilation settings.
const (
	storeSystemName    = "WindowsStore"
	storeSystemVersion = "10.0"
)

// MSBuild builds desktop-windows and windows-store targets through a
// CMake-generated Visual Studio solution.
type MSBuild struct {
	runner
	store bool
}

// Generate runs CMake with the Visual Studio generator in the build directory.
func (m *MSBuild) Generate(ctx context.Context, job *domain.Job) error {
	defines := platformDefines(job.Target)
	if m.store {
		defines["CMAKE_SYSTEM_NAME"] = String(storeSystemName)
		defines["CMAKE_SYSTEM_VERSION"] = String(storeSystemVersion)
	}
	return m.configure(ctx, job, job.BuildDir(), defines)
}

// Build compiles the library project of the solution for one configuration.
func (m *MSBuild) Build(ctx context.Context, job *domain.Job, cfg domain.Configuration) error {
	return m.run(ctx, job, domain.ToolMSBuild, job.BuildDir(),
		filepath.Join(job.BuildDir(), domain.SolutionName),
		"/m",
		"/t:"+domain.LibraryName,
		"/p:Configuration="+string(cfg),
	)
}

// Collect exports the outputs MSBuild writes to <build>/<cfg>.
func (m *MSBuild) Collect(_ context.Context, job *domain.Job) ([]domain.Artifact, error) {
	return m.collect(job, func(cfg domain.Configuration) string {
		return configDir(job, cfg)
	})
}
