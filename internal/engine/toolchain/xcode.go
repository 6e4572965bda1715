package toolchain

import (
	"context"

	"go.trai.ch/sdkbuild/internal/core/domain"
)

// Xcode builds desktop-apple targets through a CMake-generated Xcode project.
type Xcode struct {
	runner
}

// Generate runs CMake with the Xcode generator in the build directory.
func (x *Xcode) Generate(ctx context.Context, job *domain.Job) error {
	return x.configure(ctx, job, job.BuildDir(), platformDefines(job.Target))
}

// Build runs xcodebuild for one configuration.
func (x *Xcode) Build(ctx context.Context, job *domain.Job, cfg domain.Configuration) error {
	return x.run(ctx, job, domain.ToolXcodeBuild, job.BuildDir(), "-configuration", string(cfg))
}

// Collect exports the outputs Xcode writes to <build>/<cfg>.
func (x *Xcode) Collect(_ context.Context, job *domain.Job) ([]domain.Artifact, error) {
	return x.collect(job, func(cfg domain.Configuration) string {
		return configDir(job, cfg)
	})
}
