package toolchain

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/sdkbuild/internal/core/domain"
)

// Make builds desktop-linux targets. Makefiles are regenerated per
// configuration, so generation happens inside Build.
type Make struct {
	runner
}

// Generate does nothing; see Build.
func (m *Make) Generate(_ context.Context, _ *domain.Job) error {
	return nil
}

// Build configures, cleans and builds one configuration in <build>/<cfg>.
func (m *Make) Build(ctx context.Context, job *domain.Job, cfg domain.Configuration) error {
	dir := configDir(job, cfg)

	arch := fmt.Sprintf("-m%d", job.Target.Arch.Bits())
	defines := platformDefines(job.Target)
	defines["CMAKE_BUILD_TYPE"] = String(string(cfg))
	defines["CMAKE_CXX_FLAGS"] = String(arch)
	defines["CMAKE_C_FLAGS"] = String(arch)

	if err := m.configure(ctx, job, dir, defines); err != nil {
		return err
	}
	if err := m.run(ctx, job, domain.ToolMake, dir, "clean"); err != nil {
		return err
	}
	return m.run(ctx, job, domain.ToolMake, dir)
}

// Collect exports the outputs make writes to <build>/<cfg>.
func (m *Make) Collect(_ context.Context, job *domain.Job) ([]domain.Artifact, error) {
	return m.collect(job, func(cfg domain.Configuration) string {
		return configDir(job, cfg)
	})
}

func configDir(job *domain.Job, cfg domain.Configuration) string {
	return filepath.Join(job.BuildDir(), string(cfg))
}
