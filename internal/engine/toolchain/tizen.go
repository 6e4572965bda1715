package toolchain

import (
	"context"
	"path/filepath"

	"go.trai.ch/sdkbuild/internal/core/domain"
)

// Paths inside a generated Tizen native project.
const (
	descriptorFile = "project_def.prop"
	flagsFile      = "flags.mk"
)

// Tizen builds embedded-ide targets with the Tizen Studio CLI.
// Every generation starts from a freshly scaffolded project.
type Tizen struct {
	runner
}

// Generate scaffolds a new native project and points it at the SDK sources.
func (tz *Tizen) Generate(ctx context.Context, job *domain.Job) error {
	buildDir := job.BuildDir()
	project := projectDir(job)

	if tz.fs.Exists(buildDir) {
		// The IDE leaves src and inc as links to non-empty directories.
		if err := tz.fs.RemoveSymlinks(project); err != nil {
			return err
		}
		if err := tz.fs.RemoveAll(buildDir); err != nil {
			return err
		}
	}

	err := tz.run(ctx, job, domain.ToolTizen, buildDir,
		"create", "native-project",
		"-p", job.Settings.Tizen.Profile,
		"-t", projectType(job.Target),
		"-n", domain.TizenProjectName,
		"--", buildDir,
	)
	if err != nil {
		return err
	}

	if err := tz.fs.Symlink(job.Settings.SourceDir(), filepath.Join(project, "src")); err != nil {
		return err
	}
	if err := tz.fs.Symlink(job.Settings.DependenciesDir(), filepath.Join(project, "inc")); err != nil {
		return err
	}

	descriptor := filepath.Join(project, descriptorFile)
	if err := tz.fs.Copy(job.Settings.Tizen.DescriptorTemplate, descriptor); err != nil {
		return err
	}
	err = patchFile(tz.fs, descriptor, func(data []byte) []byte {
		return SubstituteDescriptor(data, job.Target)
	})
	if err != nil {
		return err
	}

	return patchFile(tz.fs, filepath.Join(project, "Build", flagsFile), AppendStdFlag)
}

// Build runs build-native for one configuration.
func (tz *Tizen) Build(ctx context.Context, job *domain.Job, cfg domain.Configuration) error {
	return tz.run(ctx, job, domain.ToolTizen, job.BuildDir(),
		"build-native",
		"-a", job.Target.Generator,
		"-c", job.Settings.Tizen.Compiler,
		"-C", string(cfg),
		"--", projectDir(job),
	)
}

// Collect exports the outputs written to <project>/<cfg>.
func (tz *Tizen) Collect(_ context.Context, job *domain.Job) ([]domain.Artifact, error) {
	return tz.collect(job, func(cfg domain.Configuration) string {
		return filepath.Join(projectDir(job), string(cfg))
	})
}

func projectDir(job *domain.Job) string {
	return filepath.Join(job.BuildDir(), domain.TizenProjectName)
}

func projectType(t domain.Target) string {
	if t.Linkage == domain.LinkageShared {
		return "SharedLibrary"
	}
	return "StaticLibrary"
}
