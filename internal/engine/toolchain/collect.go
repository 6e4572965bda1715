package toolchain

import (
	"path/filepath"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// collect moves the raw Debug and Release outputs of job into the export layout.
// Both export directories are emptied first, so a missing output never leaves
// a previous run's binary behind.
func (r runner) collect(job *domain.Job, rawDir func(domain.Configuration) string) ([]domain.Artifact, error) {
	naming := domain.ArtifactNaming(job.Target)
	configs := domain.Configurations()

	for _, cfg := range configs {
		dir := job.Settings.ExportDir(job.Target.Name, cfg)
		if err := r.fs.RemoveAll(dir); err != nil {
			return nil, err
		}
		if err := r.fs.MkdirAll(dir); err != nil {
			return nil, err
		}
	}

	raw := make(map[domain.Configuration]string, len(configs))
	for _, cfg := range configs {
		path := filepath.Join(rawDir(cfg), naming.RawName)
		if !r.fs.Exists(path) {
			err := zerr.With(zerr.Wrap(domain.ErrMissingArtifact, "build output not found"), "path", path)
			err = zerr.With(err, "target", job.Target.Name)
			return nil, zerr.With(err, "configuration", string(cfg))
		}
		raw[cfg] = path
	}

	artifacts := make([]domain.Artifact, 0, len(configs))
	for _, cfg := range configs {
		dst := filepath.Join(job.Settings.ExportDir(job.Target.Name, cfg), naming.CanonicalName)

		place := r.fs.Move
		if naming.KeepOriginal {
			place = r.fs.Copy
		}
		if err := place(raw[cfg], dst); err != nil {
			return nil, err
		}

		artifacts = append(artifacts, domain.Artifact{
			Target:        job.Target.Name,
			Configuration: cfg,
			Path:          dst,
		})
	}
	return artifacts, nil
}
