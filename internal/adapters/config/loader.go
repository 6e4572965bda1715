// Package config provides the settings loader for sdkbuild.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	Getwd  func() (string, error)
	Home   func() (string, error)
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger: logger,
		Getwd:  os.Getwd,
		Home:   os.UserHomeDir,
	}
}

// Load reads the settings file at path. An empty path means domain.ConfigFileName
// in the working directory.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	cwd, err := l.Getwd()
	if err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to get working directory")
	}

	if path == "" {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Logger.Info("no settings file at " + path + ", using defaults")
			return domain.DefaultSettings(cwd), nil
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to read settings file"), "path", path)
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "failed to parse settings file"), "path", path)
	}

	return l.resolve(&file, filepath.Dir(path))
}

// resolve turns the file DTO into settings, filling gaps from the defaults.
func (l *Loader) resolve(file *SettingsFile, dir string) (*domain.Settings, error) {
	sdkRoot, err := l.absolute(file.SDKRoot, dir)
	if err != nil {
		return nil, err
	}
	if sdkRoot == "" {
		sdkRoot = dir
	}

	settings := domain.DefaultSettings(sdkRoot)

	overrides := []struct {
		dst *string
		src string
	}{
		{&settings.BuildRoot, file.BuildRoot},
		{&settings.ExportRoot, file.ExportRoot},
		{&settings.CMakeRoot, file.CMakeRoot},
		{&settings.Tizen.Root, file.Tizen.Root},
		{&settings.Tizen.DescriptorTemplate, file.Tizen.DescriptorTemplate},
	}
	for _, o := range overrides {
		p, err := l.absolute(o.src, dir)
		if err != nil {
			return nil, err
		}
		if p != "" {
			*o.dst = p
		}
	}

	// vswhere is a Windows path and is taken verbatim.
	if file.VSWhere != "" {
		settings.VSWherePath = file.VSWhere
	}
	if file.Toolset != "" {
		settings.Toolset = file.Toolset
	}
	if file.Tizen.Profile != "" {
		settings.Tizen.Profile = file.Tizen.Profile
	}
	if file.Tizen.Compiler != "" {
		settings.Tizen.Compiler = file.Tizen.Compiler
	}

	return settings, nil
}

// absolute expands a leading ~ and resolves relative paths against dir.
func (l *Loader) absolute(p, dir string) (string, error) {
	if p == "" {
		return "", nil
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := l.Home()
		if err != nil {
			return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to expand home directory"), "path", p)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}

	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	return filepath.Join(dir, p), nil
}
