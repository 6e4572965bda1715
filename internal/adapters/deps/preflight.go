// Package deps checks that the host can build the requested targets.
package deps

import (
	"context"
	"errors"
	"slices"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyInstaller = (*Preflight)(nil)

var hints = map[domain.ToolKind]string{
	domain.ToolCMake:      "extract a CMake distribution into the cmake root",
	domain.ToolMSBuild:    "install Visual Studio with the MSBuild component or pass --vs",
	domain.ToolTizen:      "install Tizen Studio and set tizen.root, or pass --notizen",
	domain.ToolXcodeBuild: "install the Xcode command line tools",
	domain.ToolMake:       "install make",
}

// Preflight implements ports.DependencyInstaller. It prepares the output
// roots and verifies every tool the requested targets invoke.
type Preflight struct {
	fs      ports.FileSystem
	locator ports.ToolchainLocator
	logger  ports.Logger
}

// NewPreflight creates a new Preflight.
func NewPreflight(fs ports.FileSystem, locator ports.ToolchainLocator, logger ports.Logger) *Preflight {
	return &Preflight{
		fs:      fs,
		locator: locator,
		logger:  logger,
	}
}

// Ensure creates the build and export roots and locates each required tool once.
// A missing tool is logged and marks every requested target that needs it as
// unavailable; the remaining targets are unaffected.
func (p *Preflight) Ensure(ctx context.Context, settings *domain.Settings, targets []domain.Target) (map[string]error, error) {
	for _, root := range []string{settings.BuildRoot, settings.ExportRoot} {
		if err := p.fs.MkdirAll(root); err != nil {
			return nil, err
		}
	}

	missingTools := make(map[domain.ToolKind]error)
	for _, tool := range requiredTools(targets) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, err := p.locate(ctx, settings, tool)
		if err != nil {
			missingTools[tool] = missing(tool, err)
			p.logger.Warn(string(tool) + " is not available, targets using it are skipped: " + hints[tool])
			continue
		}
		p.logger.Info("found " + string(tool) + " at " + path)
	}

	unavailable := make(map[string]error)
	for _, t := range targets {
		for _, tool := range domain.RequiredTools(t.Family) {
			if err, ok := missingTools[tool]; ok {
				unavailable[t.Name] = zerr.With(err, "target", t.Name)
				break
			}
		}
	}
	return unavailable, nil
}

func (p *Preflight) locate(ctx context.Context, settings *domain.Settings, tool domain.ToolKind) (string, error) {
	if tool == domain.ToolCMake && !p.fs.Exists(settings.CMakeRoot) {
		err := zerr.Wrap(domain.ErrToolNotFound, "cmake root does not exist")
		return "", zerr.With(err, "path", settings.CMakeRoot)
	}
	return p.locator.Locate(ctx, tool, settings)
}

// requiredTools returns the distinct tools of targets in first-use order.
func requiredTools(targets []domain.Target) []domain.ToolKind {
	var tools []domain.ToolKind
	for _, t := range targets {
		for _, tool := range domain.RequiredTools(t.Family) {
			if !slices.Contains(tools, tool) {
				tools = append(tools, tool)
			}
		}
	}
	return tools
}

func missing(tool domain.ToolKind, cause error) error {
	err := zerr.Wrap(errors.Join(domain.ErrDependencyMissing, cause), string(tool)+" is not available")
	err = zerr.With(err, "tool", string(tool))
	return zerr.With(err, "hint", hints[tool])
}
