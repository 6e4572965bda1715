// Package app implements the application layer for sdkbuild.
package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/sdkbuild/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	registry     *domain.Registry
	installer    ports.DependencyInstaller
	orchestrator *orchestrator.Orchestrator
	renderer     ports.Renderer
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	registry *domain.Registry,
	installer ports.DependencyInstaller,
	orch *orchestrator.Orchestrator,
	renderer ports.Renderer,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		registry:     registry,
		installer:    installer,
		orchestrator: orch,
		renderer:     renderer,
		telemetry:    telemetry,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath is the settings file. Empty means sdkbuild.yaml in the working directory.
	ConfigPath string
	// Targets to build. Empty means every target valid on the host.
	Targets []string
	// Silent discards subprocess output.
	Silent bool
	// Toolset overrides the MSBuild toolset of the settings file.
	Toolset string
	// SkipTizen drops embedded-ide targets.
	SkipTizen bool
	// SkipDependencies skips the dependency preflight.
	SkipDependencies bool
}

// Report is the result of a run.
type Report struct {
	Outcomes []domain.Outcome
}

// Failed returns the outcomes of targets that did not complete.
func (r *Report) Failed() []domain.Outcome {
	var failed []domain.Outcome
	for _, o := range r.Outcomes {
		if o.Failed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Targets returns the names of the targets valid on this host.
func (a *App) Targets() []string {
	return a.registry.HostNames()
}

// Run builds the requested targets and renders a summary.
// The report is returned whenever orchestration ran, even when targets failed.
// Output is flushed and progress recording closed on every return path.
func (a *App) Run(ctx context.Context, opts RunOptions) (*Report, error) {
	defer a.shutdown()

	// 1. Validate target names
	names := domain.NormalizeNames(opts.Targets)
	for _, name := range names {
		if _, ok := a.registry.Lookup(name); !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownTarget, "target is not defined"), "target", name)
		}
	}

	// 2. Load settings and apply overrides
	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Toolset != "" {
		settings.Toolset = opts.Toolset
	}

	// 3. Select targets
	plan := a.orchestrator.Plan(names)
	if opts.SkipTizen {
		plan = slices.DeleteFunc(plan, func(name string) bool {
			t, _ := a.registry.Lookup(name)
			return t.Family == domain.FamilyEmbeddedIDE
		})
	}
	if len(plan) == 0 {
		a.logger.Warn("no targets to build")
		return &Report{}, nil
	}

	// 4. Dependency preflight
	runOpts := orchestrator.Options{Silent: opts.Silent}
	if !opts.SkipDependencies {
		unavailable, err := a.installer.Ensure(ctx, settings, a.buildable(plan))
		if err != nil {
			return nil, zerr.Wrap(err, "dependency check failed")
		}
		runOpts.Unavailable = unavailable
	}

	// 5. Orchestrate
	outcomes := a.orchestrator.Run(ctx, settings, plan, runOpts)
	report := &Report{Outcomes: outcomes}
	a.renderer.OnSummary(outcomes)

	return report, buildError(report)
}

func (a *App) shutdown() {
	if err := a.renderer.Stop(); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to flush output"))
	}
	if err := a.telemetry.Close(); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to close progress recording"))
	}
}

// buildable returns the planned targets that exist on this host.
func (a *App) buildable(plan []string) []domain.Target {
	targets := make([]domain.Target, 0, len(plan))
	for _, name := range plan {
		if !a.registry.Available(name) {
			continue
		}
		t, _ := a.registry.Lookup(name)
		targets = append(targets, t)
	}
	return targets
}

func buildError(report *Report) error {
	failed := report.Failed()
	if len(failed) == 0 {
		return nil
	}

	sentinel := domain.ErrBuildExecutionFailed
	for _, o := range failed {
		if errors.Is(o.Err, domain.ErrUnsupportedTarget) {
			sentinel = errors.Join(domain.ErrBuildExecutionFailed, domain.ErrUnsupportedTarget)
			break
		}
	}

	names := make([]string, 0, len(failed))
	for _, o := range failed {
		names = append(names, o.Target)
	}

	err := zerr.Wrap(sentinel, fmt.Sprintf("%d of %d targets failed", len(failed), len(report.Outcomes)))
	return zerr.With(err, "targets", names)
}
