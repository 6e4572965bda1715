// Package orchestrator runs targets through their build lifecycle.
package orchestrator

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options tunes a single orchestration run.
type Options struct {
	// Silent discards subprocess output.
	Silent bool
	// Unavailable holds targets the host cannot build, keyed by name, with the reason.
	// They fail before generation and the run continues.
	Unavailable map[string]error
}

// Orchestrator builds targets one after another. A failing target is
// abandoned and the run moves on to the next one.
type Orchestrator struct {
	registry   *domain.Registry
	toolchains ports.ToolchainProvider
	files      ports.FileSystem
	hasher     ports.ArtifactHasher
	store      ports.ManifestStore
	tracer     ports.Tracer
	telemetry  ports.Telemetry
	renderer   ports.Renderer
	logger     ports.Logger
	now        func() time.Time
}

// New creates a new Orchestrator.
func New(
	registry *domain.Registry,
	toolchains ports.ToolchainProvider,
	files ports.FileSystem,
	hasher ports.ArtifactHasher,
	store ports.ManifestStore,
	tracer ports.Tracer,
	telemetry ports.Telemetry,
	renderer ports.Renderer,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		registry:   registry,
		toolchains: toolchains,
		files:      files,
		hasher:     hasher,
		store:      store,
		tracer:     tracer,
		telemetry:  telemetry,
		renderer:   renderer,
		logger:     logger,
		now:        time.Now,
	}
}

// Plan returns the targets a run over names visits, in order.
// No names means every target valid on the host.
func (o *Orchestrator) Plan(names []string) []string {
	names = domain.NormalizeNames(names)
	if len(names) == 0 {
		return o.registry.HostNames()
	}
	return names
}

// Run builds every planned target and returns one outcome per target in plan order.
func (o *Orchestrator) Run(ctx context.Context, settings *domain.Settings, names []string, opts Options) []domain.Outcome {
	plan := o.Plan(names)

	ctx, span := o.tracer.Start(ctx, "run",
		ports.WithAttribute("targets", plan),
		ports.WithAttribute("host", string(o.registry.Host())),
	)
	defer span.End()

	o.tracer.EmitPlan(ctx, plan)
	o.renderer.OnPlanEmit(plan)

	outcomes := make([]domain.Outcome, 0, len(plan))
	failed := 0
	for _, name := range plan {
		outcome := o.runTarget(ctx, settings, name, opts)
		if outcome.Failed() {
			failed++
		}
		outcomes = append(outcomes, outcome)
	}

	span.SetAttribute("failed", failed)
	return outcomes
}

// targetRun tracks one target through its stages.
type targetRun struct {
	o       *Orchestrator
	ctx     context.Context
	job     *domain.Job
	vertex  ports.Vertex
	outcome domain.Outcome
}

func (o *Orchestrator) runTarget(ctx context.Context, settings *domain.Settings, name string, opts Options) domain.Outcome {
	start := o.now()
	o.renderer.OnTargetStart(name, start)

	outcome := domain.Outcome{Target: name, Stage: domain.StagePending}
	finish := func(err error) domain.Outcome {
		outcome.Duration = o.now().Sub(start)
		if err != nil {
			if outcome.FailedStage == "" {
				outcome.FailedStage = outcome.Stage
			}
			outcome.Stage = domain.StageFailed
			outcome.Err = err
			failure := zerr.With(zerr.Wrap(err, "build failed"), "target", name)
			o.logger.Error(zerr.With(failure, "stage", string(outcome.FailedStage)))
		}
		o.renderer.OnTargetComplete(name, o.now(), err)
		return outcome
	}

	if err := ctx.Err(); err != nil {
		return finish(err)
	}

	target, err := o.resolve(name)
	if err != nil {
		return finish(err)
	}

	if err := o.discardExports(settings, name); err != nil {
		return finish(err)
	}

	if err := opts.Unavailable[name]; err != nil {
		return finish(err)
	}

	tc, err := o.toolchains.For(target.Family)
	if err != nil {
		return finish(err)
	}

	vctx, vertex := o.telemetry.Record(ctx, name)
	vertex = newTargetVertex(vertex, name, o.renderer)

	run := &targetRun{
		o:       o,
		ctx:     ports.ContextWithVertex(vctx, vertex),
		job:     &domain.Job{Target: target, Settings: settings, Silent: opts.Silent},
		vertex:  vertex,
		outcome: outcome,
	}
	err = run.execute(tc)
	vertex.Complete(err)

	outcome = run.outcome
	return finish(err)
}

// resolve rejects names that cannot be built here before anything runs.
func (o *Orchestrator) resolve(name string) (domain.Target, error) {
	target, known := o.registry.Lookup(name)
	if !known {
		err := zerr.Wrap(errors.Join(domain.ErrUnsupportedTarget, domain.ErrUnknownTarget), "target is not defined")
		return domain.Target{}, zerr.With(err, "target", name)
	}
	if !o.registry.Available(name) {
		err := zerr.Wrap(domain.ErrUnsupportedTarget, "target is not available on this host")
		err = zerr.With(err, "target", name)
		return domain.Target{}, zerr.With(err, "host", string(o.registry.Host()))
	}
	return target, nil
}

// discardExports removes the previous run's binaries and manifest entries of name.
func (o *Orchestrator) discardExports(settings *domain.Settings, name string) error {
	for _, cfg := range domain.Configurations() {
		if err := o.files.RemoveAll(settings.ExportDir(name, cfg)); err != nil {
			return err
		}
	}
	return o.store.Forget(settings.ManifestPath(), name)
}

func (r *targetRun) execute(tc ports.Toolchain) error {
	steps := []struct {
		stage domain.Stage
		fn    func(ctx context.Context) error
	}{
		{domain.StageGenerating, func(ctx context.Context) error {
			return tc.Generate(ctx, r.job)
		}},
		{domain.BuildStage(domain.ConfigDebug), func(ctx context.Context) error {
			return tc.Build(ctx, r.job, domain.ConfigDebug)
		}},
		{domain.BuildStage(domain.ConfigRelease), func(ctx context.Context) error {
			return tc.Build(ctx, r.job, domain.ConfigRelease)
		}},
		{domain.StageCollecting, func(ctx context.Context) error {
			return r.collect(ctx, tc)
		}},
	}

	for _, step := range steps {
		if err := r.advance(step.stage); err != nil {
			return err
		}
		if err := r.stage(step.stage, step.fn); err != nil {
			return err
		}
	}
	return r.advance(domain.StageDone)
}

func (r *targetRun) advance(next domain.Stage) error {
	if !r.outcome.Stage.CanTransition(next) {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidTransition, "stage transition rejected"), "from", string(r.outcome.Stage))
		return zerr.With(err, "to", string(next))
	}
	r.outcome.Stage = next
	return nil
}

// stage runs fn inside a span named after the stage.
func (r *targetRun) stage(stage domain.Stage, fn func(ctx context.Context) error) error {
	ctx, span := r.o.tracer.Start(r.ctx, string(stage),
		ports.WithAttribute("target", r.job.Target.Name),
		ports.WithAttribute("family", string(r.job.Target.Family)),
	)
	defer span.End()

	r.vertex.Log(domain.LogLevelInfo, string(stage))
	if err := fn(ctx); err != nil {
		span.RecordError(err)
		r.vertex.Log(domain.LogLevelError, err.Error())
		return err
	}
	return nil
}

// collect exports the artifacts, checksums them and records them in the manifest.
func (r *targetRun) collect(ctx context.Context, tc ports.Toolchain) error {
	artifacts, err := tc.Collect(ctx, r.job)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for i := range artifacts {
		g.Go(func() error {
			sum, err := r.o.hasher.Checksum(artifacts[i].Path)
			if err != nil {
				return err
			}
			artifacts[i].Checksum = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	stamp := r.o.now().UTC()
	entries := make([]domain.ManifestEntry, 0, len(artifacts))
	for _, a := range artifacts {
		entries = append(entries, domain.ManifestEntry{
			Target:        a.Target,
			Configuration: a.Configuration,
			Path:          a.Path,
			Checksum:      a.Checksum,
			Timestamp:     stamp,
		})
	}
	if err := r.o.store.Record(r.job.Settings.ManifestPath(), r.job.Target.Name, entries); err != nil {
		return err
	}

	r.outcome.Artifacts = artifacts
	return nil
}
