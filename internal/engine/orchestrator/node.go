package orchestrator

import (
	"context"
	"runtime"

	"github.com/grindlemire/graft"
	"go.trai.ch/sdkbuild/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sdkbuild/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sdkbuild/internal/adapters/linear"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sdkbuild/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sdkbuild/internal/adapters/telemetry"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sdkbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/sdkbuild/internal/engine/toolchain"
)

const (
	// RegistryNodeID is the unique identifier for the target registry Graft node.
	RegistryNodeID graft.ID = "engine.registry"
	// NodeID is the unique identifier for the orchestrator Graft node.
	NodeID graft.ID = "engine.orchestrator"
)

func init() {
	graft.Register(graft.Node[*domain.Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Registry, error) {
			return domain.DefaultRegistry(domain.Host(runtime.GOOS)), nil
		},
	})

	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			RegistryNodeID,
			toolchain.NodeID,
			fs.FilesNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			progrock.NodeID,
			linear.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			registry, err := graft.Dep[*domain.Registry](ctx)
			if err != nil {
				return nil, err
			}

			toolchains, err := graft.Dep[ports.ToolchainProvider](ctx)
			if err != nil {
				return nil, err
			}

			files, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.ArtifactHasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(registry, toolchains, files, hasher, store, tracer, recorder, renderer, log), nil
		},
	})
}
