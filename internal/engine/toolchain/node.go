package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sdkbuild/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sdkbuild/internal/adapters/locator" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sdkbuild/internal/adapters/shell"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sdkbuild/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain set Graft node.
const NodeID graft.ID = "engine.toolchain"

func init() {
	graft.Register(graft.Node[ports.ToolchainProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			locator.NodeID,
			fs.FilesNodeID,
		},
		Run: func(ctx context.Context) (ports.ToolchainProvider, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			loc, err := graft.Dep[ports.ToolchainLocator](ctx)
			if err != nil {
				return nil, err
			}

			files, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			return NewSet(executor, loc, files), nil
		},
	})
}
