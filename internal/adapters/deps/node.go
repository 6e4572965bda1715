package deps

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sdkbuild/internal/adapters/fs"
	"go.trai.ch/sdkbuild/internal/adapters/locator"
	"go.trai.ch/sdkbuild/internal/adapters/logger"
	"go.trai.ch/sdkbuild/internal/core/ports"
)

// NodeID is the unique identifier for the dependency preflight Graft node.
const NodeID graft.ID = "adapter.deps"

func init() {
	graft.Register(graft.Node[ports.DependencyInstaller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FilesNodeID, locator.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DependencyInstaller, error) {
			files, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			loc, err := graft.Dep[ports.ToolchainLocator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPreflight(files, loc, log), nil
		},
	})
}
