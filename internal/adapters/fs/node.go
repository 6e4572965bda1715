package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sdkbuild/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// FilesNodeID is the unique identifier for the file system Graft node.
	FilesNodeID graft.ID = "adapter.fs.files"
	// HasherNodeID is the unique identifier for the artifact hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FilesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.FileSystem, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewFiles(walker), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactHasher, error) {
			return NewHasher(), nil
		},
	})
}
