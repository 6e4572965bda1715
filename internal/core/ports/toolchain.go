package ports

import (
	"context"

	"go.trai.ch/sdkbuild/internal/core/domain"
)

// Toolchain drives the external build system of one platform family.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Generate produces the native project files for the job's target.
	Generate(ctx context.Context, job *domain.Job) error

	// Build compiles one configuration of the generated project.
	Build(ctx context.Context, job *domain.Job, cfg domain.Configuration) error

	// Collect moves the Debug and Release outputs into the export layout.
	Collect(ctx context.Context, job *domain.Job) ([]domain.Artifact, error)
}

// ToolchainProvider returns the toolchain responsible for a platform family.
type ToolchainProvider interface {
	For(family domain.PlatformFamily) (Toolchain, error)
}
