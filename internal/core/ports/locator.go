package ports

import (
	"context"

	"go.trai.ch/sdkbuild/internal/core/domain"
)

// ToolchainLocator resolves the path of an external build tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ToolchainLocator interface {
	// Locate returns the absolute path of the tool, or domain.ErrToolNotFound
	// once every discovery strategy has been tried.
	// Nothing is cached; every call re-resolves.
	Locate(ctx context.Context, kind domain.ToolKind, settings *domain.Settings) (string, error)
}
