package ports

import (
	"context"

	"go.trai.ch/sdkbuild/internal/core/domain"
)

// DependencyInstaller prepares the host before any target is built.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type DependencyInstaller interface {
	// Ensure checks or creates what the requested targets need. Targets whose
	// tools are missing are returned by name with a reason wrapping
	// domain.ErrDependencyMissing and domain.ErrToolNotFound; the error is
	// reserved for failures that stop every target.
	Ensure(ctx context.Context, settings *domain.Settings, targets []domain.Target) (map[string]error, error)
}
