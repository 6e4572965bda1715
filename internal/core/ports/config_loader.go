package ports

import "go.trai.ch/sdkbuild/internal/core/domain"

// ConfigLoader defines the interface for loading build settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path. A missing file yields defaults
	// rooted at the current working directory.
	Load(path string) (*domain.Settings, error)
}
