package ports

import "go.trai.ch/sdkbuild/internal/core/domain"

// ManifestStore persists the export manifest consumed by packaging.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Record replaces every entry of target in the manifest at path with entries.
	Record(path, target string, entries []domain.ManifestEntry) error

	// Forget drops every entry of target from the manifest at path.
	// A missing manifest or an absent target is not an error.
	Forget(path, target string) error

	// Entries returns the manifest at path sorted by target and configuration.
	// A missing manifest yields no entries and no error.
	Entries(path string) ([]domain.ManifestEntry, error)
}
