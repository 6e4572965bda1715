// Package cas implements the export manifest store.
package cas

import (
	"cmp"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore using a flat JSON file under the build root.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

type manifestFile struct {
	Entries []domain.ManifestEntry `json:"entries"`
}

// Record replaces the entries of target in the manifest at path.
func (s *Store) Record(path, target string, entries []domain.ManifestEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := load(path)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(current, func(e domain.ManifestEntry) bool {
		return e.Target == target
	})
	kept = append(kept, entries...)
	sortEntries(kept)

	return save(path, kept)
}

// Forget drops the entries of target from the manifest at path.
// The file is left alone when it holds nothing for target.
func (s *Store) Forget(path, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := load(path)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(slices.Clone(current), func(e domain.ManifestEntry) bool {
		return e.Target == target
	})
	if len(kept) == len(current) {
		return nil
	}
	return save(path, kept)
}

// Entries returns the manifest at path. A missing manifest is empty.
func (s *Store) Entries(path string) ([]domain.ManifestEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := load(path)
	if err != nil {
		return nil, err
	}
	sortEntries(entries)
	return entries, nil
}

func load(path string) ([]domain.ManifestEntry, error) {
	//nolint:gosec // Path is derived from the configured build root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrManifestReadFailed, err), "failed to read export manifest"), "path", path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var file manifestFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrManifestReadFailed, err), "failed to unmarshal export manifest"), "path", path)
	}
	return file.Entries, nil
}

func save(path string, entries []domain.ManifestEntry) error {
	data, err := json.MarshalIndent(manifestFile{Entries: entries}, "", "  ")
	if err != nil {
		return zerr.Wrap(errors.Join(domain.ErrManifestWriteFailed, err), "failed to marshal export manifest")
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrManifestWriteFailed, err), "failed to create manifest directory"), "path", path)
	}

	//nolint:gosec // Path is derived from the configured build root
	if err := os.WriteFile(path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrManifestWriteFailed, err), "failed to write export manifest"), "path", path)
	}
	return nil
}

func sortEntries(entries []domain.ManifestEntry) {
	slices.SortFunc(entries, func(a, b domain.ManifestEntry) int {
		return cmp.Or(
			cmp.Compare(a.Target, b.Target),
			cmp.Compare(a.Configuration, b.Configuration),
		)
	})
}
