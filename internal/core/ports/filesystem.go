package ports

// FileSystem is the set of tree operations toolchains perform on build and export directories.
// Failures are reported as domain.ErrFileSystemConflict carrying the offending path.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path exists. A dangling symlink counts as existing.
	Exists(path string) bool

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error

	// RemoveAll removes path and everything below it. A missing path is not an error.
	RemoveAll(path string) error

	// RemoveSymlinks removes every symbolic link below root without following it.
	RemoveSymlinks(root string) error

	// Symlink replaces link with a symbolic link pointing at target.
	Symlink(target, link string) error

	// Move renames src to dst, falling back to copy and remove across devices.
	Move(src, dst string) error

	// Copy copies the regular file src to dst.
	Copy(src, dst string) error

	// ReadFile returns the contents of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the contents of path.
	WriteFile(path string, data []byte) error
}
