package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*Files)(nil)

// Files implements ports.FileSystem on the host file system.
type Files struct {
	walker *Walker
}

// NewFiles creates a new Files.
func NewFiles(walker *Walker) *Files {
	return &Files{walker: walker}
}

// Exists reports whether path exists without following a final symlink.
func (f *Files) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// MkdirAll creates path and any missing parents.
func (f *Files) MkdirAll(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return conflict(err, "failed to create directory", path)
	}
	return nil
}

// RemoveAll removes path and its contents. A missing path is success.
func (f *Files) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return conflict(err, "failed to remove directory", path)
	}
	return nil
}

// RemoveSymlinks removes every symlink below root without touching its target.
func (f *Files) RemoveSymlinks(root string) error {
	if !f.Exists(root) {
		return nil
	}

	// Collect first; removing while walking would disturb the walk.
	for _, link := range slices.Collect(f.walker.Symlinks(root)) {
		if err := os.Remove(link); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return conflict(err, "failed to remove symlink", link)
		}
	}
	return nil
}

// Symlink replaces link, whatever it currently is, with a symlink to target.
func (f *Files) Symlink(target, link string) error {
	if err := f.RemoveAll(link); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(link), domain.DirPerm); err != nil {
		return conflict(err, "failed to create directory", filepath.Dir(link))
	}
	if err := os.Symlink(target, link); err != nil {
		return zerr.With(conflict(err, "failed to create symlink", link), "target", target)
	}
	return nil
}

// Move renames src to dst. When a rename is impossible, as across devices,
// the file is copied and the source removed.
func (f *Files) Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := f.Copy(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return conflict(err, "failed to remove moved file", src)
	}
	return nil
}

// Copy copies the regular file src to dst, keeping its permission bits.
func (f *Files) Copy(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // build output path
	if err != nil {
		return conflict(err, "failed to open file", src)
	}
	defer in.Close() //nolint:errcheck // read-only

	info, err := in.Stat()
	if err != nil {
		return conflict(err, "failed to stat file", src)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // export path
	if err != nil {
		return conflict(err, "failed to create file", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return conflict(err, "failed to copy file", dst)
	}
	if err := out.Close(); err != nil {
		return conflict(err, "failed to close file", dst)
	}
	return nil
}

// ReadFile returns the contents of path.
func (f *Files) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // generated project path
	if err != nil {
		return nil, conflict(err, "failed to read file", path)
	}
	return data, nil
}

// WriteFile replaces the contents of path, keeping its mode when it exists.
func (f *Files) WriteFile(path string, data []byte) error {
	mode := iofs.FileMode(domain.FilePerm)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return conflict(err, "failed to write file", path)
	}
	return nil
}

func conflict(err error, msg, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrFileSystemConflict, err), msg), "path", path)
}
