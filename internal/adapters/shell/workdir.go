package shell

import (
	"errors"
	"os"
	"sync"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// wdMu serializes every change of the process working directory.
var wdMu sync.Mutex

// Within runs fn with the process working directory set to dir and restores
// the previous directory afterwards, whether fn succeeds, fails or panics.
// dir is created if it does not exist. An empty dir runs fn in place.
func Within(dir string, fn func() error) (err error) {
	wdMu.Lock()
	defer wdMu.Unlock()

	if dir == "" {
		return fn()
	}

	prev, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to read working directory")
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrFileSystemConflict, err), "failed to create working directory"), "path", dir)
	}
	if err := os.Chdir(dir); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrFileSystemConflict, err), "failed to enter working directory"), "path", dir)
	}

	defer func() {
		if cerr := os.Chdir(prev); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, "failed to restore working directory"), "path", prev)
		}
	}()

	return fn()
}
