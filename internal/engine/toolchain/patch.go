package toolchain

import (
	"bytes"
	"errors"
	"regexp"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Descriptor placeholders substituted in the Tizen project template.
const (
	libTypeToken = "<LIB_TYPE>"
	asyncToken   = "<ASYNC>"
)

// StdFlag is appended to the compile flags of generated Tizen projects.
const StdFlag = "-std=c++11"

var compileFlagsDecl = regexp.MustCompile(`^\s*CPP_COMPILE_FLAGS\s*[:+?]?=`)

// SubstituteDescriptor replaces the library type and async placeholders of a
// project descriptor for target t.
func SubstituteDescriptor(data []byte, t domain.Target) []byte {
	libType := "staticLib"
	if t.Linkage == domain.LinkageShared {
		libType = "sharedLib"
	}

	async := "-DGA_USE_ASYNC=0"
	if t.Arch == domain.ArchARM {
		async = "-DGA_USE_ASYNC=1"
	}

	out := bytes.ReplaceAll(data, []byte(libTypeToken), []byte(libType))
	return bytes.ReplaceAll(out, []byte(asyncToken), []byte(async))
}

// AppendStdFlag appends StdFlag to the first line declaring CPP_COMPILE_FLAGS.
// Data already carrying the flag is returned unchanged.
func AppendStdFlag(data []byte) []byte {
	if bytes.Contains(data, []byte(StdFlag)) {
		return data
	}

	lines := bytes.SplitAfter(data, []byte("\n"))
	for i, line := range lines {
		if !compileFlagsDecl.Match(line) {
			continue
		}
		body := bytes.TrimRight(line, "\r\n")
		ending := line[len(body):]

		patched := make([]byte, 0, len(line)+len(StdFlag)+1)
		patched = append(patched, bytes.TrimRight(body, " \t")...)
		patched = append(patched, ' ')
		patched = append(patched, StdFlag...)
		lines[i] = append(patched, ending...)
		break
	}
	return bytes.Join(lines, nil)
}

// patchFile rewrites path through transform.
func patchFile(fs ports.FileSystem, path string, transform func([]byte) []byte) error {
	data, err := fs.ReadFile(path)
	if err != nil {
		return patchError(err, path)
	}
	if err := fs.WriteFile(path, transform(data)); err != nil {
		return patchError(err, path)
	}
	return nil
}

func patchError(err error, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrPatchFailed, err), "failed to patch project file"), "path", path)
}
