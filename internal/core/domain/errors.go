package domain

import "go.trai.ch/zerr"

var (
	// ErrToolNotFound is returned when a required external tool cannot be located.
	ErrToolNotFound = zerr.New("tool not found")

	// ErrProcessFailed is returned when an external process exits with a non-zero status.
	ErrProcessFailed = zerr.New("process failed")

	// ErrUnsupportedTarget is returned when a target cannot be built on the current host.
	ErrUnsupportedTarget = zerr.New("target not supported on this host")

	// ErrUnknownTarget is returned when a target name is not in the registry.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrMissingArtifact is returned when an expected raw build output does not exist.
	ErrMissingArtifact = zerr.New("missing artifact")

	// ErrFileSystemConflict is returned when a directory or link cannot be removed, created or replaced.
	ErrFileSystemConflict = zerr.New("file system conflict")

	// ErrInvalidArguments is returned when the command line cannot be parsed.
	ErrInvalidArguments = zerr.New("invalid arguments")

	// ErrBuildExecutionFailed is returned when at least one target failed to build.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTransition is returned when a target outcome moves to a stage it cannot reach.
	ErrInvalidTransition = zerr.New("invalid stage transition")

	// ErrDependencyMissing is returned by the preflight check when a host tool is absent.
	ErrDependencyMissing = zerr.New("build dependency missing")

	// ErrManifestWriteFailed is returned when the export manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write export manifest")

	// ErrManifestReadFailed is returned when the export manifest cannot be read or decoded.
	ErrManifestReadFailed = zerr.New("failed to read export manifest")

	// ErrChecksumFailed is returned when an exported artifact cannot be hashed.
	ErrChecksumFailed = zerr.New("failed to checksum artifact")

	// ErrPatchFailed is returned when a generated project file cannot be rewritten.
	ErrPatchFailed = zerr.New("failed to patch project file")
)
