package domain

import "path/filepath"

const (
	// BuildDirName is the directory under the SDK root holding per-target build trees.
	BuildDirName = "build"

	// ExportDirName is the directory under the SDK root holding collected artifacts.
	ExportDirName = "export"

	// ManifestFileName is the export manifest written under the build root.
	// It stays out of the export tree, which holds only the canonical binaries.
	ManifestFileName = "manifest.json"

	// ConfigFileName is the default settings file name.
	ConfigFileName = "sdkbuild.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout resolves the directories a build reads from and writes to.
// Every path is derived from SDKRoot so the process working directory never matters.
type Layout struct {
	SDKRoot    string
	BuildRoot  string
	ExportRoot string
}

// NewLayout returns the default layout rooted at sdkRoot.
func NewLayout(sdkRoot string) Layout {
	return Layout{
		SDKRoot:    sdkRoot,
		BuildRoot:  filepath.Join(sdkRoot, BuildDirName),
		ExportRoot: filepath.Join(sdkRoot, ExportDirName),
	}
}

// BuildDir returns the build directory of a target.
func (l Layout) BuildDir(target string) string {
	return filepath.Join(l.BuildRoot, target)
}

// ExportTargetDir returns export/<target>.
func (l Layout) ExportTargetDir(target string) string {
	return filepath.Join(l.ExportRoot, target)
}

// ExportDir returns export/<target>/<configuration>.
func (l Layout) ExportDir(target string, cfg Configuration) string {
	return filepath.Join(l.ExportRoot, target, string(cfg))
}

// ManifestPath returns the location of the export manifest.
func (l Layout) ManifestPath() string {
	return filepath.Join(l.BuildRoot, ManifestFileName)
}

// CMakeSourceDir returns the directory holding the SDK's top-level CMakeLists.txt.
func (l Layout) CMakeSourceDir() string {
	return filepath.Join(l.SDKRoot, "cmake", "gameanalytics")
}

// SourceDir returns the SDK sources linked into generated IDE projects.
func (l Layout) SourceDir() string {
	return filepath.Join(l.SDKRoot, "source", "gameanalytics")
}

// DependenciesDir returns the bundled third-party sources linked into generated IDE projects.
func (l Layout) DependenciesDir() string {
	return filepath.Join(l.SDKRoot, "source", "dependencies")
}
