package domain

import "strings"

const (
	// LibraryName is the base name of the SDK library on every platform.
	LibraryName = "GameAnalytics"

	// TizenProjectName is the name of the generated Tizen native project.
	TizenProjectName = "gameanalytics"

	// SolutionName is the Visual Studio solution produced by CMake.
	SolutionName = LibraryName + ".sln"
)

// ArtifactSpec describes how a raw toolchain output becomes an exported artifact.
type ArtifactSpec struct {
	// RawName is the file name the toolchain writes.
	RawName string
	// CanonicalName is the file name under export/<target>/<configuration>/.
	CanonicalName string
	// KeepOriginal copies instead of moving, leaving RawName in the build directory.
	KeepOriginal bool
}

// ArtifactNaming resolves the raw and canonical artifact names of a target.
// It depends only on the target's family and linkage, except for Linux targets
// which are classified by a "shared" marker in their name.
func ArtifactNaming(t Target) ArtifactSpec {
	shared := t.Linkage == LinkageShared

	switch t.Family {
	case FamilyDesktopApple:
		if shared {
			return ArtifactSpec{
				RawName:       "lib" + LibraryName + ".dylib",
				CanonicalName: LibraryName + ".bundle",
				KeepOriginal:  true,
			}
		}
		return same("lib" + LibraryName + ".a")
	case FamilyDesktopWindows, FamilyWindowsStore:
		if shared {
			return same(LibraryName + ".dll")
		}
		return same(LibraryName + ".lib")
	case FamilyEmbeddedIDE:
		ext := ".a"
		if shared {
			ext = ".so"
		}
		return ArtifactSpec{
			RawName:       "lib" + TizenProjectName + ext,
			CanonicalName: "lib" + LibraryName + ext,
		}
	case FamilyDesktopLinux:
		if strings.Contains(t.Name, "shared") {
			return same("lib" + LibraryName + ".so")
		}
		return same("lib" + LibraryName + ".a")
	default:
		return ArtifactSpec{}
	}
}

func same(name string) ArtifactSpec {
	return ArtifactSpec{RawName: name, CanonicalName: name}
}

// Artifact is a binary placed in the canonical export layout.
type Artifact struct {
	Target        string
	Configuration Configuration
	Path          string
	Checksum      string
}
