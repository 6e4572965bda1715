package domain

import "slices"

// PlatformFamily groups targets that are driven by the same external toolchain.
type PlatformFamily string

const (
	// FamilyDesktopApple builds with CMake generating an Xcode project.
	FamilyDesktopApple PlatformFamily = "desktop-apple"
	// FamilyDesktopWindows builds with CMake generating a Visual Studio solution.
	FamilyDesktopWindows PlatformFamily = "desktop-windows"
	// FamilyWindowsStore builds with CMake cross-compiling for the Windows Store.
	FamilyWindowsStore PlatformFamily = "windows-store"
	// FamilyEmbeddedIDE builds with the Tizen Studio native project CLI.
	FamilyEmbeddedIDE PlatformFamily = "embedded-ide"
	// FamilyDesktopLinux builds with CMake generating Unix Makefiles.
	FamilyDesktopLinux PlatformFamily = "desktop-linux"
)

// Linkage is the library output mode of a target.
type Linkage string

const (
	// LinkageStatic produces a static archive.
	LinkageStatic Linkage = "static"
	// LinkageShared produces a dynamic library.
	LinkageShared Linkage = "shared"
)

// Arch is the CPU architecture a target is compiled for.
type Arch string

const (
	// ArchX86 is 32-bit x86.
	ArchX86 Arch = "x86"
	// ArchX64 is 64-bit x86.
	ArchX64 Arch = "x64"
	// ArchARM is 32-bit ARM.
	ArchARM Arch = "arm"
)

// Bits returns the pointer width of the architecture.
func (a Arch) Bits() int {
	if a == ArchX64 {
		return 64
	}
	return 32
}

// Host is an operating system a target can be built on, matching runtime.GOOS.
type Host string

const (
	// HostDarwin is macOS.
	HostDarwin Host = "darwin"
	// HostWindows is Windows.
	HostWindows Host = "windows"
	// HostLinux is Linux.
	HostLinux Host = "linux"
)

// Configuration is a build configuration. Every target is built for all of them.
type Configuration string

const (
	// ConfigDebug is the unoptimized configuration with debug information.
	ConfigDebug Configuration = "Debug"
	// ConfigRelease is the optimized configuration.
	ConfigRelease Configuration = "Release"
)

// Configurations returns every configuration in build order.
func Configurations() []Configuration {
	return []Configuration{ConfigDebug, ConfigRelease}
}

// Target describes one named (platform, architecture, linkage) build request.
// Targets are immutable once registered.
type Target struct {
	Name      string
	Family    PlatformFamily
	Generator string
	Arch      Arch
	Linkage   Linkage
	Hosts     []Host
}

// AvailableOn reports whether the target may be built on host.
func (t Target) AvailableOn(host Host) bool {
	return slices.Contains(t.Hosts, host)
}
