package domain

// ToolKind names an external executable the orchestrator drives.
type ToolKind string

const (
	// ToolCMake is the CMake executable from the configured CMake root.
	ToolCMake ToolKind = "cmake"
	// ToolMSBuild is the Visual Studio build engine.
	ToolMSBuild ToolKind = "msbuild"
	// ToolTizen is the Tizen Studio command line interface.
	ToolTizen ToolKind = "tizen"
	// ToolXcodeBuild is the Xcode command line build tool.
	ToolXcodeBuild ToolKind = "xcodebuild"
	// ToolMake is GNU make.
	ToolMake ToolKind = "make"
)

// RequiredTools returns the tools a platform family invokes, in invocation order.
func RequiredTools(family PlatformFamily) []ToolKind {
	switch family {
	case FamilyDesktopApple:
		return []ToolKind{ToolCMake, ToolXcodeBuild}
	case FamilyDesktopWindows, FamilyWindowsStore:
		return []ToolKind{ToolCMake, ToolMSBuild}
	case FamilyEmbeddedIDE:
		return []ToolKind{ToolTizen}
	case FamilyDesktopLinux:
		return []ToolKind{ToolCMake, ToolMake}
	default:
		return nil
	}
}
