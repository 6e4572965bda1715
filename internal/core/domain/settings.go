package domain

import "path/filepath"

// DefaultToolset is the MSBuild toolset requested when none is configured.
const DefaultToolset = "14.0"

// TizenSettings configures the Tizen Studio native project CLI.
type TizenSettings struct {
	Root               string
	Profile            string
	DescriptorTemplate string
	Compiler           string
}

// Settings holds everything a build needs to locate its inputs, outputs and tools.
type Settings struct {
	Layout

	CMakeRoot   string
	Toolset     string
	VSWherePath string
	Tizen       TizenSettings
}

// DefaultSettings returns settings rooted at sdkRoot with the stock tool locations.
func DefaultSettings(sdkRoot string) *Settings {
	return &Settings{
		Layout:      NewLayout(sdkRoot),
		CMakeRoot:   filepath.Join(sdkRoot, "build", "jenkins", "cmake"),
		Toolset:     DefaultToolset,
		VSWherePath: `C:\Program Files (x86)\Microsoft Visual Studio\Installer\vswhere.exe`,
		Tizen: TizenSettings{
			Profile:            "mobile-2.4",
			DescriptorTemplate: filepath.Join(sdkRoot, "build", "tizen", "project_def.prop"),
			Compiler:           "gcc",
		},
	}
}
