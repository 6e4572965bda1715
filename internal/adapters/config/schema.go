package config

// SettingsFile represents the structure of the sdkbuild.yaml settings file.
type SettingsFile struct {
	SDKRoot    string   `yaml:"sdk_root"`
	BuildRoot  string   `yaml:"build_root"`
	ExportRoot string   `yaml:"export_root"`
	CMakeRoot  string   `yaml:"cmake_root"`
	VSWhere    string   `yaml:"vswhere"`
	Toolset    string   `yaml:"toolset"`
	Tizen      TizenDTO `yaml:"tizen"`
}

// TizenDTO represents the tizen section of the settings file.
type TizenDTO struct {
	Root               string `yaml:"root"`
	Profile            string `yaml:"profile"`
	DescriptorTemplate string `yaml:"descriptor_template"`
	Compiler           string `yaml:"compiler"`
}
