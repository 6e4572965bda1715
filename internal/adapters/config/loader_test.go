package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkbuild/internal/adapters/config"
	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/sdkbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, cwd string) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	loader := config.NewLoader(log)
	loader.Getwd = func() (string, error) { return cwd, nil }
	loader.Home = func() (string, error) { return "/home/ci", nil }
	return loader, log
}

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cwd := t.TempDir()
	loader, log := newLoader(t, cwd)
	log.EXPECT().Info(gomock.Any())

	settings, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(cwd), settings)
	assert.Equal(t, filepath.Join(cwd, "export"), settings.ExportRoot)
	assert.Equal(t, domain.DefaultToolset, settings.Toolset)
}

func TestLoad_ResolvesRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSettings(t, dir, `
sdk_root: sdk
build_root: build/jenkins/build
export_root: out
cmake_root: /opt/cmake
vswhere: 'C:\vswhere.exe'
toolset: "15.0"
tizen:
  root: ~/tizen-studio
  profile: wearable-3.0
  descriptor_template: build/tizen/project_def.prop
  compiler: llvm
`)

	loader, _ := newLoader(t, "/elsewhere")
	settings, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "sdk"), settings.SDKRoot)
	assert.Equal(t, filepath.Join(dir, "build", "jenkins", "build"), settings.BuildRoot)
	assert.Equal(t, filepath.Join(dir, "out"), settings.ExportRoot)
	assert.Equal(t, "/opt/cmake", settings.CMakeRoot)
	assert.Equal(t, `C:\vswhere.exe`, settings.VSWherePath)
	assert.Equal(t, "15.0", settings.Toolset)
	assert.Equal(t, filepath.Join("/home/ci", "tizen-studio"), settings.Tizen.Root)
	assert.Equal(t, "wearable-3.0", settings.Tizen.Profile)
	assert.Equal(t, filepath.Join(dir, "build", "tizen", "project_def.prop"), settings.Tizen.DescriptorTemplate)
	assert.Equal(t, "llvm", settings.Tizen.Compiler)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeSettings(t, dir, "toolset: \"12.0\"\n")

	loader, _ := newLoader(t, "/elsewhere")
	settings, err := loader.Load(path)
	require.NoError(t, err)

	want := domain.DefaultSettings(dir)
	want.Toolset = "12.0"
	assert.Equal(t, want, settings)
}

func TestLoad_RelativePathUsesWorkingDirectory(t *testing.T) {
	cwd := t.TempDir()
	writeSettings(t, cwd, "sdk_root: .\n")

	loader, _ := newLoader(t, cwd)
	settings, err := loader.Load(domain.ConfigFileName)
	require.NoError(t, err)
	assert.Equal(t, cwd, settings.SDKRoot)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeSettings(t, dir, "tizen: [unclosed\n")

	loader, _ := newLoader(t, dir)
	_, err := loader.Load(path)
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoad_Unreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory cannot be read as a file.
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.Mkdir(path, 0o750))

	loader, _ := newLoader(t, dir)
	_, err := loader.Load(path)
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}
