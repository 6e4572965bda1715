//go:build windows

package locator

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

func registryMSBuildPath(toolset string) (string, error) {
	key, err := registry.OpenKey(
		registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\MSBuild\ToolsVersions\`+toolset,
		registry.QUERY_VALUE,
	)
	if err != nil {
		return "", err
	}
	defer key.Close() //nolint:errcheck // read-only key

	dir, _, err := key.GetStringValue("MSBuildToolsPath")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "MSBuild.exe"), nil
}
