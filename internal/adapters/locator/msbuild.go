package locator

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/sdkbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// msbuild tries the registry first and vswhere second.
func (l *Locator) msbuild(ctx context.Context, settings *domain.Settings) (string, error) {
	toolset := settings.Toolset
	if toolset == "" {
		toolset = domain.DefaultToolset
	}

	if path, err := l.registry(toolset); err == nil && isFile(path) {
		return path, nil
	}

	if path, ok := l.vswhere(ctx, settings.VSWherePath, toolset); ok {
		return path, nil
	}

	return "", zerr.With(notFound(domain.ToolMSBuild, "not found in registry or by vswhere"), "toolset", toolset)
}

func (l *Locator) vswhere(ctx context.Context, vswherePath, toolset string) (string, bool) {
	if vswherePath == "" || !isFile(vswherePath) {
		return "", false
	}

	out, err := l.executor.Output(ctx, domain.Invocation{
		Path: vswherePath,
		Args: []string{
			"-latest",
			"-products", "*",
			"-requires", "Microsoft.Component.MSBuild",
			"-property", "installationPath",
		},
		Silent: true,
	})
	if err != nil {
		return "", false
	}

	installDir := firstLine(out)
	if installDir == "" {
		return "", false
	}

	path := filepath.Join(installDir, "MSBuild", vswhereVersionDir(toolset), "Bin", "MSBuild.exe")
	if !isFile(path) {
		return "", false
	}
	return path, true
}

// vswhereVersionDir maps a toolset to its directory under <install>/MSBuild.
// Visual Studio 2017 ships 15.0; later releases use Current.
func vswhereVersionDir(toolset string) string {
	if toolset == "15.0" {
		return toolset
	}
	return "Current"
}

func firstLine(out []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line
		}
	}
	return ""
}
