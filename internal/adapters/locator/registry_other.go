//go:build !windows

package locator

import "go.trai.ch/zerr"

func registryMSBuildPath(_ string) (string, error) {
	return "", zerr.New("registry is only available on windows")
}
