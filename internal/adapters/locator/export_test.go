package locator

import "go.trai.ch/sdkbuild/internal/core/ports"

// NewForHost creates a Locator with injected host behavior for tests.
func NewForHost(
	executor ports.Executor,
	goos string,
	lookPath func(string) (string, error),
	registry func(string) (string, error),
) *Locator {
	return &Locator{executor: executor, goos: goos, lookPath: lookPath, registry: registry}
}
