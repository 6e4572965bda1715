// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sdkbuild/internal/adapters/cas"
	_ "go.trai.ch/sdkbuild/internal/adapters/config"
	_ "go.trai.ch/sdkbuild/internal/adapters/deps"
	_ "go.trai.ch/sdkbuild/internal/adapters/fs"
	_ "go.trai.ch/sdkbuild/internal/adapters/linear"
	_ "go.trai.ch/sdkbuild/internal/adapters/locator"
	_ "go.trai.ch/sdkbuild/internal/adapters/logger"
	_ "go.trai.ch/sdkbuild/internal/adapters/shell"
	_ "go.trai.ch/sdkbuild/internal/adapters/telemetry"
	_ "go.trai.ch/sdkbuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/sdkbuild/internal/app"
	_ "go.trai.ch/sdkbuild/internal/engine/orchestrator"
	_ "go.trai.ch/sdkbuild/internal/engine/toolchain"
)
