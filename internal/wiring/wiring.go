// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nest/internal/adapters/cas"
	_ "go.trai.ch/nest/internal/adapters/config"
	_ "go.trai.ch/nest/internal/adapters/fs"
	_ "go.trai.ch/nest/internal/adapters/logger"
	_ "go.trai.ch/nest/internal/adapters/shell"
	_ "go.trai.ch/nest/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/nest/internal/app"
	_ "go.trai.ch/nest/internal/engine/runner"
	_ "go.trai.ch/nest/internal/engine/stack"
)
