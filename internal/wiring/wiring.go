// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ccsysroot/internal/adapters/cmake"
	_ "go.trai.ch/ccsysroot/internal/adapters/compdb"
	_ "go.trai.ch/ccsysroot/internal/adapters/config"
	_ "go.trai.ch/ccsysroot/internal/adapters/logger"
	_ "go.trai.ch/ccsysroot/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/ccsysroot/internal/app"
)
