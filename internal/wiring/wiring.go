// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tscache/internal/adapters/cas"
	_ "go.trai.ch/tscache/internal/adapters/config"
	_ "go.trai.ch/tscache/internal/adapters/esbuild"
	_ "go.trai.ch/tscache/internal/adapters/fs"
	_ "go.trai.ch/tscache/internal/adapters/logger"
	_ "go.trai.ch/tscache/internal/adapters/s3cache"
	_ "go.trai.ch/tscache/internal/adapters/telemetry"
	_ "go.trai.ch/tscache/internal/adapters/typescript"
	// Register app and engine nodes.
	_ "go.trai.ch/tscache/internal/app"
	_ "go.trai.ch/tscache/internal/engine/transpiler"
)
