// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mountbar/internal/adapters/actions"
	_ "go.trai.ch/mountbar/internal/adapters/config"
	_ "go.trai.ch/mountbar/internal/adapters/control"
	_ "go.trai.ch/mountbar/internal/adapters/detector"
	_ "go.trai.ch/mountbar/internal/adapters/diskutil"
	_ "go.trai.ch/mountbar/internal/adapters/helper"
	_ "go.trai.ch/mountbar/internal/adapters/inventory"
	_ "go.trai.ch/mountbar/internal/adapters/logger"
	_ "go.trai.ch/mountbar/internal/adapters/probecache"
	_ "go.trai.ch/mountbar/internal/adapters/shell"
	_ "go.trai.ch/mountbar/internal/adapters/telemetry"
	_ "go.trai.ch/mountbar/internal/adapters/vmconfig"
	_ "go.trai.ch/mountbar/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/mountbar/internal/app"
	_ "go.trai.ch/mountbar/internal/engine/reconciler"
	_ "go.trai.ch/mountbar/internal/engine/tasks"
)
