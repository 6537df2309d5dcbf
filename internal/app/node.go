package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/actions"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mountbar/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mountbar/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/mountbar/internal/adapters/helper"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mountbar/internal/adapters/inventory" //nolint:depguard // Wired in app layer
	"go.trai.ch/mountbar/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mountbar/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mountbar/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/mountbar/internal/adapters/vmconfig"  //nolint:depguard // Wired in app layer
	"go.trai.ch/mountbar/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/mountbar/internal/engine/reconciler"
	"go.trai.ch/mountbar/internal/engine/tasks"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			reconciler.NodeID,
			helper.NodeID,
			inventory.NodeID,
			vmconfig.NodeID,
			actions.NodeID,
			watcher.LogReaderNodeID,
			watcher.VolumeWatcherNodeID,
			shell.TerminalNodeID,
			telemetry.TracerNodeID,
			tasks.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
			detector.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	rec, err := graft.Dep[ports.MountReconciler](ctx)
	if err != nil {
		return nil, err
	}

	exec, err := graft.Dep[ports.HelperExecutor](ctx)
	if err != nil {
		return nil, err
	}

	inv, err := graft.Dep[ports.DiskInventory](ctx)
	if err != nil {
		return nil, err
	}

	vmStore, err := graft.Dep[ports.VMConfigStore](ctx)
	if err != nil {
		return nil, err
	}

	actionStore, err := graft.Dep[ports.ActionStore](ctx)
	if err != nil {
		return nil, err
	}

	logs, err := graft.Dep[ports.LogReader](ctx)
	if err != nil {
		return nil, err
	}

	volumes, err := graft.Dep[ports.VolumeWatcher](ctx)
	if err != nil {
		return nil, err
	}

	terminal, err := graft.Dep[ports.Terminal](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*tasks.Runner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(rec, exec, inv, vmStore, actionStore, logs, volumes, terminal, tracer, runner, log, settings), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	detect, err := graft.Dep[*detector.Detector](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Settings: settings,
		Detector: detect,
	}, nil
}
