// Package app implements the application layer for mountbar.
package app

import (
	"context"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/mountbar/internal/engine/tasks"
)

// App runs every user-facing operation as a traced task.
type App struct {
	reconciler ports.MountReconciler
	helper     ports.HelperExecutor
	inventory  ports.DiskInventory
	vmConfig   ports.VMConfigStore
	actions    ports.ActionStore
	logs       ports.LogReader
	volumes    ports.VolumeWatcher
	terminal   ports.Terminal
	tracer     ports.Tracer
	runner     *tasks.Runner
	logger     ports.Logger
	settings   domain.Settings
}

// New creates a new App instance.
func New(
	reconciler ports.MountReconciler,
	helper ports.HelperExecutor,
	inventory ports.DiskInventory,
	vmConfig ports.VMConfigStore,
	actions ports.ActionStore,
	logs ports.LogReader,
	volumes ports.VolumeWatcher,
	terminal ports.Terminal,
	tracer ports.Tracer,
	runner *tasks.Runner,
	logger ports.Logger,
	settings domain.Settings,
) *App {
	return &App{
		reconciler: reconciler,
		helper:     helper,
		inventory:  inventory,
		vmConfig:   vmConfig,
		actions:    actions,
		logs:       logs,
		volumes:    volumes,
		terminal:   terminal,
		tracer:     tracer,
		runner:     runner,
		logger:     logger,
		settings:   settings,
	}
}

// traced runs fn on the task runner inside a span named after the operation.
func traced[T any](ctx context.Context, a *App, name string, fn func(context.Context) (T, error), attrs ...any) (T, error) {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()
	for i := 0; i+1 < len(attrs); i += 2 {
		if key, ok := attrs[i].(string); ok {
			span.SetAttribute(key, attrs[i+1])
		}
	}

	v, err := tasks.Run(ctx, a.runner, name, fn)
	span.RecordError(err)
	return v, err
}

// Status returns the reconciled mount state.
func (a *App) Status(ctx context.Context) (domain.MountStatus, error) {
	return traced(ctx, a, "status", func(ctx context.Context) (domain.MountStatus, error) {
		return a.reconciler.Status(ctx), nil
	})
}

// Check reports whether the helper binary can be found.
func (a *App) Check(ctx context.Context) (domain.CLIStatus, error) {
	return traced(ctx, a, "check", func(context.Context) (domain.CLIStatus, error) {
		path, err := a.helper.Locate()
		if err != nil {
			a.logger.Debug("helper not located", "error", err.Error())
			return domain.CLIStatus{Available: false, Path: "not found"}, nil
		}
		return domain.CLIStatus{Available: true, Path: path}, nil
	})
}

// HelperVersion returns the helper's version string.
func (a *App) HelperVersion(ctx context.Context) (string, error) {
	return traced(ctx, a, "version", a.helper.Version)
}

// Disks lists the disks the helper can see, annotated with live state.
func (a *App) Disks(ctx context.Context, admin bool) (domain.DiskList, error) {
	return traced(ctx, a, "disks", func(ctx context.Context) (domain.DiskList, error) {
		return a.inventory.List(ctx, admin)
	}, "admin", admin)
}

// Mount mounts device, handing passphrase to the helper when set.
func (a *App) Mount(ctx context.Context, device string, passphrase domain.Secret) (string, error) {
	return traced(ctx, a, "mount", func(ctx context.Context) (string, error) {
		return a.reconciler.Mount(ctx, device, passphrase)
	}, "device", device, "passphrase", passphrase != nil)
}

// Unmount unmounts the active export.
func (a *App) Unmount(ctx context.Context) (string, error) {
	return traced(ctx, a, "unmount", a.reconciler.Unmount)
}

// Eject unmounts if needed and ejects the disk holding device.
func (a *App) Eject(ctx context.Context, device string) (string, error) {
	return traced(ctx, a, "eject", func(ctx context.Context) (string, error) {
		return a.reconciler.Eject(ctx, device)
	}, "device", device)
}

// Cleanup kills leftover helper processes and removes the control socket.
func (a *App) Cleanup(ctx context.Context) (string, error) {
	return traced(ctx, a, "cleanup", a.reconciler.ForceCleanup)
}
