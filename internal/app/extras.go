package app

import (
	"context"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/zerr"
)

// Actions lists upstream and user custom actions.
func (a *App) Actions(ctx context.Context) ([]domain.CustomAction, error) {
	return traced(ctx, a, "actions.list", func(context.Context) ([]domain.CustomAction, error) {
		return a.actions.List()
	})
}

// CreateAction adds a user custom action.
func (a *App) CreateAction(ctx context.Context, action domain.CustomAction) error {
	_, err := traced(ctx, a, "actions.create", func(context.Context) (struct{}, error) {
		return struct{}{}, a.actions.Create(action)
	}, "action", action.Name)
	return err
}

// UpdateAction replaces a user custom action.
func (a *App) UpdateAction(ctx context.Context, action domain.CustomAction) error {
	_, err := traced(ctx, a, "actions.update", func(context.Context) (struct{}, error) {
		return struct{}{}, a.actions.Update(action)
	}, "action", action.Name)
	return err
}

// DeleteAction removes a user custom action.
func (a *App) DeleteAction(ctx context.Context, name string) error {
	_, err := traced(ctx, a, "actions.delete", func(context.Context) (struct{}, error) {
		return struct{}{}, a.actions.Delete(name)
	}, "action", name)
	return err
}

// Logs returns the last n lines of the helper log. A non-positive n uses
// the configured default.
func (a *App) Logs(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		n = a.settings.LogLines
	}
	path := a.settings.ResolvedLogPath()
	return traced(ctx, a, "logs", func(context.Context) ([]string, error) {
		return a.logs.Tail(path, n)
	}, "path", path, "lines", n)
}

// FollowLogs blocks until ctx is done, calling emit for each new log line.
func (a *App) FollowLogs(ctx context.Context, emit func(line string)) error {
	ctx, span := a.tracer.Start(ctx, "logs.follow")
	defer span.End()

	err := a.logs.Follow(ctx, a.settings.ResolvedLogPath(), emit)
	span.RecordError(err)
	return err
}

// WatchDisks blocks until ctx is done, emitting a fresh disk list after
// every settled change to the removable volumes.
func (a *App) WatchDisks(ctx context.Context, admin bool, emit func(domain.DiskList)) error {
	ctx, span := a.tracer.Start(ctx, "watch")
	defer span.End()

	err := a.volumes.Watch(ctx, func() {
		list, err := a.Disks(ctx, admin)
		if err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to refresh disks"))
			return
		}
		emit(list)
	})
	span.RecordError(err)
	return err
}

// Shell attaches the terminal to the helper's interactive shell.
func (a *App) Shell(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "shell")
	defer span.End()

	path, err := a.helper.Locate()
	if err != nil {
		span.RecordError(err)
		return err
	}
	err = a.terminal.Attach(ctx, path, "shell")
	span.RecordError(err)
	return err
}
