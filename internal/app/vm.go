package app

import (
	"context"

	"go.trai.ch/mountbar/internal/core/domain"
)

// VMConfig returns the helper's effective VM configuration.
func (a *App) VMConfig(ctx context.Context) (domain.VMConfig, error) {
	return traced(ctx, a, "config.get", a.vmConfig.Get)
}

// UpdateVMConfig validates and applies every set field of cfg.
func (a *App) UpdateVMConfig(ctx context.Context, cfg domain.VMConfig) error {
	_, err := traced(ctx, a, "config.set", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.vmConfig.Update(ctx, cfg)
	})
	return err
}

// Images lists the guest images known to the helper.
func (a *App) Images(ctx context.Context) ([]domain.VMImage, error) {
	return traced(ctx, a, "images.list", func(ctx context.Context) ([]domain.VMImage, error) {
		out, err := a.helper.Execute(ctx, domain.Invocation{Args: []string{"image", "list"}})
		if err != nil {
			return nil, err
		}
		return domain.ParseImageList(out), nil
	})
}

// InstallImage downloads a guest image.
func (a *App) InstallImage(ctx context.Context, name string) error {
	return a.helperRun(ctx, "images.install", "image", "install", name)
}

// UninstallImage removes a guest image.
func (a *App) UninstallImage(ctx context.Context, name string) error {
	return a.helperRun(ctx, "images.uninstall", "image", "uninstall", name)
}

// Packages lists the packages installed in the guest.
func (a *App) Packages(ctx context.Context) ([]string, error) {
	return traced(ctx, a, "packages.list", func(ctx context.Context) ([]string, error) {
		out, err := a.helper.Execute(ctx, domain.Invocation{Args: []string{"apk", "info"}})
		if err != nil {
			return nil, err
		}
		return domain.ParsePackageList(out), nil
	})
}

// AddPackages installs packages in the guest.
func (a *App) AddPackages(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return domain.ErrNoPackages
	}
	return a.helperRun(ctx, "packages.add", append([]string{"apk", "add"}, pkgs...)...)
}

// RemovePackages removes packages from the guest.
func (a *App) RemovePackages(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return domain.ErrNoPackages
	}
	return a.helperRun(ctx, "packages.remove", append([]string{"apk", "del"}, pkgs...)...)
}

func (a *App) helperRun(ctx context.Context, name string, args ...string) error {
	_, err := traced(ctx, a, name, func(ctx context.Context) (string, error) {
		return a.helper.Execute(ctx, domain.Invocation{Args: args})
	}, "args", args)
	return err
}
