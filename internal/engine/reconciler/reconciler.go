// Package reconciler derives the helper's mount state and drives the settle
// loops that follow mount, unmount and eject.
package reconciler

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MountReconciler = (*Reconciler)(nil)

// MountedMessage is reported when the mount appeared but the helper run failed.
const MountedMessage = "Mounted successfully"

// Reconciler answers "what is mounted" from the control socket, the mount
// table and the process table, in that order.
type Reconciler struct {
	helper  ports.HelperExecutor
	prober  ports.Prober
	control ports.StatusClient
	disks   ports.DiskUtility
	runner  ports.CommandRunner
	logger  ports.Logger
}

// New creates a new Reconciler.
func New(
	helper ports.HelperExecutor,
	prober ports.Prober,
	control ports.StatusClient,
	disks ports.DiskUtility,
	runner ports.CommandRunner,
	logger ports.Logger,
) *Reconciler {
	return &Reconciler{
		helper:  helper,
		prober:  prober,
		control: control,
		disks:   disks,
		runner:  runner,
		logger:  logger,
	}
}

// Status returns a fresh MountStatus. Unavailable sources fall through silently.
func (r *Reconciler) Status(ctx context.Context) domain.MountStatus {
	info, err := r.control.Query(ctx)
	if err == nil {
		if st, ok := info.Status(); ok {
			return st
		}
	} else {
		r.logger.Debug("control socket unavailable", "socket", r.control.SocketPath(), "error", err.Error())
	}

	if entry, err := r.prober.MountTable(ctx); err == nil {
		if st, ok := domain.ParseLoopbackMount(entry.Output); ok {
			return st
		}
	} else {
		r.logger.Debug("mount table unavailable", "error", err.Error())
	}

	if r.prober.HelperRunning(ctx) {
		return domain.MountStatus{VMRunning: true, OrphanedInstance: true}
	}
	return domain.MountStatus{}
}

// Mount runs the helper's mount under sudo and waits for the loopback export
// to appear in the mount table.
func (r *Reconciler) Mount(ctx context.Context, device string, passphrase domain.Secret) (string, error) {
	out, runErr := r.helper.Execute(ctx, domain.Invocation{
		Args:       []string{"mount", device},
		Elevated:   true,
		Passphrase: passphrase,
		Timeout:    domain.MountTimeout,
	})
	if runErr != nil && (domain.IsElevationFailure(runErr) || errors.Is(runErr, domain.ErrHelperNotFound)) {
		return "", runErr
	}

	r.prober.InvalidateMounts()
	mounted, err := settle(ctx, domain.MountSettle, func() bool {
		r.prober.InvalidateMounts()
		entry, err := r.prober.MountTable(ctx)
		return err == nil && domain.HasLoopbackMount(entry.Output)
	})
	if err != nil {
		return "", err
	}

	if mounted {
		if runErr != nil {
			r.logger.Debug("mount observed despite helper failure", "error", runErr.Error())
			return MountedMessage, nil
		}
		return out, nil
	}

	if runErr != nil {
		return "", runErr
	}
	if strings.Contains(out, "wrong fs type") || strings.Contains(out, "mount:") {
		return "", zerr.With(domain.MountVerification("Mount failed: "+out), "device", device)
	}
	return "", zerr.With(domain.MountVerification("Mount failed: filesystem not mounted after timeout"), "device", device)
}

// Unmount runs the helper's unmount and waits for the VM process to exit.
// The whole probe cache is dropped afterwards.
func (r *Reconciler) Unmount(ctx context.Context) (string, error) {
	out, err := r.helper.Execute(ctx, domain.Invocation{Args: []string{"unmount"}})
	if err != nil {
		r.prober.InvalidateAll()
		return "", err
	}

	gone, err := settle(ctx, domain.MountSettle, func() bool {
		r.prober.InvalidateProcesses()
		return !r.prober.HelperRunning(ctx)
	})
	r.prober.InvalidateAll()
	if err != nil {
		return "", err
	}
	if !gone {
		r.logger.Warn("helper VM still running after unmount")
	}
	return out, nil
}

// Eject unmounts the helper export if one is active, confirms it is gone,
// then ejects the whole disk that holds device.
func (r *Reconciler) Eject(ctx context.Context, device string) (string, error) {
	disk, err := domain.WholeDisk(device)
	if err != nil {
		return "", err
	}

	if r.Status(ctx).Mounted {
		if _, err := r.Unmount(ctx); err != nil {
			return "", zerr.Wrap(err, "failed to unmount before eject")
		}
		detached, err := settle(ctx, domain.EjectSettle, func() bool {
			r.prober.InvalidateMounts()
			entry, err := r.prober.MountTable(ctx)
			return err == nil && !domain.HasLoopbackMount(entry.Output)
		})
		if err != nil {
			return "", err
		}
		if !detached {
			r.logger.Warn("volume still mounted, ejecting anyway", "disk", disk)
		}
	}

	out, err := r.disks.Eject(ctx, disk)
	r.prober.InvalidateAll()
	if err != nil {
		return "", err
	}
	return out, nil
}

// ForceCleanup kills leftover helper and VM processes and removes the
// control socket.
func (r *Reconciler) ForceCleanup(ctx context.Context) (string, error) {
	var cleaned []string

	if r.kill(ctx, "krun") {
		cleaned = append(cleaned, "krun")
	}
	if r.kill(ctx, "-f", domain.HelperName) {
		cleaned = append(cleaned, domain.HelperName)
	}

	socket := r.control.SocketPath()
	switch err := os.Remove(socket); {
	case err == nil:
		cleaned = append(cleaned, "socket")
	case !errors.Is(err, fs.ErrNotExist):
		r.logger.Warn("failed to remove control socket", "socket", socket, "error", err.Error())
	}

	r.prober.InvalidateAll()

	if len(cleaned) == 0 {
		return "No processes found to clean up", nil
	}
	return "Cleaned up: " + strings.Join(cleaned, ", "), nil
}

func (r *Reconciler) kill(ctx context.Context, args ...string) bool {
	res, err := r.runner.Run(ctx, "pkill", append([]string{"-9"}, args...)...)
	if err != nil {
		r.logger.Debug("pkill failed", "args", strings.Join(args, " "), "error", err.Error())
		return false
	}
	return res.Success()
}

// settle checks, then sleeps, up to budget.Attempts times. It reports
// whether check ever succeeded.
func settle(ctx context.Context, budget domain.SettleBudget, check func() bool) (bool, error) {
	for attempt := range budget.Attempts {
		if check() {
			return true, nil
		}
		if attempt == budget.Attempts-1 {
			break
		}

		timer := time.NewTimer(budget.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false, zerr.Wrap(ctx.Err(), "settle interrupted")
		case <-timer.C:
		}
	}
	return false, nil
}
