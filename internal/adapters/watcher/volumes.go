package watcher

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VolumeWatcher = (*VolumeWatcher)(nil)

// VolumeWatcher watches the volumes directory for attach and detach events.
type VolumeWatcher struct {
	dir    string
	settle time.Duration
	logger ports.Logger
}

// NewVolumeWatcher creates a watcher over dir that reports once per settled burst.
func NewVolumeWatcher(dir string, settle time.Duration, logger ports.Logger) *VolumeWatcher {
	return &VolumeWatcher{dir: dir, settle: settle, logger: logger}
}

// Watch blocks until ctx is done, calling onChange after each burst of
// create or remove events has been quiet for the settle window.
func (w *VolumeWatcher) Watch(ctx context.Context, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create volume watcher")
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(w.dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch volumes directory"), "dir", w.dir)
	}

	d := NewDebouncer(w.settle, onChange)
	defer d.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !volumeEvent(event) {
				continue
			}
			w.logger.Debug("volume change", "path", event.Name, "op", event.Op.String())
			d.Trigger()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("volume watcher error", "error", err.Error())
		}
	}
}

func volumeEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// DefaultVolumeWatcher watches domain.VolumesDir with domain.VolumesSettle.
func DefaultVolumeWatcher(logger ports.Logger) *VolumeWatcher {
	return NewVolumeWatcher(domain.VolumesDir, domain.VolumesSettle, logger)
}
