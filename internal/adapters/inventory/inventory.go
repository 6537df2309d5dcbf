// Package inventory lists the disks the helper can see and annotates them with
// live mount state and filesystem support.
package inventory

import (
	"context"
	"strings"
	"sync"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// personalityWorkers bounds concurrent diskutil calls.
const personalityWorkers = 8

// Inventory implements ports.DiskInventory.
type Inventory struct {
	helper ports.HelperExecutor
	prober ports.Prober
	disks  ports.DiskUtility
	logger ports.Logger
}

// New creates an Inventory.
func New(helper ports.HelperExecutor, prober ports.Prober, disks ports.DiskUtility, logger ports.Logger) *Inventory {
	return &Inventory{helper: helper, prober: prober, disks: disks, logger: logger}
}

// List runs `anylinuxfs list -m`, elevated when admin is set, and annotates
// the result.
func (i *Inventory) List(ctx context.Context, admin bool) (domain.DiskList, error) {
	out, err := i.helper.Execute(ctx, domain.Invocation{
		Args:     []string{"list", "-m"},
		Elevated: admin,
	})
	if err != nil {
		return domain.DiskList{}, err
	}

	result := domain.DiskList{
		Disks:         ParseDiskList(out),
		UsedAdminMode: admin,
	}

	i.markSystemMounts(ctx, result.Disks)
	i.judgeSupport(ctx, result.Disks)

	for _, d := range result.Disks {
		for _, p := range d.Partitions {
			if p.Supported && !p.MountedBySystem {
				result.HasSupportedPartitions = true
			}
		}
	}

	return result, nil
}

// markSystemMounts flags partitions the host already mounted itself.
func (i *Inventory) markSystemMounts(ctx context.Context, disks []domain.Disk) {
	entry, err := i.prober.MountTable(ctx)
	if err != nil {
		i.logger.Debug("mount table unavailable", "error", err.Error())
		return
	}
	mounts := ParseSystemMounts(entry.Output)

	for d := range disks {
		for p := range disks[d].Partitions {
			part := &disks[d].Partitions[p]
			id := part.ID()
			for _, m := range mounts {
				if strings.HasSuffix(m.Device, id) || m.Device == part.Device {
					part.MountedBySystem = true
					part.SystemMountPoint = domain.Ptr(m.MountPoint)
					break
				}
			}
		}
	}
}

type personality struct {
	fs        string
	supported bool
	note      *string
}

// judgeSupport decides filesystem support, asking diskutil in parallel for
// every partition whose type the helper could not vouch for.
func (i *Inventory) judgeSupport(ctx context.Context, disks []domain.Disk) {
	var (
		mu      sync.Mutex
		answers = make(map[string]personality)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(personalityWorkers)

	for _, d := range disks {
		for _, p := range d.Partitions {
			if trustedNative(p.Filesystem) {
				continue
			}
			id := p.ID()
			g.Go(func() error {
				fs, err := i.disks.Personality(gctx, id)
				if err != nil {
					i.logger.Debug("diskutil info unavailable", "device", id, "error", err.Error())
					return nil
				}
				supported, note := domain.FilesystemSupport(fs)

				mu.Lock()
				answers[id] = personality{fs: fs, supported: supported, note: note}
				mu.Unlock()
				return nil
			})
		}
	}
	_ = g.Wait()

	for d := range disks {
		for p := range disks[d].Partitions {
			part := &disks[d].Partitions[p]
			supported, note := domain.FilesystemSupport(part.Filesystem)

			if trustedNative(part.Filesystem) {
				part.Supported, part.SupportNote = true, note
				continue
			}

			if ans, ok := answers[part.ID()]; ok {
				if ans.fs != "" && !domain.IsLinuxNativeFS(part.Filesystem) {
					part.Filesystem = ans.fs
				}
				part.Supported, part.SupportNote = ans.supported, ans.note
				continue
			}

			part.Supported, part.SupportNote = supported, note
		}
	}
}

// trustedNative reports whether the helper's own filesystem detection is
// enough to call the partition supported.
func trustedNative(fs string) bool {
	supported, _ := domain.FilesystemSupport(fs)
	return supported && domain.IsLinuxNativeFS(fs)
}
