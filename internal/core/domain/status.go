package domain

import "strings"

// FallbackFilesystem is reported when the mount table is the only source.
// The table does not expose the exported filesystem, only the NFS transport.
const FallbackFilesystem = "nfs"

// Loopback export signature of an anylinuxfs mount in the host mount table.
const (
	LoopbackExportMarker = "localhost:/mnt/"
	VolumesMarker        = "/Volumes/"
)

// MountStatus is the reconciled view of the helper's state.
// It is produced on every query and never cached.
type MountStatus struct {
	Mounted          bool    `json:"mounted"`
	Device           *string `json:"device"`
	MountPoint       *string `json:"mount_point"`
	Filesystem       *string `json:"filesystem"`
	VMRunning        bool    `json:"vm_running"`
	RAMMB            *uint32 `json:"ram_mb"`
	VCPUs            *uint32 `json:"vcpus"`
	OrphanedInstance bool    `json:"orphaned_instance"`
}

// RuntimeInfo is the payload returned by the helper's control socket.
type RuntimeInfo struct {
	Device     *string `json:"device,omitempty"`
	MountPoint *string `json:"mount_point,omitempty"`
	Filesystem *string `json:"filesystem,omitempty"`
	VMPID      *uint32 `json:"vm_pid,omitempty"`
	RAMMB      *uint32 `json:"ram_mb,omitempty"`
	VCPUs      *uint32 `json:"vcpus,omitempty"`
}

// Status converts an authoritative runtime report into a MountStatus.
// The second result is false when the report carries no mount point.
func (r RuntimeInfo) Status() (MountStatus, bool) {
	if r.MountPoint == nil {
		return MountStatus{}, false
	}
	return MountStatus{
		Mounted:    true,
		Device:     r.Device,
		MountPoint: r.MountPoint,
		Filesystem: r.Filesystem,
		VMRunning:  r.VMPID != nil,
		RAMMB:      r.RAMMB,
		VCPUs:      r.VCPUs,
	}, true
}

// ParseLoopbackMount returns the status synthesized from the first mount
// table line carrying the loopback export signature. Lines have the shape
// `<source> on <mount point> (<options>)`; both source and mount point may
// contain spaces.
func ParseLoopbackMount(table string) (MountStatus, bool) {
	sep := " on " + VolumesMarker
	for line := range strings.Lines(table) {
		line = strings.TrimRight(line, "\r\n")
		idx := strings.Index(line, sep)
		if idx <= 0 {
			continue
		}
		source := line[:idx]
		if !strings.Contains(source, LoopbackExportMarker) {
			continue
		}
		mountPoint := line[idx+len(" on "):]
		if opts := strings.LastIndex(mountPoint, " ("); opts >= 0 {
			mountPoint = mountPoint[:opts]
		}
		return MountStatus{
			Mounted:    true,
			Device:     Ptr(source),
			MountPoint: Ptr(mountPoint),
			Filesystem: Ptr(FallbackFilesystem),
			VMRunning:  true,
		}, true
	}
	return MountStatus{}, false
}

// HasLoopbackMount reports whether the mount table shows a helper export.
func HasLoopbackMount(table string) bool {
	_, ok := ParseLoopbackMount(table)
	return ok
}

// CLIStatus reports whether the helper binary is installed.
type CLIStatus struct {
	Available bool   `json:"available"`
	Path      string `json:"path"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
