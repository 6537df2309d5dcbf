package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Partition is one partition from the helper's disk listing.
type Partition struct {
	Device           string  `json:"device"`
	Size             string  `json:"size"`
	Filesystem       string  `json:"filesystem"`
	Label            *string `json:"label"`
	Encrypted        bool    `json:"encrypted"`
	MountedBySystem  bool    `json:"mounted_by_system"`
	SystemMountPoint *string `json:"system_mount_point"`
	Supported        bool    `json:"supported"`
	SupportNote      *string `json:"support_note"`
}

// ID returns the device identifier without the /dev/ prefix.
func (p Partition) ID() string {
	return strings.TrimPrefix(p.Device, "/dev/")
}

// Disk is a physical or virtual disk with its partitions.
type Disk struct {
	Device     string      `json:"device"`
	Size       string      `json:"size"`
	Model      *string     `json:"model"`
	Partitions []Partition `json:"partitions"`
}

// DiskList is the annotated result of a disk listing.
type DiskList struct {
	Disks                  []Disk `json:"disks"`
	HasSupportedPartitions bool   `json:"has_supported_partitions"`
	UsedAdminMode          bool   `json:"used_admin_mode"`
}

// SystemMount is a device the host OS itself has mounted.
type SystemMount struct {
	Device     string
	MountPoint string
}

var linuxNative = []string{"ext4", "ext3", "ext2", "btrfs", "xfs", "f2fs", "reiserfs"}

// IsLinuxNativeFS reports whether the helper's own detection of fs can be trusted
// without asking diskutil.
func IsLinuxNativeFS(fs string) bool {
	lower := strings.ToLower(fs)
	return containsAny(lower, linuxNative...) || containsAny(lower, "zfs", "ntfs", "exfat")
}

// FilesystemSupport judges whether anylinuxfs can mount fs.
// The note is nil when support needs no qualification.
func FilesystemSupport(fs string) (bool, *string) {
	lower := strings.ToLower(fs)

	switch {
	case containsAny(lower, linuxNative...):
		return true, nil
	case containsAny(lower, "fat32", "fat16", "exfat"):
		return true, nil
	case strings.Contains(lower, "ntfs"):
		return true, Ptr("NTFS via ntfs-3g")
	case lower == "ms-dos":
		return false, Ptr("Unknown FAT variant - may not mount")
	case strings.Contains(lower, "apfs"):
		return false, Ptr("APFS not supported by Linux")
	case strings.Contains(lower, "hfs"), strings.Contains(lower, "mac os"):
		return false, Ptr("HFS/HFS+ has limited Linux support")
	case fs == "":
		return false, Ptr("Unknown filesystem")
	default:
		return true, Ptr(fmt.Sprintf("Unverified: %s", fs))
	}
}

// WholeDisk maps a partition or disk device to its whole-disk identifier,
// e.g. /dev/disk6s1 to disk6.
func WholeDisk(device string) (string, error) {
	id := strings.TrimPrefix(device, "/dev/")
	if !strings.HasPrefix(id, "disk") || len(id) == len("disk") {
		return "", zerr.With(zerr.Wrap(ErrInvalidDevice, "not a disk device"), "device", device)
	}
	end := len("disk")
	for end < len(id) && id[end] >= '0' && id[end] <= '9' {
		end++
	}
	if end == len("disk") {
		return "", zerr.With(zerr.Wrap(ErrInvalidDevice, "not a disk device"), "device", device)
	}
	return id[:end], nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
