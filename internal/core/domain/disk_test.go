package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mountbar/internal/core/domain"
)

func TestFilesystemSupport(t *testing.T) {
	tests := []struct {
		fs        string
		supported bool
		note      string
	}{
		{fs: "ext4", supported: true},
		{fs: "Linux btrfs", supported: true},
		{fs: "MS-DOS FAT32", supported: true},
		{fs: "ExFAT", supported: true},
		{fs: "NTFS", supported: true, note: "NTFS via ntfs-3g"},
		{fs: "MS-DOS", supported: false, note: "Unknown FAT variant - may not mount"},
		{fs: "APFS", supported: false, note: "APFS not supported by Linux"},
		{fs: "Apple HFS", supported: false, note: "HFS/HFS+ has limited Linux support"},
		{fs: "Mac OS Extended (Journaled)", supported: false, note: "HFS/HFS+ has limited Linux support"},
		{fs: "", supported: false, note: "Unknown filesystem"},
		{fs: "Microsoft Basic Data", supported: true, note: "Unverified: Microsoft Basic Data"},
	}

	for _, tt := range tests {
		t.Run(tt.fs, func(t *testing.T) {
			supported, note := domain.FilesystemSupport(tt.fs)
			assert.Equal(t, tt.supported, supported)
			if tt.note == "" {
				assert.Nil(t, note)
				return
			}
			require.NotNil(t, note)
			assert.Equal(t, tt.note, *note)
		})
	}
}

func TestIsLinuxNativeFS(t *testing.T) {
	for _, fs := range []string{"ext2", "EXT4", "xfs", "f2fs", "reiserfs", "zfs", "ntfs", "exfat"} {
		assert.True(t, domain.IsLinuxNativeFS(fs), fs)
	}
	for _, fs := range []string{"apfs", "fat32", "Microsoft Basic Data", ""} {
		assert.False(t, domain.IsLinuxNativeFS(fs), fs)
	}
}

func TestWholeDisk(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "/dev/disk6s1", want: "disk6"},
		{in: "disk12s3", want: "disk12"},
		{in: "/dev/disk4", want: "disk4"},
		{in: "/dev/sda1", wantErr: true},
		{in: "disk", wantErr: true},
		{in: "/dev/diskX", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.WholeDisk(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidDevice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuntimeInfo_Status(t *testing.T) {
	_, ok := domain.RuntimeInfo{Device: domain.Ptr("/dev/disk6s1")}.Status()
	assert.False(t, ok, "a report without mount point is not authoritative")

	status, ok := domain.RuntimeInfo{
		Device:     domain.Ptr("/dev/disk6s1"),
		MountPoint: domain.Ptr("/Volumes/data"),
		Filesystem: domain.Ptr("ext4"),
		RAMMB:      domain.Ptr(uint32(2048)),
	}.Status()
	require.True(t, ok)
	assert.True(t, status.Mounted)
	assert.False(t, status.VMRunning, "no vm_pid means no VM")
	assert.Equal(t, "/Volumes/data", *status.MountPoint)
	assert.Equal(t, uint32(2048), *status.RAMMB)
	assert.False(t, status.OrphanedInstance)
}
