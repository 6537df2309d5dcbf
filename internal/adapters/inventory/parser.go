package inventory

import (
	"strconv"
	"strings"

	"go.trai.ch/mountbar/internal/core/domain"
)

// multiWordTypes are partition types that span several words in the listing.
var multiWordTypes = []string{
	"Microsoft Basic Data",
	"Microsoft Reserved",
	"EFI System",
	"Apple APFS",
	"Apple HFS",
	"Linux Filesystem",
	"GUID_partition_scheme",
}

// ParseDiskList parses the output of `anylinuxfs list -m`.
//
// A disk header starts with /dev/ and may carry a parenthesised model.
// Partition lines look like "1: Microsoft Basic Data NO NAME 47.2 GB disk6s1".
// Partition 0 is the partition scheme and only contributes the disk size.
// Disks without partitions are dropped.
func ParseDiskList(output string) []domain.Disk {
	var (
		disks   []domain.Disk
		current *domain.Disk
	)

	flush := func() {
		if current != nil && len(current.Partitions) > 0 {
			disks = append(disks, *current)
		}
		current = nil
	}

	for line := range strings.Lines(output) {
		line = strings.TrimRight(line, "\r\n")

		if strings.HasPrefix(line, "/dev/") {
			flush()
			current = parseDiskHeader(line)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#:") || current == nil {
			continue
		}

		numPart, rest, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}
		num, err := strconv.ParseUint(numPart, 10, 32)
		if err != nil {
			continue
		}

		partition, ok := parsePartitionLine(strings.TrimSpace(rest))
		if !ok {
			continue
		}
		if num == 0 {
			current.Size = partition.Size
		} else {
			current.Partitions = append(current.Partitions, partition)
		}
	}
	flush()

	return disks
}

func parseDiskHeader(line string) *domain.Disk {
	fields := strings.Fields(line)
	disk := &domain.Disk{Device: fields[0]}

	start := strings.IndexByte(line, '(')
	end := strings.IndexByte(line, ')')
	if start >= 0 && end > start {
		disk.Model = domain.Ptr(line[start+1 : end])
	}
	return disk
}

func parsePartitionLine(line string) (domain.Partition, bool) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return domain.Partition{}, false
	}

	n := len(parts)
	identifier := parts[n-1]
	size := strings.TrimLeft(parts[n-3], "*") + " " + parts[n-2]
	filesystem, label := parseTypeAndName(parts[:n-3])

	lowerFS := strings.ToLower(filesystem)
	encrypted := strings.Contains(lowerFS, "luks") ||
		strings.Contains(lowerFS, "bitlocker") ||
		strings.Contains(strings.ToLower(line), "encrypted")

	return domain.Partition{
		Device:     "/dev/" + identifier,
		Size:       size,
		Filesystem: filesystem,
		Label:      label,
		Encrypted:  encrypted,
		Supported:  true,
	}, true
}

func parseTypeAndName(parts []string) (string, *string) {
	if len(parts) == 0 {
		return "unknown", nil
	}

	joined := strings.Join(parts, " ")
	for _, typeName := range multiWordTypes {
		if rest, ok := strings.CutPrefix(joined, typeName); ok {
			return typeName, nonEmpty(strings.TrimSpace(rest))
		}
	}

	return parts[0], nonEmpty(strings.Join(parts[1:], " "))
}

// ParseSystemMounts extracts "<device> on <mount point> (<options>)" lines
// from the output of `mount`.
func ParseSystemMounts(table string) []domain.SystemMount {
	var mounts []domain.SystemMount
	for line := range strings.Lines(table) {
		device, rest, found := strings.Cut(strings.TrimRight(line, "\r\n"), " on ")
		if !found {
			continue
		}
		idx := strings.Index(rest, " (")
		if idx < 0 {
			continue
		}
		mounts = append(mounts, domain.SystemMount{Device: device, MountPoint: rest[:idx]})
	}
	return mounts
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
