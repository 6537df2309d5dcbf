package ports

import (
	"context"

	"go.trai.ch/mountbar/internal/core/domain"
)

//go:generate mockgen -source=disk.go -destination=mocks/mock_disk.go -package=mocks

// DiskUtility wraps the host's native disk tool.
type DiskUtility interface {
	// Personality returns the "File System Personality" of a device identifier.
	Personality(ctx context.Context, id string) (string, error)
	// Eject ejects a whole disk and returns the tool's output.
	Eject(ctx context.Context, disk string) (string, error)
}

// DiskInventory lists disks the helper can see.
type DiskInventory interface {
	// List runs the helper's listing and annotates it with live state.
	List(ctx context.Context, admin bool) (domain.DiskList, error)
}
