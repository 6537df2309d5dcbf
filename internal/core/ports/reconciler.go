package ports

import (
	"context"

	"go.trai.ch/mountbar/internal/core/domain"
)

// MountReconciler derives mount state and drives mutating helper operations
// until their effect is observable.
//
//go:generate mockgen -source=reconciler.go -destination=mocks/mock_reconciler.go -package=mocks
type MountReconciler interface {
	// Status returns a fresh view of the helper's mount and VM state.
	Status(ctx context.Context) domain.MountStatus
	// Mount mounts device under sudo and waits for the export to appear.
	Mount(ctx context.Context, device string, passphrase domain.Secret) (string, error)
	// Unmount unmounts the active export and waits for the VM to exit.
	Unmount(ctx context.Context) (string, error)
	// Eject unmounts if needed and ejects the whole disk holding device.
	Eject(ctx context.Context, device string) (string, error)
	// ForceCleanup kills leftover helper processes and removes the socket.
	ForceCleanup(ctx context.Context) (string, error)
}
