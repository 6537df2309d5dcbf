package ports

import (
	"context"

	"go.trai.ch/mountbar/internal/core/domain"
)

// VMConfigStore reads and updates the helper's micro-VM configuration.
//
//go:generate mockgen -source=vmconfig.go -destination=mocks/mock_vmconfig.go -package=mocks
type VMConfigStore interface {
	// Get returns the effective configuration, defaults included.
	Get(ctx context.Context) (domain.VMConfig, error)
	// Update validates and applies every set field.
	Update(ctx context.Context, cfg domain.VMConfig) error
}
