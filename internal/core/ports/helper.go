// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mountbar/internal/core/domain"
)

// HelperExecutor runs the anylinuxfs helper, optionally under sudo.
//
//go:generate mockgen -source=helper.go -destination=mocks/mock_helper.go -package=mocks
type HelperExecutor interface {
	// Execute runs the invocation and returns the helper's stdout.
	//
	// Failures are classified as domain.ErrHelperNotFound,
	// domain.ErrHelperExecutionFailed, domain.ErrIncorrectPassword,
	// domain.ErrAuthenticationCancelled or domain.ErrTimedOut.
	Execute(ctx context.Context, inv domain.Invocation) (string, error)
	// Locate returns the resolved helper path.
	Locate() (string, error)
	// Version returns the helper's version string.
	Version(ctx context.Context) (string, error)
}
