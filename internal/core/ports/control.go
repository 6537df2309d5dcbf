package ports

import (
	"context"

	"go.trai.ch/mountbar/internal/core/domain"
)

// StatusClient queries the helper's control socket.
//
//go:generate mockgen -source=control.go -destination=mocks/mock_control.go -package=mocks
type StatusClient interface {
	// Query sends a status request and decodes the reply.
	Query(ctx context.Context) (domain.RuntimeInfo, error)
	// SocketPath returns the socket the client talks to.
	SocketPath() string
}
