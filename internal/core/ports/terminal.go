package ports

import "context"

// Terminal attaches the user's terminal to an interactive command.
//
//go:generate mockgen -source=terminal.go -destination=mocks/mock_terminal.go -package=mocks
type Terminal interface {
	// Attach runs path with args in a pseudo-terminal until it exits.
	Attach(ctx context.Context, path string, args ...string) error
}
