package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/logger"
	"go.trai.ch/mountbar/internal/core/ports"
)

const (
	// RunnerNodeID is the unique identifier for the command runner Graft node.
	RunnerNodeID graft.ID = "adapter.runner"
	// TerminalNodeID is the unique identifier for the PTY terminal Graft node.
	TerminalNodeID graft.ID = "adapter.terminal"
)

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})

	graft.Register(graft.Node[ports.Terminal]{
		ID:        TerminalNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Terminal, error) {
			return NewSession(), nil
		},
	})
}
