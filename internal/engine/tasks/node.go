package tasks

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mountbar/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
)

// NodeID is the unique identifier for the task runner Graft node.
const NodeID graft.ID = "engine.tasks"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(settings.TaskWorkers, log), nil
		},
	})
}
