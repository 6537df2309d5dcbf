package helper

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/config"
	"go.trai.ch/mountbar/internal/adapters/logger"
	"go.trai.ch/mountbar/internal/adapters/shell"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
)

// NodeID is the unique identifier for the helper executor Graft node.
const NodeID graft.ID = "adapter.helper"

func init() {
	graft.Register(graft.Node[ports.HelperExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, shell.RunnerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.HelperExecutor, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(Config{HelperPath: settings.HelperPath}, runner, log), nil
		},
	})
}
