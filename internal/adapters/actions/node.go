package actions

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/logger"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
)

// NodeID is the unique identifier for the custom action store Graft node.
const NodeID graft.ID = "adapter.actions"

func init() {
	graft.Register(graft.Node[ports.ActionStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ActionStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileStore(domain.DefaultUserActionsPath(), domain.UpstreamActionsPath, log), nil
		},
	})
}
