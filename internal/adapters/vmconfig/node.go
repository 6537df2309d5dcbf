package vmconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/helper"
	"go.trai.ch/mountbar/internal/core/ports"
)

// NodeID is the unique identifier for the VM config store Graft node.
const NodeID graft.ID = "adapter.vmconfig"

func init() {
	graft.Register(graft.Node[ports.VMConfigStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{helper.NodeID},
		Run: func(ctx context.Context) (ports.VMConfigStore, error) {
			exec, err := graft.Dep[ports.HelperExecutor](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(exec), nil
		},
	})
}
