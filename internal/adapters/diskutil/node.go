package diskutil

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/shell"
	"go.trai.ch/mountbar/internal/core/ports"
)

// NodeID is the unique identifier for the diskutil Graft node.
const NodeID graft.ID = "adapter.diskutil"

func init() {
	graft.Register(graft.Node[ports.DiskUtility]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.RunnerNodeID},
		Run: func(ctx context.Context) (ports.DiskUtility, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner), nil
		},
	})
}
