package inventory

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/diskutil"
	"go.trai.ch/mountbar/internal/adapters/helper"
	"go.trai.ch/mountbar/internal/adapters/logger"
	"go.trai.ch/mountbar/internal/adapters/probecache"
	"go.trai.ch/mountbar/internal/core/ports"
)

// NodeID is the unique identifier for the disk inventory Graft node.
const NodeID graft.ID = "adapter.inventory"

func init() {
	graft.Register(graft.Node[ports.DiskInventory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{helper.NodeID, probecache.ProberNodeID, diskutil.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DiskInventory, error) {
			exec, err := graft.Dep[ports.HelperExecutor](ctx)
			if err != nil {
				return nil, err
			}
			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}
			disks, err := graft.Dep[ports.DiskUtility](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(exec, prober, disks, log), nil
		},
	})
}
