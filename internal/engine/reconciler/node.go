package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/control"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mountbar/internal/adapters/diskutil"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mountbar/internal/adapters/helper"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mountbar/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mountbar/internal/adapters/probecache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mountbar/internal/adapters/shell"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mountbar/internal/core/ports"
)

// NodeID is the unique identifier for the reconciler Graft node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[ports.MountReconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			helper.NodeID,
			probecache.ProberNodeID,
			control.NodeID,
			diskutil.NodeID,
			shell.RunnerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.MountReconciler, error) {
			exec, err := graft.Dep[ports.HelperExecutor](ctx)
			if err != nil {
				return nil, err
			}

			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}

			client, err := graft.Dep[ports.StatusClient](ctx)
			if err != nil {
				return nil, err
			}

			disks, err := graft.Dep[ports.DiskUtility](ctx)
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

			return New(exec, prober, client, disks, runner, log), nil
		},
	})
}
