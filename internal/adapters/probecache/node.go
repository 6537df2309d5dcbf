package probecache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/logger"
	"go.trai.ch/mountbar/internal/adapters/shell"
	"go.trai.ch/mountbar/internal/core/ports"
)

const (
	// CacheNodeID is the unique identifier for the probe cache Graft node.
	CacheNodeID graft.ID = "adapter.probe_cache"
	// ProberNodeID is the unique identifier for the prober Graft node.
	ProberNodeID graft.ID = "adapter.prober"
)

func init() {
	graft.Register(graft.Node[ports.ProbeCache]{
		ID:        CacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProbeCache, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})

	graft.Register(graft.Node[ports.Prober]{
		ID:        ProberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{CacheNodeID, shell.RunnerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Prober, error) {
			cache, err := graft.Dep[ports.ProbeCache](ctx)
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
			return NewProber(cache, runner, log), nil
		},
	})
}
