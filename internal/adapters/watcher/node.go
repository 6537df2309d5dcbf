package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/logger"
	"go.trai.ch/mountbar/internal/core/ports"
)

const (
	// VolumeWatcherNodeID is the unique identifier for the volume watcher Graft node.
	VolumeWatcherNodeID graft.ID = "adapter.volume_watcher"
	// LogReaderNodeID is the unique identifier for the log reader Graft node.
	LogReaderNodeID graft.ID = "adapter.log_reader"
)

func init() {
	graft.Register(graft.Node[ports.VolumeWatcher]{
		ID:        VolumeWatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.VolumeWatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return DefaultVolumeWatcher(log), nil
		},
	})

	graft.Register(graft.Node[ports.LogReader]{
		ID:        LogReaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LogReader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLogReader(log), nil
		},
	})
}
