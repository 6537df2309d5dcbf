package control

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/config"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
)

// NodeID is the unique identifier for the control socket client Graft node.
const NodeID graft.ID = "adapter.control"

func init() {
	graft.Register(graft.Node[ports.StatusClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.StatusClient, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(settings.SocketPath), nil
		},
	})
}
