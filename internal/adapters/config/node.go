package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/internal/adapters/logger"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the settings loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the loaded settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (domain.Settings, error) {
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return domain.Settings{}, err
			}
			return loader.Load(domain.DefaultSettingsPath())
		},
	})
}
