package ports

import "go.trai.ch/mountbar/internal/core/domain"

// SettingsLoader defines the interface for loading mountbar's settings file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings at path. A missing file yields the defaults.
	Load(path string) (domain.Settings, error)
}
