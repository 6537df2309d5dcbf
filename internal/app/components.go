package app

import (
	"go.trai.ch/mountbar/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings domain.Settings
	// Detector picks the output format when --output is auto. Nil leaves
	// the CLI on text unless JSON is requested.
	Detector *detector.Detector
}
