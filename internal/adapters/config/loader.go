// Package config loads mountbar's own settings file.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileSettingsLoader implements ports.SettingsLoader using a YAML file.
type FileSettingsLoader struct {
	logger ports.Logger
}

// NewLoader creates a FileSettingsLoader.
func NewLoader(logger ports.Logger) *FileSettingsLoader {
	return &FileSettingsLoader{logger: logger}
}

// Load reads the settings at path. A missing file yields the defaults.
func (l *FileSettingsLoader) Load(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("no settings file, using defaults", "path", path)
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	return Parse(data)
}

// Parse decodes settings YAML on top of the defaults.
func Parse(data []byte) (domain.Settings, error) {
	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to parse settings file")
	}

	s := domain.DefaultSettings()
	s.HelperPath = file.HelperPath
	s.SocketPath = file.SocketPath
	s.LogPath = file.LogPath
	s.JSONLogs = file.JSONLogs
	s.Trace = file.Trace

	if file.LogLines != nil {
		if *file.LogLines <= 0 {
			return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "log_lines must be positive"), "log_lines", *file.LogLines)
		}
		s.LogLines = *file.LogLines
	}
	if file.TaskWorkers != nil {
		if *file.TaskWorkers <= 0 {
			return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "task_workers must be positive"), "task_workers", *file.TaskWorkers)
		}
		s.TaskWorkers = *file.TaskWorkers
	}

	return s, nil
}
