// Package actions manages the helper's custom mount actions stored in TOML.
package actions

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/zerr"
)

const sectionKey = "custom_actions"

// actionConfig is one [custom_actions.<name>] table.
type actionConfig struct {
	Description        string   `toml:"description"`
	BeforeMount        string   `toml:"before_mount"`
	AfterMount         string   `toml:"after_mount"`
	BeforeUnmount      string   `toml:"before_unmount"`
	Environment        []string `toml:"environment"`
	CaptureEnvironment []string `toml:"capture_environment"`
	OverrideNFSExport  string   `toml:"override_nfs_export"`
	RequiredOS         string   `toml:"required_os"`
}

type configFile struct {
	CustomActions map[string]actionConfig `toml:"custom_actions"`
}

// FileStore implements ports.ActionStore. User actions live in a writable
// TOML file; upstream actions are read from a second, read-only file.
type FileStore struct {
	userPath     string
	upstreamPath string
	logger       ports.Logger
}

// NewFileStore creates a FileStore.
func NewFileStore(userPath, upstreamPath string, logger ports.Logger) *FileStore {
	return &FileStore{userPath: userPath, upstreamPath: upstreamPath, logger: logger}
}

// List returns upstream and user actions sorted by name.
// Missing or unreadable files contribute nothing.
func (s *FileStore) List() ([]domain.CustomAction, error) {
	all := append(s.readActions(s.upstreamPath, true), s.readActions(s.userPath, false)...)
	slices.SortStableFunc(all, func(a, b domain.CustomAction) int {
		return strings.Compare(a.Name, b.Name)
	})
	return all, nil
}

// Create adds a user action.
func (s *FileStore) Create(action domain.CustomAction) error {
	if action.Name == "" {
		return zerr.Wrap(domain.ErrInvalidAction, "action name is required")
	}

	if err := os.MkdirAll(filepath.Dir(s.userPath), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create config directory")
	}

	doc, err := s.readDocument(true)
	if err != nil {
		return err
	}

	section, err := actionsSection(doc, true)
	if err != nil {
		return err
	}
	if _, exists := section[action.Name]; exists {
		return zerr.With(zerr.Wrap(domain.ErrActionExists, "action '"+action.Name+"' already exists"), "action", action.Name)
	}

	section[action.Name] = toTable(action)
	return s.writeDocument(doc)
}

// Update replaces a user action.
func (s *FileStore) Update(action domain.CustomAction) error {
	doc, err := s.readDocument(false)
	if err != nil {
		return err
	}

	section, err := actionsSection(doc, false)
	if err != nil || section == nil {
		return notFound(action.Name)
	}
	if _, exists := section[action.Name]; !exists {
		return notFound(action.Name)
	}

	section[action.Name] = toTable(action)
	return s.writeDocument(doc)
}

// Delete removes a user action.
func (s *FileStore) Delete(name string) error {
	if _, err := os.Stat(s.userPath); errors.Is(err, fs.ErrNotExist) {
		return notFound(name)
	}

	doc, err := s.readDocument(false)
	if err != nil {
		return err
	}

	section, err := actionsSection(doc, false)
	if err != nil || section == nil {
		return notFound(name)
	}
	if _, exists := section[name]; !exists {
		return notFound(name)
	}

	delete(section, name)
	return s.writeDocument(doc)
}

func (s *FileStore) readActions(path string, upstream bool) []domain.CustomAction {
	data, err := os.ReadFile(path) //nolint:gosec // fixed helper config locations
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("skipping unreadable actions file", "path", path, "error", err.Error())
		}
		return nil
	}

	var file configFile
	if err := toml.Unmarshal(data, &file); err != nil {
		s.logger.Warn("skipping malformed actions file", "path", path, "error", err.Error())
		return nil
	}

	out := make([]domain.CustomAction, 0, len(file.CustomActions))
	for name, cfg := range file.CustomActions {
		out = append(out, domain.CustomAction{
			Name:               name,
			Description:        cfg.Description,
			BeforeMount:        cfg.BeforeMount,
			AfterMount:         cfg.AfterMount,
			BeforeUnmount:      cfg.BeforeUnmount,
			Environment:        orEmpty(cfg.Environment),
			CaptureEnvironment: orEmpty(cfg.CaptureEnvironment),
			OverrideNFSExport:  cfg.OverrideNFSExport,
			RequiredOS:         cfg.RequiredOS,
			IsUpstream:         upstream,
		})
	}
	return out
}

// readDocument loads the user file as a generic table so unrelated sections
// survive a rewrite. A missing file is empty when allowMissing is set.
func (s *FileStore) readDocument(allowMissing bool) (map[string]any, error) {
	data, err := os.ReadFile(s.userPath)
	if errors.Is(err, fs.ErrNotExist) && allowMissing {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config"), "path", s.userPath)
	}

	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config"), "path", s.userPath)
	}
	return doc, nil
}

func (s *FileStore) writeDocument(doc map[string]any) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return zerr.Wrap(err, "failed to serialize config")
	}

	tmp := s.userPath + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write config"), "path", s.userPath)
	}
	if err := os.Rename(tmp, s.userPath); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, "failed to write config"), "path", s.userPath)
	}
	return nil
}

// actionsSection returns the custom_actions table, creating it when asked.
func actionsSection(doc map[string]any, create bool) (map[string]any, error) {
	raw, ok := doc[sectionKey]
	if !ok {
		if !create {
			return nil, nil
		}
		section := map[string]any{}
		doc[sectionKey] = section
		return section, nil
	}

	section, ok := raw.(map[string]any)
	if !ok {
		return nil, zerr.Wrap(domain.ErrInvalidAction, "invalid config format")
	}
	return section, nil
}

func toTable(a domain.CustomAction) map[string]any {
	return map[string]any{
		"description":         a.Description,
		"before_mount":        a.BeforeMount,
		"after_mount":         a.AfterMount,
		"before_unmount":      a.BeforeUnmount,
		"environment":         orEmpty(a.Environment),
		"capture_environment": orEmpty(a.CaptureEnvironment),
		"override_nfs_export": a.OverrideNFSExport,
		"required_os":         a.RequiredOS,
	}
}

func notFound(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrActionNotFound, "action '"+name+"' not found"), "action", name)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
