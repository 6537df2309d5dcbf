// Package vmconfig reads and updates the helper's micro-VM configuration.
package vmconfig

import (
	"context"
	"strconv"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
)

// Store implements ports.VMConfigStore through the helper's `config` command.
type Store struct {
	helper ports.HelperExecutor
}

// NewStore creates a Store.
func NewStore(helper ports.HelperExecutor) *Store {
	return &Store{helper: helper}
}

// Get runs `anylinuxfs config` and parses the effective configuration.
func (s *Store) Get(ctx context.Context) (domain.VMConfig, error) {
	out, err := s.helper.Execute(ctx, domain.Invocation{Args: []string{"config"}})
	if err != nil {
		return domain.VMConfig{}, err
	}
	return Parse(out)
}

// Update validates cfg, then applies RAM, vCPUs and log level in that order.
// Nothing runs when validation fails.
func (s *Store) Update(ctx context.Context, cfg domain.VMConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var steps [][]string
	if cfg.RAMMB != nil {
		steps = append(steps, []string{"config", "-r", strconv.FormatUint(uint64(*cfg.RAMMB), 10)})
	}
	if cfg.VCPUs != nil {
		steps = append(steps, []string{"config", "-n", strconv.FormatUint(uint64(*cfg.VCPUs), 10)})
	}
	if cfg.LogLevel != nil {
		steps = append(steps, []string{"config", "-l", *cfg.LogLevel})
	}

	for _, args := range steps {
		if _, err := s.helper.Execute(ctx, domain.Invocation{Args: args}); err != nil {
			return err
		}
	}
	return nil
}
