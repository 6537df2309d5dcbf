package probecache

import (
	"context"
	"time"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/zerr"
)

// Host commands behind each probe.
const (
	mountCommand = "mount"
	pgrepCommand = "pgrep"
	vmProcess    = "krun"
	vmPattern    = "libkrun"
)

// Prober answers mount table and process questions through a ports.ProbeCache.
// The cache lock is never held while a probe command runs, so concurrent
// misses on one key each spawn their own command and the last write wins.
type Prober struct {
	cache  ports.ProbeCache
	runner ports.CommandRunner
	logger ports.Logger
}

// NewProber creates a Prober.
func NewProber(cache ports.ProbeCache, runner ports.CommandRunner, logger ports.Logger) *Prober {
	return &Prober{cache: cache, runner: runner, logger: logger}
}

// MountTable returns the output of `mount`.
func (p *Prober) MountTable(ctx context.Context) (domain.ProbeEntry, error) {
	return p.probe(ctx, domain.ProbeActiveMounts, domain.MountTableMaxAge, mountCommand)
}

// HelperRunning reports whether the helper's VM process exists, matching
// either the exact process name or the library pattern. Probe errors count
// as not running.
func (p *Prober) HelperRunning(ctx context.Context) bool {
	exact, err := p.probe(ctx, domain.ProbeHelperProcessExact, domain.ProcessProbeMaxAge, pgrepCommand, "-x", vmProcess)
	if err != nil {
		p.logger.Debug("process probe unavailable", "probe", string(domain.ProbeHelperProcessExact), "error", err.Error())
	} else if exact.Running() {
		return true
	}

	pattern, err := p.probe(ctx, domain.ProbeHelperProcessPattern, domain.ProcessProbeMaxAge, pgrepCommand, "-f", vmPattern)
	if err != nil {
		p.logger.Debug("process probe unavailable", "probe", string(domain.ProbeHelperProcessPattern), "error", err.Error())
		return false
	}
	return pattern.Running()
}

// InvalidateMounts drops cached mount table captures.
func (p *Prober) InvalidateMounts() {
	p.cache.InvalidatePrefix(domain.MountProbePrefix)
}

// InvalidateProcesses drops cached process captures.
func (p *Prober) InvalidateProcesses() {
	p.cache.InvalidatePrefix(domain.ProcessProbePrefix)
}

// InvalidateAll drops every cached probe.
func (p *Prober) InvalidateAll() {
	p.cache.InvalidateAll()
}

func (p *Prober) probe(
	ctx context.Context,
	key domain.ProbeKey,
	maxAge time.Duration,
	name string,
	args ...string,
) (domain.ProbeEntry, error) {
	if entry, ok := p.cache.Get(key, maxAge); ok {
		return entry, nil
	}

	res, err := p.runner.Run(ctx, name, args...)
	if err != nil {
		return domain.ProbeEntry{}, zerr.With(zerr.Wrap(err, "probe failed"), "probe", string(key))
	}

	entry := domain.ProbeEntry{
		Output:     res.Stdout,
		Success:    res.Success(),
		CapturedAt: p.cache.Now(),
	}
	p.cache.Put(key, entry)
	p.logger.Debug("probe captured", "probe", string(key), "success", entry.Success)

	return entry, nil
}
