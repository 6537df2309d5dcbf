package ports

import (
	"context"
	"time"

	"go.trai.ch/mountbar/internal/core/domain"
)

//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks

// ProbeCache stores the last captured output of each OS probe.
type ProbeCache interface {
	// Get returns the entry for key if it is younger than maxAge.
	Get(key domain.ProbeKey, maxAge time.Duration) (domain.ProbeEntry, bool)
	// Put inserts or replaces the entry for key, evicting the oldest entry at capacity.
	Put(key domain.ProbeKey, entry domain.ProbeEntry)
	// InvalidatePrefix removes every key starting with prefix.
	InvalidatePrefix(prefix string)
	// InvalidateAll empties the cache.
	InvalidateAll()
	// Now reads the clock entries are aged against.
	Now() time.Time
}

// Prober answers mount table and process questions through the ProbeCache.
type Prober interface {
	// MountTable returns the output of `mount`, cached for domain.MountTableMaxAge.
	MountTable(ctx context.Context) (domain.ProbeEntry, error)
	// HelperRunning reports whether the helper's VM process exists.
	HelperRunning(ctx context.Context) bool
	// InvalidateMounts drops cached mount table captures.
	InvalidateMounts()
	// InvalidateProcesses drops cached process captures.
	InvalidateProcesses()
	// InvalidateAll drops every cached probe.
	InvalidateAll()
}

// CommandRunner runs short-lived host commands.
type CommandRunner interface {
	// Run executes name with args and captures its output.
	// A non-zero exit is reported in the result, not as an error.
	Run(ctx context.Context, name string, args ...string) (domain.CommandResult, error)
}
