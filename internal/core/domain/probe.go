package domain

import (
	"strings"
	"time"
)

// ProbeKey names a cacheable OS probe.
type ProbeKey string

// Probe keys and the prefix families used for bulk invalidation.
const (
	// ProbeActiveMounts caches the output of `mount`.
	ProbeActiveMounts ProbeKey = "active-mounts"
	// ProbeHelperProcessExact caches `pgrep -x krun`.
	ProbeHelperProcessExact ProbeKey = "helper-process-exact"
	// ProbeHelperProcessPattern caches `pgrep -f libkrun`.
	ProbeHelperProcessPattern ProbeKey = "helper-process-pattern"

	// MountProbePrefix matches every mount table probe.
	MountProbePrefix = "active-mounts"
	// ProcessProbePrefix matches every process existence probe.
	ProcessProbePrefix = "helper-process"
)

// Probe freshness and cache bounds.
const (
	// MountTableMaxAge is how long a mount table capture stays fresh.
	MountTableMaxAge = time.Second
	// ProcessProbeMaxAge is how long a process existence capture stays fresh.
	ProcessProbeMaxAge = 500 * time.Millisecond
	// ProbeCacheCapacity bounds the number of cached probes.
	ProbeCacheCapacity = 50
	// ProbeStaleAfter is the age past which the sweep drops an entry.
	ProbeStaleAfter = 60 * time.Second
)

// HasPrefix reports whether the key belongs to the given prefix family.
func (k ProbeKey) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(k), prefix)
}

// ProbeEntry is one captured probe result. Entries are replaced, never mutated.
type ProbeEntry struct {
	Output     string
	Success    bool
	CapturedAt time.Time
}

// Running reports whether a process probe found a match.
func (e ProbeEntry) Running() bool {
	return e.Success && strings.TrimSpace(e.Output) != ""
}

// Age returns how old the entry is at now.
func (e ProbeEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.CapturedAt)
}
