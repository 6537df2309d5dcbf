package domain

import (
	"fmt"
	"slices"

	"go.trai.ch/zerr"
)

// VM resource limits accepted by the helper.
const (
	MinRAMMB = 256
	MaxRAMMB = 65536
	MinVCPUs = 1
	MaxVCPUs = 32
)

// LogLevels are the helper's log levels, indexed by their numeric form.
var LogLevels = []string{"off", "error", "warn", "info", "debug", "trace"}

// VMConfig is the helper's effective micro-VM configuration.
// A nil field means the helper did not report it.
type VMConfig struct {
	RAMMB    *uint32 `json:"ram_mb"`
	VCPUs    *uint32 `json:"vcpus"`
	LogLevel *string `json:"log_level"`
}

// Validate checks every set field against the helper's accepted ranges.
func (c VMConfig) Validate() error {
	if c.RAMMB != nil && (*c.RAMMB < MinRAMMB || *c.RAMMB > MaxRAMMB) {
		return zerr.With(zerr.Wrap(ErrInvalidConfig,
			fmt.Sprintf("invalid RAM value: %dMB, must be between %d and %d MB", *c.RAMMB, MinRAMMB, MaxRAMMB)),
			"ram_mb", *c.RAMMB)
	}
	if c.VCPUs != nil && (*c.VCPUs < MinVCPUs || *c.VCPUs > MaxVCPUs) {
		return zerr.With(zerr.Wrap(ErrInvalidConfig,
			fmt.Sprintf("invalid vCPU value: %d, must be between %d and %d", *c.VCPUs, MinVCPUs, MaxVCPUs)),
			"vcpus", *c.VCPUs)
	}
	if c.LogLevel != nil && !slices.Contains(LogLevels, *c.LogLevel) {
		return zerr.With(zerr.Wrap(ErrInvalidConfig,
			fmt.Sprintf("invalid log level: %q, valid options: %v", *c.LogLevel, LogLevels)),
			"log_level", *c.LogLevel)
	}
	return nil
}

// LogLevelName maps a numeric log level to its name.
func LogLevelName(n int64) (string, bool) {
	if n < 0 || n >= int64(len(LogLevels)) {
		return "", false
	}
	return LogLevels[n], true
}

// CustomAction is a named set of hooks the helper runs around a mount.
type CustomAction struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	BeforeMount        string   `json:"before_mount"`
	AfterMount         string   `json:"after_mount"`
	BeforeUnmount      string   `json:"before_unmount"`
	Environment        []string `json:"environment"`
	CaptureEnvironment []string `json:"capture_environment"`
	OverrideNFSExport  string   `json:"override_nfs_export"`
	RequiredOS         string   `json:"required_os"`
	IsUpstream         bool     `json:"is_upstream"`
}
