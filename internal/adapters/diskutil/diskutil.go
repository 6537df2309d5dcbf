// Package diskutil wraps the macOS diskutil command.
package diskutil

import (
	"context"
	"strings"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	command           = "diskutil"
	personalityPrefix = "File System Personality:"
)

// Utility implements ports.DiskUtility on top of a ports.CommandRunner.
type Utility struct {
	runner ports.CommandRunner
}

// New creates a Utility.
func New(runner ports.CommandRunner) *Utility {
	return &Utility{runner: runner}
}

// Personality returns the "File System Personality" reported by
// `diskutil info`, or an empty string when the line is absent.
func (u *Utility) Personality(ctx context.Context, id string) (string, error) {
	res, err := u.runner.Run(ctx, command, "info", id)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "diskutil info failed"), "device", id)
	}
	return ParsePersonality(res.Stdout), nil
}

// Eject ejects a whole disk.
func (u *Utility) Eject(ctx context.Context, disk string) (string, error) {
	res, err := u.runner.Run(ctx, command, "eject", disk)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "diskutil eject failed"), "disk", disk)
	}
	if !res.Success() {
		msg := strings.TrimSpace(res.Combined())
		if msg == "" {
			msg = "eject failed"
		}
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrDiskUtilityFailed, msg), "disk", disk), domain.MetaOutput, res.Combined())
	}
	return strings.TrimSpace(res.Stdout), nil
}

// ParsePersonality extracts the personality value from diskutil info output.
func ParsePersonality(info string) string {
	for line := range strings.Lines(info) {
		_, value, found := strings.Cut(line, personalityPrefix)
		if found {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
