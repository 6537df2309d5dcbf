package helper

import (
	"strings"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	wrongPasswordMarkers = []string{"Sorry, try again", "incorrect password"}
	cancelledMarkers     = []string{"no askpass program", "no password was provided"}
)

// classifyElevated maps a failed sudo run to a domain error.
func classifyElevated(stdout, stderr string) error {
	switch {
	case containsAny(stderr, wrongPasswordMarkers):
		return zerr.With(zerr.Wrap(domain.ErrIncorrectPassword, "Incorrect password"), domain.MetaOutput, stderr)
	case containsAny(stderr, cancelledMarkers):
		return zerr.With(zerr.Wrap(domain.ErrAuthenticationCancelled, "Authentication cancelled"), domain.MetaOutput, stderr)
	default:
		return domain.HelperFailure(stdout + stderr)
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
