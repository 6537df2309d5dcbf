package domain

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Metadata keys attached to domain errors with zerr.With.
const (
	// MetaOutput carries the combined stdout and stderr of a failed helper run.
	MetaOutput = "output"
	// MetaSeconds carries the timeout that expired, in whole seconds.
	MetaSeconds = "seconds"
	// MetaReason carries the human readable cause of a failed mount verification.
	MetaReason = "reason"
)

var (
	// ErrHelperNotFound is returned when the anylinuxfs binary cannot be located.
	ErrHelperNotFound = zerr.New("anylinuxfs CLI not found in PATH or standard locations")

	// ErrHelperExecutionFailed is returned when the helper exits with a non-zero status.
	ErrHelperExecutionFailed = zerr.New("anylinuxfs command failed")

	// ErrIncorrectPassword is returned when sudo rejects the administrator password.
	ErrIncorrectPassword = zerr.New("incorrect password")

	// ErrAuthenticationCancelled is returned when the password prompt was dismissed.
	ErrAuthenticationCancelled = zerr.New("authentication cancelled")

	// ErrTimedOut is returned when an external process exceeds its deadline.
	ErrTimedOut = zerr.New("timed out")

	// ErrMountVerificationFailed is returned when a mount is not observed within the retry budget.
	ErrMountVerificationFailed = zerr.New("mount verification failed")

	// ErrTaskFailed is returned when a background task panics or cannot be awaited.
	ErrTaskFailed = zerr.New("task failed")

	// ErrInvalidConfig is returned when a VM configuration update is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrUnknownOutput is returned for an --output value other than auto, text or json.
	ErrUnknownOutput = zerr.New("unknown output format")

	// ErrInvalidSettings is returned when the settings file holds unusable values.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrNoPackages is returned when a package operation is given an empty list.
	ErrNoPackages = zerr.New("no packages specified")

	// ErrActionExists is returned when creating a custom action whose name is taken.
	ErrActionExists = zerr.New("action already exists")

	// ErrActionNotFound is returned when updating or deleting an unknown custom action.
	ErrActionNotFound = zerr.New("action not found")

	// ErrInvalidAction is returned when a custom action has no name.
	ErrInvalidAction = zerr.New("invalid action")

	// ErrInvalidDevice is returned when a device path cannot be mapped to a disk.
	ErrInvalidDevice = zerr.New("invalid device")

	// ErrDiskUtilityFailed is returned when diskutil exits with a non-zero status.
	ErrDiskUtilityFailed = zerr.New("diskutil failed")

	// ErrStillMounted is returned by the quit guard while a filesystem is mounted.
	ErrStillMounted = zerr.New("a filesystem is still mounted")

	// ErrNoPassphrase is returned when an empty passphrase was supplied.
	ErrNoPassphrase = zerr.New("no passphrase provided")
)

// HelperFailure builds ErrHelperExecutionFailed carrying the raw helper output.
func HelperFailure(output string) error {
	msg := strings.TrimSpace(output)
	if msg == "" {
		msg = "helper exited with a non-zero status"
	}
	return zerr.With(zerr.Wrap(ErrHelperExecutionFailed, msg), MetaOutput, output)
}

// Timeout builds ErrTimedOut for a deadline of the given length.
func Timeout(seconds int) error {
	return zerr.With(zerr.Wrap(ErrTimedOut, fmt.Sprintf("operation timed out after %d seconds", seconds)), MetaSeconds, seconds)
}

// MountVerification builds ErrMountVerificationFailed with a reason.
func MountVerification(reason string) error {
	return zerr.With(zerr.Wrap(ErrMountVerificationFailed, reason), MetaReason, reason)
}

// Output returns the helper output attached to err, if any.
func Output(err error) string {
	if v, ok := lookup(err, MetaOutput).(string); ok {
		return v
	}
	return ""
}

// TimeoutSeconds returns the expired timeout attached to err, or 0.
func TimeoutSeconds(err error) int {
	if v, ok := lookup(err, MetaSeconds).(int); ok {
		return v
	}
	return 0
}

// Reason returns the mount verification reason attached to err, if any.
func Reason(err error) string {
	if v, ok := lookup(err, MetaReason).(string); ok {
		return v
	}
	return ""
}

// IsElevationFailure reports whether err means sudo never ran the helper.
func IsElevationFailure(err error) bool {
	return errors.Is(err, ErrIncorrectPassword) || errors.Is(err, ErrAuthenticationCancelled)
}

func lookup(err error, key string) any {
	for err != nil {
		var z *zerr.Error
		if !errors.As(err, &z) {
			return nil
		}
		if v, ok := z.Metadata()[key]; ok {
			return v
		}
		err = z.Unwrap()
	}
	return nil
}
