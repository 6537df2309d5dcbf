package domain

import "time"

// Secret is sensitive material handed to exactly one helper run.
// memguard's LockedBuffer satisfies it.
type Secret interface {
	Bytes() []byte
	Destroy()
}

// Invocation describes one run of the helper binary.
type Invocation struct {
	// Args are passed positionally after the helper path.
	Args []string
	// Elevated runs the helper through sudo with a graphical password prompt.
	Elevated bool
	// Passphrase, when set, is exported as ALFS_PASSPHRASE to this child only.
	Passphrase Secret
	// Timeout bounds the run. Zero means CommandTimeout.
	Timeout time.Duration
}

// EffectiveTimeout returns the timeout to enforce for the invocation.
func (i Invocation) EffectiveTimeout() time.Duration {
	if i.Timeout <= 0 {
		return CommandTimeout
	}
	return i.Timeout
}

// CommandResult is the captured outcome of a short-lived command.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// Combined returns stdout followed by stderr.
func (r CommandResult) Combined() string {
	return r.Stdout + r.Stderr
}
