package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// HelperName is the executable name of the anylinuxfs helper.
	HelperName = "anylinuxfs"

	// HelperPathEnv overrides helper discovery.
	HelperPathEnv = "ANYLINUXFS_PATH"

	// PassphraseEnv carries a disk encryption passphrase to a single helper run.
	PassphraseEnv = "ALFS_PASSPHRASE"

	// AskpassEnv tells sudo which credential prompt hook to run.
	AskpassEnv = "SUDO_ASKPASS"

	// SocketFileName is the name of the helper's control socket.
	SocketFileName = "anylinuxfs.sock"

	// FallbackSocketPath is used when no socket exists in the user cache dir.
	FallbackSocketPath = "/tmp/anylinuxfs.sock"

	// LogFileName is the name of the helper's log file.
	LogFileName = "anylinuxfs.log"

	// FallbackLogPath is used when no log exists under ~/Library/Logs.
	FallbackLogPath = "/tmp/anylinuxfs.log"

	// VolumesDir is where macOS attaches removable volumes.
	VolumesDir = "/Volumes"

	// UpstreamActionsPath holds the read-only custom actions shipped with the helper.
	UpstreamActionsPath = "/opt/homebrew/etc/anylinuxfs.toml"

	// SettingsEnv overrides the settings file location.
	SettingsEnv = "MOUNTBAR_CONFIG"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ScriptPerm is the owner-only permission of the askpass script (rwx------).
	ScriptPerm = 0o700
)

// Helper timeouts and settle budgets.
const (
	// CommandTimeout bounds a single helper invocation.
	CommandTimeout = 30 * time.Second
	// MountTimeout bounds a mount, which may include VM start-up.
	MountTimeout = 60 * time.Second
	// ElevationPollInterval is how often a privileged child is checked for exit.
	ElevationPollInterval = 100 * time.Millisecond
	// SocketTimeout bounds each read and write on the control socket.
	SocketTimeout = 2 * time.Second
	// DefaultLogLines is how many log lines are read when no count is given.
	DefaultLogLines = 500
	// VolumesSettle is the quiet period before a volume change is reported.
	VolumesSettle = 1500 * time.Millisecond
)

// SettleBudget is a bounded check-then-sleep retry policy.
type SettleBudget struct {
	Attempts int
	Interval time.Duration
}

var (
	// MountSettle is used after mount and unmount.
	MountSettle = SettleBudget{Attempts: 40, Interval: 250 * time.Millisecond}
	// EjectSettle confirms a volume is gone before ejecting the disk.
	EjectSettle = SettleBudget{Attempts: 10, Interval: 500 * time.Millisecond}
)

// HelperSearchPaths are tried in order after PATH lookup fails.
var HelperSearchPaths = []string{
	"/opt/homebrew/bin/anylinuxfs",
	"/usr/local/bin/anylinuxfs",
	"/usr/bin/anylinuxfs",
}

// DefaultSocketPath returns the control socket in the user cache directory
// when it exists, and FallbackSocketPath otherwise.
func DefaultSocketPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		p := filepath.Join(dir, HelperName, SocketFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return FallbackSocketPath
}

// DefaultLogPath returns ~/Library/Logs/anylinuxfs.log when it exists.
func DefaultLogPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, "Library", "Logs", LogFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return FallbackLogPath
}

// DefaultUserActionsPath returns ~/.anylinuxfs/config.toml.
func DefaultUserActionsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, "."+HelperName, "config.toml")
}

// DefaultSettingsPath returns the settings file location.
func DefaultSettingsPath() string {
	if p := os.Getenv(SettingsEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "mountbar", "config.yaml")
}
