package domain

// Settings are mountbar's own preferences, distinct from the helper's config.
type Settings struct {
	// HelperPath pins the anylinuxfs binary and skips discovery.
	HelperPath string
	// SocketPath overrides the control socket location.
	SocketPath string
	// LogPath overrides the helper log location.
	LogPath string
	// LogLines is the default number of log lines shown.
	LogLines int
	// JSONLogs switches diagnostics to JSON.
	JSONLogs bool
	// TaskWorkers bounds concurrently running blocking tasks.
	TaskWorkers int
	// Trace logs a line for every finished operation span.
	Trace bool
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		LogLines:    DefaultLogLines,
		TaskWorkers: 4,
	}
}

// ResolvedSocketPath returns the configured socket or the discovered default.
func (s Settings) ResolvedSocketPath() string {
	if s.SocketPath != "" {
		return s.SocketPath
	}
	return DefaultSocketPath()
}

// ResolvedLogPath returns the configured log file or the discovered default.
func (s Settings) ResolvedLogPath() string {
	if s.LogPath != "" {
		return s.LogPath
	}
	return DefaultLogPath()
}
