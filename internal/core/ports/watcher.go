package ports

import "context"

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// VolumeWatcher reports settled changes to the removable volumes directory.
type VolumeWatcher interface {
	// Watch blocks until ctx is done, calling onChange once per settled burst.
	Watch(ctx context.Context, onChange func()) error
}

// LogReader reads and follows the helper's log file.
type LogReader interface {
	// Tail returns at most n trailing lines of the file at path.
	Tail(path string, n int) ([]string, error)
	// Follow blocks until ctx is done, calling emit for every appended line.
	Follow(ctx context.Context, path string, emit func(line string)) error
}
