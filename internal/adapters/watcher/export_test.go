package watcher

// Tailer exposes the follow cursor for tests.
type Tailer = tailer

// NewTailer creates a cursor over path starting at pos.
func NewTailer(path string, pos int64, emit func(string)) *Tailer {
	return &tailer{path: path, pos: pos, emit: emit}
}

// Drain reads everything appended since the last call.
func (t *tailer) Drain() error {
	return t.drain()
}
