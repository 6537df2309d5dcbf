package watcher

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LogReader = (*LogReader)(nil)

const maxLogLine = 1 << 20

// LogReader reads the helper log and follows appended lines.
type LogReader struct {
	logger ports.Logger
}

// NewLogReader creates a new log reader.
func NewLogReader(logger ports.Logger) *LogReader {
	return &LogReader{logger: logger}
}

// Tail returns at most n trailing lines of path. A missing file yields no lines.
// A non-positive n reads domain.DefaultLogLines.
func (r *LogReader) Tail(path string, n int) ([]string, error) {
	if n <= 0 {
		n = domain.DefaultLogLines
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open log file"), "path", path)
	}
	defer func() { _ = f.Close() }()

	ring := make([]string, 0, min(n, 64))
	start := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLogLine)
	for scanner.Scan() {
		if len(ring) < n {
			ring = append(ring, scanner.Text())
			continue
		}
		ring[start] = scanner.Text()
		start = (start + 1) % n
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read log file"), "path", path)
	}

	return append(ring[start:], ring[:start]...), nil
}

// Follow blocks until ctx is done, calling emit for each line appended to
// path after the call. A truncated file is read again from the top.
func (r *LogReader) Follow(ctx context.Context, path string, emit func(line string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create log watcher")
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch log directory"), "path", path)
	}

	t := &tailer{path: path, emit: emit}
	if info, err := os.Stat(path); err == nil {
		t.pos = info.Size()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := t.drain(); err != nil {
				r.logger.Debug("log read failed", "path", path, "error", err.Error())
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("log watcher error", "error", err.Error())
		}
	}
}

// tailer remembers how far the followed file has been read.
type tailer struct {
	path    string
	pos     int64
	partial string
	emit    func(string)
}

func (t *tailer) drain() error {
	f, err := os.Open(t.path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	switch {
	case size == t.pos:
		return nil
	case size < t.pos:
		t.pos = 0
		t.partial = ""
	}

	if _, err := f.Seek(t.pos, io.SeekStart); err != nil {
		return err
	}
	data, err := io.ReadAll(io.LimitReader(f, size-t.pos))
	if err != nil {
		return err
	}
	t.pos += int64(len(data))

	text := t.partial + string(data)
	last := strings.LastIndexByte(text, '\n')
	if last < 0 {
		t.partial = text
		return nil
	}
	t.partial = text[last+1:]
	for line := range strings.Lines(text[:last+1]) {
		t.emit(strings.TrimRight(line, "\r\n"))
	}
	return nil
}
