package shell

import (
	"bytes"
	"io"
	"strings"

	"go.trai.ch/mountbar/internal/core/ports"
)

// logWriter forwards complete lines to the logger at debug level.
type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" || w.logger == nil {
		return
	}
	w.logger.Debug(msg, "command", w.prefix)
}

func multiWriter(primary io.Writer, tee *logWriter) io.Writer {
	if tee.logger == nil {
		return primary
	}
	return io.MultiWriter(primary, tee)
}
