package shell

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Session implements ports.Terminal by running a command in a PTY wired to
// the given input and output.
type Session struct {
	in  io.Reader
	out io.Writer
}

// NewSession creates a Session attached to the process's standard streams.
func NewSession() *Session {
	return &Session{in: os.Stdin, out: os.Stdout}
}

// NewSessionWithIO creates a Session reading from in and writing to out.
func NewSessionWithIO(in io.Reader, out io.Writer) *Session {
	return &Session{in: in, out: out}
}

// Attach runs path with args in a PTY until it exits or ctx is cancelled.
// When the input is a terminal it is switched to raw mode and its window
// size follows the local terminal.
func (s *Session) Attach(ctx context.Context, path string, args ...string) error {
	cmd := exec.CommandContext(ctx, path, args...) //nolint:gosec // resolved helper binary
	cmd.Env = os.Environ()

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}
	defer func() { _ = ptmx.Close() }()

	proc := &ptyProcess{cmd: cmd, ptmx: ptmx}

	if f, ok := s.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		restore, err := makeRaw(f)
		if err != nil {
			return err
		}
		defer restore()

		stop := proc.followSize(f)
		defer stop()
	}

	go func() { _, _ = io.Copy(ptmx, s.in) }()

	outDone := make(chan struct{})
	go func() {
		defer close(outDone)
		_, _ = io.Copy(s.out, ptmx)
	}()

	waitErr := cmd.Wait()
	<-outDone

	if waitErr != nil {
		var exitErr *exec.ExitError
		exitCode := -1
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(waitErr, "shell exited"), "exit_code", exitCode)
	}
	return nil
}

func makeRaw(f *os.File) (func(), error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to switch terminal to raw mode")
	}
	return func() { _ = term.Restore(fd, state) }, nil
}

type ptyProcess struct {
	cmd  *exec.Cmd
	ptmx *os.File
}

// Resize sets the PTY window size.
func (p *ptyProcess) Resize(rows, cols int) error {
	if rows > math.MaxUint16 || cols > math.MaxUint16 || rows < 0 || cols < 0 {
		return errors.New("terminal size out of bounds")
	}

	return pty.Setsize(p.ptmx, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

// followSize copies the size of tty to the PTY now and on every SIGWINCH.
func (p *ptyProcess) followSize(tty *os.File) func() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)

	resize := func() {
		cols, rows, err := term.GetSize(int(tty.Fd()))
		if err == nil {
			_ = p.Resize(rows, cols)
		}
	}
	resize()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-sig:
				resize()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}
