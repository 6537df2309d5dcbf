// Package helper runs the anylinuxfs CLI, directly or elevated through sudo.
package helper

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

const (
	defaultElevator = "sudo"
	versionPrefix   = domain.HelperName + " "
	waitDelay       = 2 * time.Second
)

// Config configures an Executor.
type Config struct {
	// HelperPath pins the helper binary.
	HelperPath string
	// SearchPaths are tried after PATH lookup. Nil means domain.HelperSearchPaths.
	SearchPaths []string
	// Elevator is the privilege elevation command. Empty means sudo.
	Elevator string
	// TempDir holds askpass scripts. Empty means os.TempDir().
	TempDir string
	// PollInterval is how often an elevated child is checked for exit.
	PollInterval time.Duration
}

// Executor implements ports.HelperExecutor.
type Executor struct {
	cfg     Config
	locator *Locator
	logger  ports.Logger
}

// NewExecutor creates an Executor. The runner is used for `which` lookups.
func NewExecutor(cfg Config, runner ports.CommandRunner, logger ports.Logger) *Executor {
	if cfg.SearchPaths == nil {
		cfg.SearchPaths = domain.HelperSearchPaths
	}
	if cfg.Elevator == "" {
		cfg.Elevator = defaultElevator
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = domain.ElevationPollInterval
	}

	return &Executor{
		cfg:     cfg,
		locator: NewLocator(cfg.HelperPath, cfg.SearchPaths, runner),
		logger:  logger,
	}
}

// Locate returns the resolved helper path.
func (e *Executor) Locate() (string, error) {
	return e.locator.Locate()
}

// Version runs `anylinuxfs --version` and strips the program name.
func (e *Executor) Version(ctx context.Context) (string, error) {
	out, err := e.Execute(ctx, domain.Invocation{Args: []string{"--version"}})
	if err != nil {
		return "", err
	}
	v := strings.TrimSpace(out)
	return strings.TrimPrefix(v, versionPrefix), nil
}

// Execute runs the invocation and returns the helper's stdout.
// The passphrase, if any, is destroyed once the child has exited.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation) (string, error) {
	if inv.Passphrase != nil {
		defer inv.Passphrase.Destroy()
	}

	path, err := e.locator.Locate()
	if err != nil {
		return "", err
	}

	e.logger.Debug("running helper", "args", strings.Join(inv.Args, " "), "elevated", inv.Elevated)

	if inv.Elevated {
		return e.runElevated(ctx, path, inv)
	}
	return e.runDirect(ctx, path, inv)
}

func (e *Executor) runDirect(ctx context.Context, path string, inv domain.Invocation) (string, error) {
	timeout := inv.EffectiveTimeout()
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, path, inv.Args...)
	cmd.Env = childEnv(inv.Passphrase)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error { return killGroup(cmd.Process) }
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	switch {
	case err == nil:
		return stdout.String(), nil
	case ctx.Err() != nil:
		return "", zerr.Wrap(ctx.Err(), "helper run cancelled")
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return "", domain.Timeout(seconds(timeout))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", domain.HelperFailure(stdout.String() + stderr.String())
	}
	return "", zerr.With(zerr.Wrap(err, "failed to start helper"), "path", path)
}

// runElevated spawns the helper under sudo with a one-shot askpass hook and
// polls it until it exits or the invocation's timeout passes. The hook is
// removed on every return path.
func (e *Executor) runElevated(ctx context.Context, path string, inv domain.Invocation) (string, error) {
	askpass, err := writeAskpass(e.cfg.TempDir)
	if err != nil {
		return "", err
	}
	defer func() {
		if rmErr := os.Remove(askpass); rmErr != nil && !os.IsNotExist(rmErr) {
			e.logger.Warn("failed to remove askpass script", "path", askpass, "error", rmErr.Error())
		}
	}()

	args := append([]string{"-A", "--", path}, inv.Args...)
	cmd := exec.Command(e.cfg.Elevator, args...) //nolint:gosec // elevator and helper path are resolved locally
	cmd.Env = append(childEnv(inv.Passphrase), domain.AskpassEnv+"="+askpass)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to start elevation"), "elevator", e.cfg.Elevator)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	timeout := inv.EffectiveTimeout()
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(e.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case waitErr := <-done:
			if waitErr == nil {
				return stdout.String(), nil
			}
			var exitErr *exec.ExitError
			if !errors.As(waitErr, &exitErr) {
				return "", zerr.Wrap(waitErr, "error waiting for elevated helper")
			}
			return "", classifyElevated(stdout.String(), stderr.String())

		case <-ticker.C:
			if time.Now().Before(deadline) {
				continue
			}
			e.terminate(cmd, done)
			return "", domain.Timeout(seconds(timeout))

		case <-ctx.Done():
			e.terminate(cmd, done)
			return "", zerr.Wrap(ctx.Err(), "elevated helper run cancelled")
		}
	}
}

// terminate kills the child's process group and reaps the child.
func (e *Executor) terminate(cmd *exec.Cmd, done <-chan error) {
	if err := killGroup(cmd.Process); err != nil {
		e.logger.Warn("failed to kill elevated helper", "error", err.Error())
	}
	<-done
}

// childEnv returns the parent environment without inherited secrets, plus the
// passphrase for this child when one is given.
func childEnv(passphrase domain.Secret) []string {
	env := make([]string, 0, len(os.Environ())+1)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, domain.PassphraseEnv+"=") || strings.HasPrefix(kv, domain.AskpassEnv+"=") {
			continue
		}
		env = append(env, kv)
	}
	if passphrase != nil {
		env = append(env, domain.PassphraseEnv+"="+string(passphrase.Bytes()))
	}
	return env
}

func killGroup(p *os.Process) error {
	if p == nil {
		return nil
	}
	if err := unix.Kill(-p.Pid, unix.SIGKILL); err != nil && !errors.Is(err, unix.ESRCH) {
		return p.Kill()
	}
	return nil
}

func seconds(d time.Duration) int {
	return max(1, int(d/time.Second))
}
