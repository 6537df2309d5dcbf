// Package shell runs host commands, either captured or attached to a pseudo-terminal.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// waitDelay bounds how long Wait keeps reading pipes after the process is killed.
const waitDelay = 2 * time.Second

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
	env    []string
}

// NewRunner creates a Runner that passes a filtered copy of the current
// environment to every command.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		env:    resolveEnvironment(os.Environ(), map[string]string{"LC_ALL": "C"}),
	}
}

// Run executes name with args and captures stdout and stderr.
// A non-zero exit is returned in the result. Errors are reserved for commands
// that could not be started or were cancelled.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (domain.CommandResult, error) {
	executable := name
	if !filepath.IsAbs(name) {
		lp, err := lookPath(name, r.env)
		if err != nil {
			return domain.CommandResult{}, zerr.With(zerr.Wrap(err, "command not found"), "command", name)
		}
		executable = lp
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // fixed host tools
	cmd.Args[0] = name
	cmd.Env = r.env
	cmd.Stdin = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return killGroup(cmd.Process)
	}
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	stderrLog := &logWriter{logger: r.logger, prefix: name}
	cmd.Stdout = &stdout
	cmd.Stderr = multiWriter(&stderr, stderrLog)

	err := cmd.Run()
	_ = stderrLog.Close()

	result := domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, zerr.With(zerr.Wrap(ctxErr, "command cancelled"), "command", name)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, zerr.With(zerr.Wrap(err, "failed to run command"), "command", name)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}

// killGroup sends SIGKILL to the process group led by p.
func killGroup(p *os.Process) error {
	if p == nil {
		return nil
	}
	if err := unix.Kill(-p.Pid, unix.SIGKILL); err != nil && !errors.Is(err, unix.ESRCH) {
		return p.Kill()
	}
	return nil
}

// allowListedEnvVars are the system environment variables inherited by host
// commands. Everything else is dropped so locale or tool configuration in the
// user's shell cannot change the output being parsed.
var allowListedEnvVars = map[string]struct{}{
	"HOME":   {},
	"TERM":   {},
	"USER":   {},
	"PATH":   {},
	"TMPDIR": {},
}

// resolveEnvironment filters sysEnv through the allow-list and applies overrides.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := filterSystemEnv(sysEnv)
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

func filterSystemEnv(sysEnv []string) map[string]string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			if _, allowed := allowListedEnvVars[k]; allowed {
				envMap[k] = v
			}
		}
	}
	return envMap
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
