package helper_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mountbar/internal/adapters/helper"
	"go.trai.ch/mountbar/internal/core/domain"
	"golang.org/x/sys/unix"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(error)          {}

type fakeSecret struct {
	value     []byte
	destroyed bool
}

func (s *fakeSecret) Bytes() []byte { return s.value }
func (s *fakeSecret) Destroy()      { s.destroyed = true }

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

type fixture struct {
	dir      string
	tempDir  string
	helper   string
	executor *helper.Executor
}

// newFixture builds an executor around a fake helper and a fake sudo.
func newFixture(t *testing.T, helperBody, sudoBody string) *fixture {
	t.Helper()
	dir := t.TempDir()
	tempDir := filepath.Join(dir, "tmp")
	require.NoError(t, os.Mkdir(tempDir, 0o700))

	f := &fixture{
		dir:     dir,
		tempDir: tempDir,
		helper:  writeScript(t, dir, "anylinuxfs", helperBody),
	}
	elevator := writeScript(t, dir, "fake-sudo", sudoBody)

	f.executor = helper.NewExecutor(helper.Config{
		HelperPath:   f.helper,
		SearchPaths:  []string{},
		Elevator:     elevator,
		TempDir:      tempDir,
		PollInterval: 10 * time.Millisecond,
	}, nil, nopLogger{})
	return f
}

func (f *fixture) assertNoAskpass(t *testing.T) {
	t.Helper()
	entries, err := os.ReadDir(f.tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "askpass script must be removed")
}

// passThroughSudo records the askpass hook and then runs the helper.
func passThroughSudo(dir string) string {
	return fmt.Sprintf(`echo "$SUDO_ASKPASS" > %[1]s/askpass-path
cp "$SUDO_ASKPASS" %[1]s/askpass-copy
ls -l "$SUDO_ASKPASS" | cut -c1-10 > %[1]s/askpass-mode
[ "$1" = "-A" ] || exit 99
[ "$2" = "--" ] || exit 98
shift 2
exec "$@"`, dir)
}

func TestExecute_Direct(t *testing.T) {
	f := newFixture(t, `echo "listed $*"`, "exit 1")

	out, err := f.executor.Execute(t.Context(), domain.Invocation{Args: []string{"list", "-m"}})
	require.NoError(t, err)
	assert.Equal(t, "listed list -m\n", out)
}

func TestExecute_DirectFailureCarriesOutput(t *testing.T) {
	f := newFixture(t, `echo "partial"; echo "mount: wrong fs type" >&2; exit 3`, "exit 1")

	_, err := f.executor.Execute(t.Context(), domain.Invocation{Args: []string{"mount", "/dev/disk6s1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHelperExecutionFailed)
	assert.Equal(t, "partial\nmount: wrong fs type\n", domain.Output(err))
}

func TestExecute_DirectTimeout(t *testing.T) {
	f := newFixture(t, "exec sleep 30", "exit 1")

	start := time.Now()
	_, err := f.executor.Execute(t.Context(), domain.Invocation{
		Args:    []string{"list"},
		Timeout: 200 * time.Millisecond,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimedOut)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestExecute_DirectStdinClosed(t *testing.T) {
	f := newFixture(t, `if read line; then echo "got input"; else echo "eof"; fi`, "exit 1")

	out, err := f.executor.Execute(t.Context(), domain.Invocation{Args: []string{"shell"}})
	require.NoError(t, err)
	assert.Equal(t, "eof\n", out)
}

func TestExecute_PassphraseScopedToChild(t *testing.T) {
	t.Setenv(domain.PassphraseEnv, "inherited")
	f := newFixture(t, `printf '%s' "$ALFS_PASSPHRASE"`, "exit 1")

	out, err := f.executor.Execute(t.Context(), domain.Invocation{Args: []string{"status"}})
	require.NoError(t, err)
	assert.Empty(t, out, "an inherited passphrase is not forwarded")

	secret := &fakeSecret{value: []byte("hunter2")}
	out, err = f.executor.Execute(t.Context(), domain.Invocation{
		Args:       []string{"mount", "/dev/disk6s1"},
		Passphrase: secret,
	})
	require.NoError(t, err)
	assert.Equal(t, "hunter2", out)
	assert.True(t, secret.destroyed)
}

func TestExecute_ElevatedSuccess(t *testing.T) {
	dir := t.TempDir()
	f := newFixture(t, `echo "mounted $2"`, passThroughSudo(dir))

	secret := &fakeSecret{value: []byte("pass")}
	out, err := f.executor.Execute(t.Context(), domain.Invocation{
		Args:       []string{"mount", "/dev/disk6s1"},
		Elevated:   true,
		Passphrase: secret,
	})
	require.NoError(t, err)
	assert.Equal(t, "mounted /dev/disk6s1\n", out)
	assert.True(t, secret.destroyed)

	copied, err := os.ReadFile(filepath.Join(dir, "askpass-copy"))
	require.NoError(t, err)
	assert.Equal(t, helper.AskpassScript, string(copied))

	mode, err := os.ReadFile(filepath.Join(dir, "askpass-mode"))
	require.NoError(t, err)
	assert.Equal(t, "-rwx------", strings.TrimSpace(string(mode)))

	hook, err := os.ReadFile(filepath.Join(dir, "askpass-path"))
	require.NoError(t, err)
	assert.NoFileExists(t, strings.TrimSpace(string(hook)))
	f.assertNoAskpass(t)
}

func TestExecute_ElevatedFailures(t *testing.T) {
	tests := []struct {
		name    string
		sudo    string
		wantErr error
	}{
		{
			name:    "wrong password",
			sudo:    `echo "Sorry, try again." >&2; echo "sudo: 3 incorrect password attempts" >&2; exit 1`,
			wantErr: domain.ErrIncorrectPassword,
		},
		{
			name:    "cancelled",
			sudo:    `echo "sudo: no askpass program specified, try setting SUDO_ASKPASS" >&2; exit 1`,
			wantErr: domain.ErrAuthenticationCancelled,
		},
		{
			name:    "dialog dismissed",
			sudo:    `echo "sudo: no password was provided" >&2; exit 1`,
			wantErr: domain.ErrAuthenticationCancelled,
		},
		{
			name:    "helper failure",
			sudo:    `echo "disk busy" >&2; exit 2`,
			wantErr: domain.ErrHelperExecutionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "exit 0", tt.sudo)

			_, err := f.executor.Execute(t.Context(), domain.Invocation{
				Args:     []string{"mount", "/dev/disk6s1"},
				Elevated: true,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			f.assertNoAskpass(t)
		})
	}
}

func TestExecute_ElevatedTimeout(t *testing.T) {
	dir := t.TempDir()
	pidFile := filepath.Join(dir, "pid")
	f := newFixture(t, "exit 0", fmt.Sprintf("echo $$ > %s\nexec sleep 30", pidFile))

	start := time.Now()
	_, err := f.executor.Execute(t.Context(), domain.Invocation{
		Args:     []string{"mount", "/dev/disk6s1"},
		Elevated: true,
		Timeout:  300 * time.Millisecond,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimedOut)
	assert.Equal(t, 1, domain.TimeoutSeconds(err))
	assert.Less(t, time.Since(start), 10*time.Second)
	f.assertNoAskpass(t)

	raw, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	require.NoError(t, err)
	assert.ErrorIs(t, unix.Kill(pid, 0), unix.ESRCH, "child must be killed and reaped")
}

func TestExecute_ElevatedContextCancel(t *testing.T) {
	f := newFixture(t, "exit 0", "exec sleep 30")

	ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
	defer cancel()

	_, err := f.executor.Execute(ctx, domain.Invocation{Args: []string{"unmount"}, Elevated: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	f.assertNoAskpass(t)
}

func TestExecute_HelperNotFound(t *testing.T) {
	t.Setenv(domain.HelperPathEnv, "")
	e := helper.NewExecutor(helper.Config{
		HelperPath:  filepath.Join(t.TempDir(), "missing"),
		SearchPaths: []string{},
	}, nil, nopLogger{})

	_, err := e.Execute(t.Context(), domain.Invocation{Args: []string{"list"}})
	assert.ErrorIs(t, err, domain.ErrHelperNotFound)
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "prefixed", body: `echo "anylinuxfs 0.10.2"`, want: "0.10.2"},
		{name: "bare", body: `echo "0.11.0-dev"`, want: "0.11.0-dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.body, "exit 1")
			v, err := f.executor.Version(t.Context())
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestClassifyElevated(t *testing.T) {
	err := helper.ClassifyElevated("out\n", "err\n")
	assert.ErrorIs(t, err, domain.ErrHelperExecutionFailed)
	assert.Equal(t, "out\nerr\n", domain.Output(err))
	assert.False(t, errors.Is(err, domain.ErrIncorrectPassword))
	assert.False(t, domain.IsElevationFailure(err))

	assert.True(t, domain.IsElevationFailure(helper.ClassifyElevated("", "Sorry, try again.")))
}
