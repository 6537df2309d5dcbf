package shell_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mountbar/internal/adapters/shell"
	"go.trai.ch/mountbar/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRunner_CapturesOutputAndExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("oops", "command", "sh")

	runner := shell.NewRunner(log)

	res, err := runner.Run(context.Background(), "sh", "-c", "echo hello; echo oops >&2; exit 3")
	require.NoError(t, err)

	assert.Equal(t, "hello\n", res.Stdout)
	assert.Equal(t, "oops\n", res.Stderr)
	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.Success())
}

func TestRunner_Success(t *testing.T) {
	runner := shell.NewRunner(nil)

	res, err := runner.Run(context.Background(), "sh", "-c", "printf '%s' \"$LC_ALL\"")
	require.NoError(t, err)

	assert.True(t, res.Success())
	assert.Equal(t, "C", res.Stdout)
}

func TestRunner_CommandNotFound(t *testing.T) {
	runner := shell.NewRunner(nil)

	_, err := runner.Run(context.Background(), "definitely-not-a-command-42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command not found")
}

func TestRunner_ContextCancel(t *testing.T) {
	runner := shell.NewRunner(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := runner.Run(ctx, "sh", "-c", "sleep 10")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestSession_Attach(t *testing.T) {
	var out bytes.Buffer
	session := shell.NewSessionWithIO(strings.NewReader(""), &out)

	err := session.Attach(context.Background(), "/bin/sh", "-c", "echo from-pty")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "from-pty")
}

func TestSession_Attach_ExitCode(t *testing.T) {
	var out bytes.Buffer
	session := shell.NewSessionWithIO(strings.NewReader(""), &out)

	err := session.Attach(context.Background(), "/bin/sh", "-c", "exit 4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shell exited")
}
