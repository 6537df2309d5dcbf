package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mountbar/cmd/mountbar/commands"
	"go.trai.ch/mountbar/internal/build"
	"go.trai.ch/mountbar/internal/core/domain"
)

// mockApp embeds the interface so tests only implement what they exercise.
type mockApp struct {
	commands.Application

	status    domain.MountStatus
	mounted   string
	secret    []byte
	hadSecret bool
	config    domain.VMConfig
	action    domain.CustomAction
	packages  []string
	logLines  int
	err       error
}

func (m *mockApp) Status(context.Context) (domain.MountStatus, error) {
	return m.status, m.err
}

func (m *mockApp) HelperVersion(context.Context) (string, error) {
	return "0.9.1", m.err
}

func (m *mockApp) Disks(context.Context, bool) (domain.DiskList, error) {
	return domain.DiskList{
		Disks: []domain.Disk{{
			Device: "/dev/disk6",
			Size:   "64.0 GB",
			Model:  domain.Ptr("SanDisk"),
			Partitions: []domain.Partition{
				{Device: "/dev/disk6s1", Filesystem: "ext4", Size: "64.0 GB", Supported: true},
			},
		}},
		HasSupportedPartitions: true,
	}, m.err
}

func (m *mockApp) Mount(_ context.Context, device string, passphrase domain.Secret) (string, error) {
	m.mounted = device
	if passphrase != nil {
		m.hadSecret = true
		m.secret = append([]byte(nil), passphrase.Bytes()...)
	}
	return "", m.err
}

func (m *mockApp) Unmount(context.Context) (string, error) {
	return "", m.err
}

func (m *mockApp) UpdateVMConfig(_ context.Context, cfg domain.VMConfig) error {
	m.config = cfg
	return m.err
}

func (m *mockApp) CreateAction(_ context.Context, action domain.CustomAction) error {
	m.action = action
	return m.err
}

func (m *mockApp) AddPackages(_ context.Context, pkgs []string) error {
	m.packages = pkgs
	if len(pkgs) == 0 {
		return domain.ErrNoPackages
	}
	return m.err
}

func (m *mockApp) Logs(_ context.Context, n int) ([]string, error) {
	m.logLines = n
	return []string{"first", "second"}, m.err
}

func execute(t *testing.T, app commands.Application, stdin string, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(app)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetInput(strings.NewReader(stdin))
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Status(t *testing.T) {
	t.Run("prints the mount", func(t *testing.T) {
		m := &mockApp{status: domain.MountStatus{
			Mounted:    true,
			Device:     domain.Ptr("/dev/disk6s1"),
			MountPoint: domain.Ptr("/Volumes/data"),
			Filesystem: domain.Ptr("nfs"),
		}}

		out, err := execute(t, m, "", "status")

		require.NoError(t, err)
		assert.Contains(t, out, "Mounted")
		assert.Contains(t, out, "/Volumes/data")
	})

	t.Run("json mode", func(t *testing.T) {
		m := &mockApp{status: domain.MountStatus{OrphanedInstance: true, VMRunning: true}}

		out, err := execute(t, m, "", "--json", "status")

		require.NoError(t, err)
		var got domain.MountStatus
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.OrphanedInstance)
	})

	t.Run("output json flag", func(t *testing.T) {
		m := &mockApp{status: domain.MountStatus{VMRunning: true}}

		out, err := execute(t, m, "", "--output", "json", "status")

		require.NoError(t, err)
		var got domain.MountStatus
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.VMRunning)
	})

	t.Run("unknown output format", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "", "--output", "yaml", "status")

		require.ErrorIs(t, err, domain.ErrUnknownOutput)
	})

	t.Run("exit code while mounted", func(t *testing.T) {
		m := &mockApp{status: domain.MountStatus{Mounted: true}}

		_, err := execute(t, m, "", "status", "--exit-code")

		require.ErrorIs(t, err, domain.ErrStillMounted)
	})
}

func TestCLI_SetOutputDetector(t *testing.T) {
	var gotMode string
	cli := commands.New(&mockApp{})
	cli.SetOutputDetector(func(_ io.Writer, mode string) bool {
		gotMode = mode
		return true
	})
	var hookJSON bool
	cli.SetLogHook(func(jsonMode, _ bool) { hookJSON = jsonMode })
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, "auto", gotMode)
	assert.True(t, hookJSON)
	var got map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "0.9.1", got["helper"])
}

func TestCommands_Mount(t *testing.T) {
	t.Run("without passphrase", func(t *testing.T) {
		m := &mockApp{}

		out, err := execute(t, m, "", "mount", "/dev/disk6s1")

		require.NoError(t, err)
		assert.Equal(t, "/dev/disk6s1", m.mounted)
		assert.False(t, m.hadSecret)
		assert.Contains(t, out, "Mounted /dev/disk6s1")
	})

	t.Run("passphrase from stdin", func(t *testing.T) {
		m := &mockApp{}

		_, err := execute(t, m, "hunter2\nignored\n", "mount", "/dev/disk7s1", "--passphrase-stdin")

		require.NoError(t, err)
		assert.True(t, m.hadSecret)
		assert.Equal(t, []byte("hunter2"), m.secret)
	})

	t.Run("empty passphrase", func(t *testing.T) {
		m := &mockApp{}

		_, err := execute(t, m, "\n", "mount", "/dev/disk7s1", "--passphrase-stdin")

		require.ErrorIs(t, err, domain.ErrNoPassphrase)
		assert.Empty(t, m.mounted)
	})

	t.Run("prompt needs a terminal", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "", "mount", "/dev/disk7s1", "--ask-passphrase")

		require.ErrorIs(t, err, domain.ErrNoPassphrase)
	})

	t.Run("passphrase flags are exclusive", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "", "mount", "/dev/disk7s1", "--ask-passphrase", "--passphrase-stdin")

		require.Error(t, err)
	})

	t.Run("requires a device", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "", "mount")

		require.Error(t, err)
	})
}

func TestCommands_Unmount(t *testing.T) {
	_, err := execute(t, &mockApp{err: errors.New("simulated error")}, "", "unmount")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_Disks(t *testing.T) {
	out, err := execute(t, &mockApp{}, "", "disks")

	require.NoError(t, err)
	assert.Contains(t, out, "/dev/disk6 (SanDisk) 64.0 GB")
	assert.Contains(t, out, "/dev/disk6s1")
	assert.NotContains(t, out, "No mountable")
}

func TestCommands_ConfigSet(t *testing.T) {
	t.Run("only changed flags", func(t *testing.T) {
		m := &mockApp{}

		_, err := execute(t, m, "", "config", "set", "--ram", "2048")

		require.NoError(t, err)
		require.NotNil(t, m.config.RAMMB)
		assert.Equal(t, uint32(2048), *m.config.RAMMB)
		assert.Nil(t, m.config.VCPUs)
		assert.Nil(t, m.config.LogLevel)
	})

	t.Run("nothing to change", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "", "config", "set")

		require.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestCommands_ActionsCreate(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "", "actions", "create", "zfs",
		"--description", "import pools",
		"--before-mount", "zpool import -a",
		"--env", "POOL=tank,MODE=ro",
	)

	require.NoError(t, err)
	assert.Equal(t, domain.CustomAction{
		Name:        "zfs",
		Description: "import pools",
		BeforeMount: "zpool import -a",
		Environment: []string{"POOL=tank", "MODE=ro"},
	}, m.action)
}

func TestCommands_PackagesAdd(t *testing.T) {
	m := &mockApp{}

	out, err := execute(t, m, "", "packages", "add", "xfsprogs", "zfs")
	require.NoError(t, err)
	assert.Equal(t, []string{"xfsprogs", "zfs"}, m.packages)
	assert.Contains(t, out, "Added 2 package(s)")

	_, err = execute(t, m, "", "packages", "add")
	require.ErrorIs(t, err, domain.ErrNoPackages)
}

func TestCommands_Logs(t *testing.T) {
	m := &mockApp{}

	out, err := execute(t, m, "", "logs", "-n", "2")

	require.NoError(t, err)
	assert.Equal(t, 2, m.logLines)
	assert.Equal(t, "first\nsecond\n", out)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, "anylinuxfs version 0.9.1")
}

func TestRoot_Help(t *testing.T) {
	out, err := execute(t, &mockApp{}, "", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}
