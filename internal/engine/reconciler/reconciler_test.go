package reconciler_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports/mocks"
	"go.trai.ch/mountbar/internal/engine/reconciler"
	"go.uber.org/mock/gomock"
)

const (
	systemTable   = "/dev/disk3s1s1 on / (apfs, sealed, local, read-only, journaled)\n"
	exportedTable = systemTable + "localhost:/mnt/linux on /Volumes/linux (nfs, asynchronous)\n"
)

type testLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *testLogger) Debug(string, ...any) {}
func (l *testLogger) Info(string, ...any)  {}
func (l *testLogger) Error(error)          {}

func (l *testLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

type fixture struct {
	helper  *mocks.MockHelperExecutor
	prober  *mocks.MockProber
	control *mocks.MockStatusClient
	disks   *mocks.MockDiskUtility
	runner  *mocks.MockCommandRunner
	logger  *testLogger
	rec     *reconciler.Reconciler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		helper:  mocks.NewMockHelperExecutor(ctrl),
		prober:  mocks.NewMockProber(ctrl),
		control: mocks.NewMockStatusClient(ctrl),
		disks:   mocks.NewMockDiskUtility(ctrl),
		runner:  mocks.NewMockCommandRunner(ctrl),
		logger:  &testLogger{},
	}
	f.control.EXPECT().SocketPath().Return("/tmp/anylinuxfs.sock").AnyTimes()
	f.rec = reconciler.New(f.helper, f.prober, f.control, f.disks, f.runner, f.logger)
	return f
}

func table(out string) domain.ProbeEntry {
	return domain.ProbeEntry{Output: out, Success: true, CapturedAt: time.Now()}
}

var errRefused = errors.New("connection refused")

func TestStatus_SocketWinsOverMountTable(t *testing.T) {
	f := newFixture(t)
	f.control.EXPECT().Query(gomock.Any()).Return(domain.RuntimeInfo{
		Device:     domain.Ptr("/dev/disk6s1"),
		MountPoint: domain.Ptr("/Volumes/data"),
		Filesystem: domain.Ptr("ext4"),
		VMPID:      domain.Ptr(uint32(4242)),
		RAMMB:      domain.Ptr(uint32(1024)),
		VCPUs:      domain.Ptr(uint32(2)),
	}, nil)

	st := f.rec.Status(t.Context())

	assert.True(t, st.Mounted)
	assert.True(t, st.VMRunning)
	assert.False(t, st.OrphanedInstance)
	assert.Equal(t, "/dev/disk6s1", *st.Device)
	assert.Equal(t, "/Volumes/data", *st.MountPoint)
	assert.Equal(t, "ext4", *st.Filesystem)
	assert.Equal(t, uint32(1024), *st.RAMMB)
	assert.Equal(t, uint32(2), *st.VCPUs)
}

func TestStatus_SocketWithoutVMPID(t *testing.T) {
	f := newFixture(t)
	f.control.EXPECT().Query(gomock.Any()).Return(domain.RuntimeInfo{
		MountPoint: domain.Ptr("/Volumes/data"),
	}, nil)

	st := f.rec.Status(t.Context())

	assert.True(t, st.Mounted)
	assert.False(t, st.VMRunning)
}

func TestStatus_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		info     domain.RuntimeInfo
		queryErr error
		table    domain.ProbeEntry
		tableErr error
		running  *bool
		want     domain.MountStatus
	}{
		{
			name:     "mount table after socket failure",
			queryErr: errRefused,
			table:    table(exportedTable),
			want: domain.MountStatus{
				Mounted:    true,
				Device:     domain.Ptr("localhost:/mnt/linux"),
				MountPoint: domain.Ptr("/Volumes/linux"),
				Filesystem: domain.Ptr(domain.FallbackFilesystem),
				VMRunning:  true,
			},
		},
		{
			name:  "mount table when socket reports no mount point",
			info:  domain.RuntimeInfo{Device: domain.Ptr("/dev/disk6s1")},
			table: table(exportedTable),
			want: domain.MountStatus{
				Mounted:    true,
				Device:     domain.Ptr("localhost:/mnt/linux"),
				MountPoint: domain.Ptr("/Volumes/linux"),
				Filesystem: domain.Ptr(domain.FallbackFilesystem),
				VMRunning:  true,
			},
		},
		{
			name:     "orphaned instance",
			queryErr: errRefused,
			table:    table(systemTable),
			running:  domain.Ptr(true),
			want:     domain.MountStatus{VMRunning: true, OrphanedInstance: true},
		},
		{
			name:     "nothing running",
			queryErr: errRefused,
			table:    table(systemTable),
			running:  domain.Ptr(false),
			want:     domain.MountStatus{},
		},
		{
			name:     "mount probe failure falls through",
			queryErr: errRefused,
			tableErr: errors.New("spawn failed"),
			running:  domain.Ptr(false),
			want:     domain.MountStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.control.EXPECT().Query(gomock.Any()).Return(tt.info, tt.queryErr)
			f.prober.EXPECT().MountTable(gomock.Any()).Return(tt.table, tt.tableErr)
			if tt.running != nil {
				f.prober.EXPECT().HelperRunning(gomock.Any()).Return(*tt.running)
			}

			assert.Equal(t, tt.want, f.rec.Status(t.Context()))
		})
	}
}

type fakeSecret struct{ destroyed bool }

func (s *fakeSecret) Bytes() []byte { return []byte("hunter2") }
func (s *fakeSecret) Destroy()      { s.destroyed = true }

func mountInvocation(secret domain.Secret) gomock.Matcher {
	return gomock.Cond(func(inv domain.Invocation) bool {
		return len(inv.Args) == 2 && inv.Args[0] == "mount" && inv.Args[1] == "/dev/disk6s1" &&
			inv.Elevated && inv.Timeout == domain.MountTimeout && inv.Passphrase == secret
	})
}

func TestMount_ObservedAfterPolling(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		secret := &fakeSecret{}
		f.helper.EXPECT().Execute(gomock.Any(), mountInvocation(secret)).Return("mounted /dev/disk6s1\n", nil)
		f.prober.EXPECT().InvalidateMounts().Times(4)
		f.prober.EXPECT().MountTable(gomock.Any()).Return(table(systemTable), nil).Times(2)
		f.prober.EXPECT().MountTable(gomock.Any()).Return(table(exportedTable), nil).Times(1)

		start := time.Now()
		out, err := f.rec.Mount(t.Context(), "/dev/disk6s1", secret)

		require.NoError(t, err)
		assert.Equal(t, "mounted /dev/disk6s1\n", out)
		assert.Equal(t, 500*time.Millisecond, time.Since(start))
	})
}

func TestMount_ObservedDespiteHelperFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.helper.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", domain.Timeout(60))
		f.prober.EXPECT().InvalidateMounts().Times(2)
		f.prober.EXPECT().MountTable(gomock.Any()).Return(table(exportedTable), nil)

		out, err := f.rec.Mount(t.Context(), "/dev/disk6s1", nil)

		require.NoError(t, err)
		assert.Equal(t, reconciler.MountedMessage, out)
	})
}

func TestMount_VerificationFailsAfterBudget(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		wantReason string
	}{
		{
			name:       "generic timeout",
			output:     "starting VM\n",
			wantReason: "Mount failed: filesystem not mounted after timeout",
		},
		{
			name:       "filesystem error",
			output:     "mount: wrong fs type, bad option, bad superblock\n",
			wantReason: "Mount failed: mount: wrong fs type, bad option, bad superblock\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				f := newFixture(t)
				f.helper.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(tt.output, nil)
				f.prober.EXPECT().InvalidateMounts().Times(domain.MountSettle.Attempts + 1)
				f.prober.EXPECT().MountTable(gomock.Any()).Return(table(systemTable), nil).Times(domain.MountSettle.Attempts)

				start := time.Now()
				out, err := f.rec.Mount(t.Context(), "/dev/disk6s1", nil)

				require.ErrorIs(t, err, domain.ErrMountVerificationFailed)
				assert.Empty(t, out)
				assert.Equal(t, tt.wantReason, domain.Reason(err))
				assert.Equal(t, 39*250*time.Millisecond, time.Since(start))
			})
		})
	}
}

func TestMount_HelperFailureSurfacesWhenNeverMounted(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.helper.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", domain.HelperFailure("no such device"))
		f.prober.EXPECT().InvalidateMounts().AnyTimes()
		f.prober.EXPECT().MountTable(gomock.Any()).Return(table(systemTable), nil).Times(domain.MountSettle.Attempts)

		_, err := f.rec.Mount(t.Context(), "/dev/disk6s1", nil)

		require.ErrorIs(t, err, domain.ErrHelperExecutionFailed)
		assert.Equal(t, "no such device", domain.Output(err))
	})
}

func TestMount_ElevationFailureSkipsPolling(t *testing.T) {
	for _, sentinel := range []error{domain.ErrIncorrectPassword, domain.ErrAuthenticationCancelled, domain.ErrHelperNotFound} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			f := newFixture(t)
			f.helper.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", sentinel)

			_, err := f.rec.Mount(t.Context(), "/dev/disk6s1", nil)

			require.ErrorIs(t, err, sentinel)
		})
	}
}

func TestMount_CancelledWhileSettling(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(t.Context())
		f.helper.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", nil)
		f.prober.EXPECT().InvalidateMounts().AnyTimes()
		f.prober.EXPECT().MountTable(gomock.Any()).Return(table(systemTable), nil).AnyTimes()

		go func() {
			time.Sleep(time.Second)
			cancel()
		}()

		_, err := f.rec.Mount(ctx, "/dev/disk6s1", nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestUnmount_WaitsForVMExit(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.helper.EXPECT().Execute(gomock.Any(), domain.Invocation{Args: []string{"unmount"}}).Return("unmounted\n", nil)
		gomock.InOrder(
			f.prober.EXPECT().InvalidateProcesses(),
			f.prober.EXPECT().HelperRunning(gomock.Any()).Return(true),
			f.prober.EXPECT().InvalidateProcesses(),
			f.prober.EXPECT().HelperRunning(gomock.Any()).Return(true),
			f.prober.EXPECT().InvalidateProcesses(),
			f.prober.EXPECT().HelperRunning(gomock.Any()).Return(false),
			f.prober.EXPECT().InvalidateAll(),
		)

		start := time.Now()
		out, err := f.rec.Unmount(t.Context())

		require.NoError(t, err)
		assert.Equal(t, "unmounted\n", out)
		assert.Equal(t, 500*time.Millisecond, time.Since(start))
		assert.Empty(t, f.logger.warns)
	})
}

func TestUnmount_VMNeverExits(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.helper.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", nil)
		f.prober.EXPECT().InvalidateProcesses().Times(domain.MountSettle.Attempts)
		f.prober.EXPECT().HelperRunning(gomock.Any()).Return(true).Times(domain.MountSettle.Attempts)
		f.prober.EXPECT().InvalidateAll()

		_, err := f.rec.Unmount(t.Context())

		require.NoError(t, err)
		assert.Equal(t, []string{"helper VM still running after unmount"}, f.logger.warns)
	})
}

func TestUnmount_HelperFailure(t *testing.T) {
	f := newFixture(t)
	f.helper.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", domain.HelperFailure("not mounted"))
	f.prober.EXPECT().InvalidateAll()

	_, err := f.rec.Unmount(t.Context())

	require.ErrorIs(t, err, domain.ErrHelperExecutionFailed)
}

func TestEject_NotMounted(t *testing.T) {
	f := newFixture(t)
	f.control.EXPECT().Query(gomock.Any()).Return(domain.RuntimeInfo{}, errRefused)
	f.prober.EXPECT().MountTable(gomock.Any()).Return(table(systemTable), nil)
	f.prober.EXPECT().HelperRunning(gomock.Any()).Return(false)
	f.disks.EXPECT().Eject(gomock.Any(), "disk6").Return("Disk disk6 ejected", nil)
	f.prober.EXPECT().InvalidateAll()

	out, err := f.rec.Eject(t.Context(), "/dev/disk6s1")

	require.NoError(t, err)
	assert.Equal(t, "Disk disk6 ejected", out)
}

func TestEject_UnmountsFirst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.control.EXPECT().Query(gomock.Any()).Return(domain.RuntimeInfo{MountPoint: domain.Ptr("/Volumes/data")}, nil)
		f.helper.EXPECT().Execute(gomock.Any(), domain.Invocation{Args: []string{"unmount"}}).Return("", nil)
		f.prober.EXPECT().InvalidateProcesses()
		f.prober.EXPECT().HelperRunning(gomock.Any()).Return(false)
		f.prober.EXPECT().InvalidateAll().Times(2)
		f.prober.EXPECT().InvalidateMounts().Times(2)
		f.prober.EXPECT().MountTable(gomock.Any()).Return(table(exportedTable), nil)
		f.prober.EXPECT().MountTable(gomock.Any()).Return(table(systemTable), nil)
		f.disks.EXPECT().Eject(gomock.Any(), "disk6").Return("Disk disk6 ejected", nil)

		start := time.Now()
		out, err := f.rec.Eject(t.Context(), "/dev/disk6s2")

		require.NoError(t, err)
		assert.Equal(t, "Disk disk6 ejected", out)
		assert.Equal(t, 500*time.Millisecond, time.Since(start))
	})
}

func TestEject_StillMountedWarns(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.control.EXPECT().Query(gomock.Any()).Return(domain.RuntimeInfo{MountPoint: domain.Ptr("/Volumes/data")}, nil)
		f.helper.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", nil)
		f.prober.EXPECT().InvalidateProcesses()
		f.prober.EXPECT().HelperRunning(gomock.Any()).Return(false)
		f.prober.EXPECT().InvalidateAll().Times(2)
		f.prober.EXPECT().InvalidateMounts().Times(domain.EjectSettle.Attempts)
		f.prober.EXPECT().MountTable(gomock.Any()).Return(table(exportedTable), nil).Times(domain.EjectSettle.Attempts)
		f.disks.EXPECT().Eject(gomock.Any(), "disk6").Return("", nil)

		start := time.Now()
		_, err := f.rec.Eject(t.Context(), "disk6")

		require.NoError(t, err)
		assert.Equal(t, 9*500*time.Millisecond, time.Since(start))
		assert.Equal(t, []string{"volume still mounted, ejecting anyway"}, f.logger.warns)
	})
}

func TestEject_UnmountFailure(t *testing.T) {
	f := newFixture(t)
	f.control.EXPECT().Query(gomock.Any()).Return(domain.RuntimeInfo{MountPoint: domain.Ptr("/Volumes/data")}, nil)
	f.helper.EXPECT().Execute(gomock.Any(), gomock.Any()).Return("", domain.HelperFailure("busy"))
	f.prober.EXPECT().InvalidateAll()

	_, err := f.rec.Eject(t.Context(), "/dev/disk6s1")

	require.ErrorIs(t, err, domain.ErrHelperExecutionFailed)
}

func TestEject_InvalidDevice(t *testing.T) {
	f := newFixture(t)

	_, err := f.rec.Eject(t.Context(), "/dev/sda1")

	require.ErrorIs(t, err, domain.ErrInvalidDevice)
}

func TestForceCleanup(t *testing.T) {
	tests := []struct {
		name       string
		krunExit   int
		helperExit int
		socket     bool
		want       string
	}{
		{name: "everything", socket: true, want: "Cleaned up: krun, anylinuxfs, socket"},
		{name: "only socket", krunExit: 1, helperExit: 1, socket: true, want: "Cleaned up: socket"},
		{name: "only vm", helperExit: 1, want: "Cleaned up: krun"},
		{name: "nothing", krunExit: 1, helperExit: 1, want: "No processes found to clean up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			helper := mocks.NewMockHelperExecutor(ctrl)
			prober := mocks.NewMockProber(ctrl)
			control := mocks.NewMockStatusClient(ctrl)
			disks := mocks.NewMockDiskUtility(ctrl)
			runner := mocks.NewMockCommandRunner(ctrl)

			socket := filepath.Join(t.TempDir(), "anylinuxfs.sock")
			if tt.socket {
				require.NoError(t, os.WriteFile(socket, nil, 0o600))
			}
			control.EXPECT().SocketPath().Return(socket)
			runner.EXPECT().Run(gomock.Any(), "pkill", "-9", "krun").
				Return(domain.CommandResult{ExitCode: tt.krunExit}, nil)
			runner.EXPECT().Run(gomock.Any(), "pkill", "-9", "-f", "anylinuxfs").
				Return(domain.CommandResult{ExitCode: tt.helperExit}, nil)
			prober.EXPECT().InvalidateAll()

			rec := reconciler.New(helper, prober, control, disks, runner, &testLogger{})
			out, err := rec.ForceCleanup(t.Context())

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
			assert.NoFileExists(t, socket)
		})
	}
}

func TestForceCleanup_PkillMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	control := mocks.NewMockStatusClient(ctrl)
	runner := mocks.NewMockCommandRunner(ctrl)
	prober := mocks.NewMockProber(ctrl)

	control.EXPECT().SocketPath().Return(filepath.Join(t.TempDir(), "absent.sock"))
	runner.EXPECT().Run(gomock.Any(), "pkill", gomock.Any()).
		Return(domain.CommandResult{}, errors.New("command not found")).Times(2)
	prober.EXPECT().InvalidateAll()

	rec := reconciler.New(nil, prober, control, nil, runner, &testLogger{})
	out, err := rec.ForceCleanup(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "No processes found to clean up", out)
}
