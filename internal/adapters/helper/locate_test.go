package helper_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mountbar/internal/adapters/helper"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	return path
}

func TestLocator_Order(t *testing.T) {
	dir := t.TempDir()
	pinned := touch(t, filepath.Join(dir, "pinned"))
	fromEnv := touch(t, filepath.Join(dir, "env"))
	fromWhich := touch(t, filepath.Join(dir, "which"))
	fromSearch := touch(t, filepath.Join(dir, "search"))
	missing := filepath.Join(dir, "missing")

	tests := []struct {
		name    string
		pinned  string
		env     string
		which   *domain.CommandResult
		search  []string
		want    string
		wantErr error
	}{
		{name: "pinned wins", pinned: pinned, env: fromEnv, want: pinned},
		{name: "env when pin missing", pinned: missing, env: fromEnv, want: fromEnv},
		{
			name:  "which",
			env:   missing,
			which: &domain.CommandResult{Stdout: fromWhich + "\n"},
			want:  fromWhich,
		},
		{
			name:   "search paths",
			which:  &domain.CommandResult{ExitCode: 1},
			search: []string{missing, fromSearch},
			want:   fromSearch,
		},
		{
			name:    "not found",
			which:   &domain.CommandResult{Stdout: missing},
			search:  []string{missing},
			wantErr: domain.ErrHelperNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(domain.HelperPathEnv, tt.env)
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockCommandRunner(ctrl)
			if tt.which != nil {
				runner.EXPECT().Run(gomock.Any(), "which", "anylinuxfs").Return(*tt.which, nil)
			}

			l := helper.NewLocator(tt.pinned, tt.search, runner)
			got, err := l.Locate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocator_CachesResult(t *testing.T) {
	t.Setenv(domain.HelperPathEnv, "")
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), "which", "anylinuxfs").
		Return(domain.CommandResult{}, errors.New("no which")).Times(1)

	l := helper.NewLocator("", nil, runner)
	_, err1 := l.Locate()
	_, err2 := l.Locate()
	assert.ErrorIs(t, err1, domain.ErrHelperNotFound)
	assert.ErrorIs(t, err2, domain.ErrHelperNotFound)
}
