package types_test

import (
	"testing"

	"github.com/arthur-debert/envpath/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    types.Target
		wantErr bool
	}{
		{"", types.TargetProfile, false},
		{"profile", types.TargetProfile, false},
		{" RC ", types.TargetRC, false},
		{"login", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := types.ParseTarget(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		in      string
		want    types.State
		wantErr bool
	}{
		{"", types.StatePresent, false},
		{"present", types.StatePresent, false},
		{"Absent", types.StateAbsent, false},
		{"gone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := types.ParseState(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvFromOS(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	t.Setenv("SHELL", "/usr/bin/zsh")
	t.Setenv("ZDOTDIR", "/home/u/.zsh")
	t.Setenv("XDG_CONFIG_HOME", "/home/u/.cfg")

	env := types.EnvFromOS()

	assert.Equal(t, "/home/u", env.Home)
	assert.Equal(t, "/usr/bin/zsh", env.Shell)
	assert.Equal(t, "/home/u/.zsh", env.ZDotDir)
	assert.Equal(t, "/home/u/.cfg", env.XDGConfigHome)
	assert.Equal(t, "/etc/passwd", env.Passwd())
	assert.Equal(t, "/etc/passwd", types.Env{}.Passwd())
}
