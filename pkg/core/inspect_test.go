// pkg/core/inspect_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Memory FS
// PURPOSE: Test the read-only operations Status, Snippet and Files

package core_test

import (
	"testing"

	"github.com/arthur-debert/envpath/pkg/core"
	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	opts := core.Options{Path: binDir, Shell: "bash"}

	report, err := core.Status(opts, env.Env, env.FS)
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, core.FileStatus{Path: "/home/u/.bash_profile"}, report.Files[0])
	assert.False(t, report.Present())

	_, err = core.EnsurePath(opts, env.Env, env.FS)
	require.NoError(t, err)

	report, err = core.Status(opts, env.Env, env.FS)
	require.NoError(t, err)
	assert.Equal(t, core.FileStatus{Path: "/home/u/.bash_profile", Exists: true, Present: true}, report.Files[0])
	assert.True(t, report.Present())
	assert.Equal(t, "bash", report.Shell)
	assert.Equal(t, binDir, report.Path)
}

func TestStatus_NoFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	report, err := core.Status(core.Options{Path: binDir, Shell: "sh", Target: "rc"}, env.Env, env.FS)

	require.NoError(t, err)
	assert.Empty(t, report.Files)
	assert.False(t, report.Present())
	assert.NotEmpty(t, report.Msg)
}

func TestStatus_DoesNotWrite(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly).
		WithFileTree(testutil.FileTree{".zprofile": "export A=1"})

	report, err := core.Status(core.Options{Path: binDir, Shell: "zsh"}, env.Env, env.FS)

	require.NoError(t, err)
	assert.Equal(t, core.FileStatus{Path: "/home/u/.zprofile", Exists: true}, report.Files[0])
	assert.Equal(t, "export A=1", env.ReadFile("/home/u/.zprofile"))
}

func TestSnippet(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result, err := core.Snippet(core.Options{Path: binDir, Shell: "zsh"}, env.Env, env.FS)
	require.NoError(t, err)
	assert.Equal(t, "zsh", result.Shell)
	assert.Equal(t, `[[ -d "/home/u/.local/bin" ]] && path+=("/home/u/.local/bin")`, result.Snippet)

	_, err = core.Snippet(core.Options{}, env.Env, env.FS)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	result, err := core.Files(core.Options{Shell: "zsh", Target: "rc", ZDotDir: "/etc/zsh"}, env.Env, env.FS)
	require.NoError(t, err)
	assert.Equal(t, []string{"/etc/zsh/.zshrc"}, result.Files)
	assert.Empty(t, result.Msg)

	result, err = core.Files(core.Options{Shell: "sh", Target: "rc"}, env.Env, env.FS)
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Equal(t, "No suitable config file for shell 'sh' and target 'rc'", result.Msg)
}
