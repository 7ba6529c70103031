// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/envpath/pkg/filesystem"
	"github.com/arthur-debert/envpath/pkg/types"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// DefaultHome is the home directory used by memory environments
const DefaultHome = "/home/u"

// FileTree maps paths relative to the home directory to file contents
type FileTree map[string]string

// TestEnvironment provides a home directory, a filesystem and a matching
// environment snapshot
type TestEnvironment struct {
	HomeDir string
	FS      types.FS
	Env     types.Env

	// Environment type
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. The snapshot has
// HOME set and SHELL pointing at bash.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.HomeDir = DefaultHome
		env.FS = NewTestFS()
		require.NoError(t, env.FS.MkdirAll(env.HomeDir, 0755))
	case EnvIsolated:
		env.HomeDir = filepath.Join(t.TempDir(), "home")
		env.FS = filesystem.NewOS()
		require.NoError(t, os.MkdirAll(env.HomeDir, 0755))
	default:
		t.Fatalf("unknown environment type: %d", envType)
	}

	env.Env = types.Env{
		Home:       env.HomeDir,
		Shell:      "/bin/bash",
		PasswdFile: filepath.Join(env.HomeDir, "..", "passwd"),
	}
	return env
}

// WithShell sets $SHELL in the snapshot
func (env *TestEnvironment) WithShell(shellPath string) *TestEnvironment {
	env.Env.Shell = shellPath
	return env
}

// WithFileTree writes files below the home directory
func (env *TestEnvironment) WithFileTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	for rel, content := range tree {
		env.WriteFile(env.Path(rel), content)
	}
	return env
}

// WithPasswd writes the passwd file the snapshot points at
func (env *TestEnvironment) WithPasswd(lines ...string) *TestEnvironment {
	env.t.Helper()
	env.WriteFile(env.Env.PasswdFile, strings.Join(lines, "\n")+"\n")
	return env
}

// Path joins rel onto the home directory
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.HomeDir, rel)
}

// WriteFile writes an absolute path, creating parent directories
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	require.NoError(env.t, env.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, env.FS.WriteFile(path, []byte(content), 0644))
}

// ReadFile returns the content of an absolute path, failing the test if
// it cannot be read
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(path)
	require.NoError(env.t, err)
	return string(data)
}

// Exists reports whether path exists
func (env *TestEnvironment) Exists(path string) bool {
	_, err := env.FS.Stat(path)
	return err == nil
}
