package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/envpath/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	dir := filepath.Join(root, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(dir, 0755))

	file := filepath.Join(dir, "config.fish")
	require.NoError(t, fsys.WriteFile(file, []byte("first\n"), 0644))

	info, err := fsys.Stat(file)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	// Read, append and rewrite through a single handle
	f, err := fsys.OpenFile(file, os.O_RDWR, 0644)
	require.NoError(t, err)
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(content))

	_, err = f.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	_, err = f.Write([]byte("second\n"))
	require.NoError(t, err)

	require.NoError(t, f.Truncate(0))
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	_, err = f.Write([]byte("rewritten\n"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := fsys.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "rewritten\n", string(data))

	_, err = fsys.ReadFile(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fsys.Remove(file))
	_, err = fsys.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestNewAferoFS(t *testing.T) {
	exerciseFS(t, NewAferoFS(afero.NewMemMapFs()), "/home/u")
}

func TestAferoReadFileRejectsDirectory(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/home/u/.config", 0755))

	_, err := fsys.ReadFile("/home/u/.config")
	assert.Error(t, err)
}
