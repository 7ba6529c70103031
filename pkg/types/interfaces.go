package types

import (
	"io"
	"io/fs"
)

// FS defines the filesystem operations envpath needs.
// Implementations live in pkg/filesystem (OS and afero backed).
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
}

// File is an open file handle that can be read, appended to and rewritten
// in place. Both *os.File and afero.File satisfy it.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
	Truncate(size int64) error
}
