package csvfile

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
	OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error)
}

// RealFileSystem implements FileSystem using the real file system.
type RealFileSystem struct{}

// Open opens the file for reading.
func (r *RealFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // intentional: path supplied by caller
}

// OpenFile opens the file for writing with the given flags.
func (r *RealFileSystem) OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(name, flag, perm) //nolint:gosec // intentional: path supplied by caller
}
