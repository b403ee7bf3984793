package initcmd

import (
	"io"
	"io/fs"
	"os"
)

// TempFile is the staging file an options file is written through before
// it is renamed into place.
type TempFile interface {
	io.WriteCloser
	Name() string
	Chmod(fs.FileMode) error
	Sync() error
}

// FS is the subset of the os package the init command touches.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	MkdirAll(dir string, perm fs.FileMode) error
	CreateTemp(dir, pattern string) (TempFile, error)
	Rename(from, to string) error
	Remove(name string) error
}

// OSFS writes to the real filesystem.
type OSFS struct{}

var _ FS = OSFS{}

func (OSFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (OSFS) MkdirAll(dir string, perm fs.FileMode) error {
	return os.MkdirAll(dir, perm)
}

func (OSFS) CreateTemp(dir, pattern string) (TempFile, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (OSFS) Rename(from, to string) error {
	return os.Rename(from, to)
}

func (OSFS) Remove(name string) error {
	return os.Remove(name)
}
