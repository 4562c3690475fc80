package artifact

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/otiai10/copy"

	"github.com/conn-castle/weget/internal/messages"
)

// System abstracts the filesystem and process operations used by the artifact pipeline.
// This interface is package-local so tests can substitute individual operations.
type System interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	Rename(oldpath string, newpath string) error
	Open(name string) (io.ReadCloser, error)
	CreateFile(name string, perm os.FileMode) (io.WriteCloser, error)
	WalkDir(root string, fn fs.WalkDirFunc) error
	CopyTree(src string, dest string) error
	RunInstaller(ctx context.Context, argv []string) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// ReadDir returns the entries of the named directory sorted by file name.
func (RealSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Rename renames (moves) oldpath to newpath.
func (RealSystem) Rename(oldpath string, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Open opens the named file for reading.
func (RealSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// CreateFile creates or truncates the named file with perm.
func (RealSystem) CreateFile(name string, perm os.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
}

// WalkDir walks the file tree rooted at root.
func (RealSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// CopyTree copies the directory tree at src to dest, keeping file modes and
// recreating symlinks as links.
func (RealSystem) CopyTree(src string, dest string) error {
	return copy.Copy(src, dest, copy.Options{
		OnSymlink: func(string) copy.SymlinkAction { return copy.Shallow },
		Sync:      true,
	})
}

// RunInstaller runs argv attached to the console and waits for it to exit.
func (RealSystem) RunInstaller(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New(messages.ArtifactInstallerEmpty)
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
