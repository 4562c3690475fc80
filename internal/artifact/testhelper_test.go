package artifact

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// faultSystem wraps RealSystem with per-path error injection and a recorded installer runner.
type faultSystem struct {
	RealSystem
	renameErr  error
	copyErr    error
	removeErrs map[string]error
	mkdirErrs  map[string]error
	createErrs map[string]error
	runErr     error
	ran        [][]string
}

func newFaultSystem() *faultSystem {
	return &faultSystem{
		removeErrs: map[string]error{},
		mkdirErrs:  map[string]error{},
		createErrs: map[string]error{},
	}
}

func (f *faultSystem) Rename(oldpath string, newpath string) error {
	if f.renameErr != nil {
		return f.renameErr
	}
	return f.RealSystem.Rename(oldpath, newpath)
}

// CopyTree copies for real before failing, leaving a partial destination behind.
func (f *faultSystem) CopyTree(src string, dest string) error {
	if f.copyErr != nil {
		_ = f.RealSystem.CopyTree(src, dest)
		return f.copyErr
	}
	return f.RealSystem.CopyTree(src, dest)
}

func (f *faultSystem) RemoveAll(path string) error {
	if err, ok := f.removeErrs[filepath.Clean(path)]; ok {
		return err
	}
	return f.RealSystem.RemoveAll(path)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[filepath.Clean(path)]; ok {
		return err
	}
	return f.RealSystem.MkdirAll(path, perm)
}

func (f *faultSystem) CreateFile(name string, perm os.FileMode) (io.WriteCloser, error) {
	if err, ok := f.createErrs[filepath.Clean(name)]; ok {
		return nil, err
	}
	return f.RealSystem.CreateFile(name, perm)
}

func (f *faultSystem) RunInstaller(_ context.Context, argv []string) error {
	f.ran = append(f.ran, argv)
	return f.runErr
}

// writeTree creates files (relative path -> content) under root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// makeDownload creates a download folder with the given files and modification time.
func makeDownload(t *testing.T, downloads string, name string, modTime time.Time, files map[string]string) string {
	t.Helper()
	folder := filepath.Join(downloads, name)
	require.NoError(t, os.MkdirAll(folder, 0o755))
	writeTree(t, folder, files)
	require.NoError(t, os.Chtimes(folder, modTime, modTime))
	return folder
}

func newTestManager(t *testing.T, sys System) (*Manager, string) {
	t.Helper()
	downloads := t.TempDir()
	return &Manager{
		System:       sys,
		DownloadsDir: downloads,
		Extensions:   []string{".exe", ".msi"},
		Launchers:    map[string][]string{".msi": {"msiexec", "/i"}},
		Out:          io.Discard,
	}, downloads
}
