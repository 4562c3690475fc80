package artifact

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/klauspost/compress/zip"

	"github.com/conn-castle/weget/internal/messages"
)

// archivePerm is the mode of written zip files.
const archivePerm fs.FileMode = 0o644

// archive zips folder into <folder>.zip beside it and removes the folder.
// Entry names are relative to folder and use forward slashes.
func (m *Manager) archive(folder string) (string, error) {
	zipPath := filepath.Clean(folder) + ".zip"
	if err := m.writeZip(folder, zipPath); err != nil {
		_ = m.System.RemoveAll(zipPath)
		return "", fmt.Errorf(messages.ArtifactArchiveFmt, folder, err)
	}
	if err := m.System.RemoveAll(folder); err != nil {
		return "", fmt.Errorf(messages.ArtifactRemoveArchivedFmt, folder, err)
	}
	return zipPath, nil
}

func (m *Manager) writeZip(folder string, zipPath string) (err error) {
	file, err := m.System.CreateFile(zipPath, archivePerm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	zw := zip.NewWriter(file)
	walkErr := m.System.WalkDir(folder, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == folder {
			return nil
		}
		rel, err := filepath.Rel(folder, path)
		if err != nil {
			return err
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		if entry.IsDir() {
			header.Name += "/"
			_, err = zw.CreateHeader(header)
			return err
		}
		if !entry.Type().IsRegular() {
			return fmt.Errorf(messages.ArtifactUnsupportedEntry, path)
		}
		header.Method = zip.Deflate
		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		return m.copyInto(w, path)
	})
	if walkErr != nil {
		_ = zw.Close()
		return walkErr
	}
	return zw.Close()
}

func (m *Manager) copyInto(w io.Writer, path string) error {
	in, err := m.System.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()
	_, err = io.Copy(w, in)
	return err
}
