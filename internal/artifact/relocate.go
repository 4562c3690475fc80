package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/conn-castle/weget/internal/messages"
)

// relocate moves src into outputDir, replacing any existing folder of the same name.
func (m *Manager) relocate(src string, outputDir string) (string, error) {
	if err := m.System.MkdirAll(outputDir, dirPerm); err != nil {
		return "", fmt.Errorf(messages.ArtifactCreateOutputFmt, outputDir, err)
	}
	dest := filepath.Join(outputDir, filepath.Base(src))
	if filepath.Clean(dest) == filepath.Clean(src) {
		return dest, nil
	}
	if _, err := m.System.Stat(dest); err == nil {
		if err := m.System.RemoveAll(dest); err != nil {
			return "", fmt.Errorf(messages.ArtifactRemoveStaleFmt, dest, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf(messages.ArtifactCheckDestFmt, dest, err)
	}
	if err := m.System.Rename(src, dest); err == nil {
		return dest, nil
	}
	// Rename fails across volumes; fall back to copy and delete.
	if err := m.System.CopyTree(src, dest); err != nil {
		_ = m.System.RemoveAll(dest)
		return "", fmt.Errorf(messages.ArtifactMoveFmt, src, dest, err)
	}
	if err := m.System.RemoveAll(src); err != nil {
		return "", fmt.Errorf(messages.ArtifactMoveFmt, src, dest, err)
	}
	return dest, nil
}
