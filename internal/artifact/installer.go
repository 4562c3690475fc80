package artifact

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/weget/internal/messages"
)

// findInstaller returns the first direct entry of folder with an installer extension.
// Extensions match case-insensitively; subdirectories are not searched.
func (m *Manager) findInstaller(folder string) (string, bool, error) {
	entries, err := m.System.ReadDir(folder)
	if err != nil {
		return "", false, fmt.Errorf(messages.ArtifactScanFmt, folder, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if m.installerExtension(entry.Name()) != "" {
			return filepath.Join(folder, entry.Name()), true, nil
		}
	}
	return "", false, nil
}

func (m *Manager) installerExtension(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range m.Extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return strings.ToLower(ext)
		}
	}
	return ""
}

// installerCommand prefixes path with the launcher configured for its extension, if any.
func (m *Manager) installerCommand(path string) []string {
	ext := m.installerExtension(filepath.Base(path))
	for key, launcher := range m.Launchers {
		if strings.EqualFold(key, ext) {
			argv := append([]string{}, launcher...)
			return append(argv, path)
		}
	}
	return []string{path}
}
