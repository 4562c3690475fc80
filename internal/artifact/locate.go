package artifact

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/weget/internal/messages"
)

// ErrNotFound is returned when no download folder matches a package.
var ErrNotFound = errors.New("artifact not found")

// Artifact is the folder the backend most recently downloaded for a package.
type Artifact struct {
	SourcePath string
	PackageID  string
}

// ShortName returns the last dot-separated segment of packageID, used to match download folders.
// An identifier without a usable final segment is returned unchanged.
func ShortName(packageID string) string {
	idx := strings.LastIndex(packageID, ".")
	if idx < 0 || idx == len(packageID)-1 {
		return packageID
	}
	return packageID[idx+1:]
}

// DefaultDownloadsDir returns dirName under the user's home directory.
func DefaultDownloadsDir(dirName string) (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ArtifactResolveHomeFmt, err)
	}
	return filepath.Join(home, dirName), nil
}

// Locate scans the downloads directory for folders whose name contains the
// package's short name and returns the most recently modified one.
func (m *Manager) Locate(packageID string) (Artifact, error) {
	entries, err := m.System.ReadDir(m.DownloadsDir)
	if err != nil {
		return Artifact{}, fmt.Errorf(messages.ArtifactScanFmt, m.DownloadsDir, err)
	}
	short := ShortName(packageID)
	var (
		best     string
		bestTime time.Time
	)
	for _, entry := range entries {
		if !strings.Contains(entry.Name(), short) {
			continue
		}
		path := filepath.Join(m.DownloadsDir, entry.Name())
		info, err := m.System.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		if best == "" || info.ModTime().After(bestTime) {
			best = path
			bestTime = info.ModTime()
		}
	}
	if best == "" {
		return Artifact{}, fmt.Errorf("%w: "+messages.ArtifactNotFoundFmt, ErrNotFound, packageID)
	}
	return Artifact{SourcePath: best, PackageID: packageID}, nil
}
