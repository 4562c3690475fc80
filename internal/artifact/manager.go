// Package artifact post-processes the folder a download leaves behind:
// locate it, optionally move it, then archive it or run its installer, and clean up.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/conn-castle/weget/internal/config"
	"github.com/conn-castle/weget/internal/messages"
)

// Manager runs the post-download pipeline for one package at a time.
type Manager struct {
	System       System
	DownloadsDir string
	Extensions   []string
	Launchers    map[string][]string
	Out          io.Writer
}

// Options selects the optional pipeline steps.
type Options struct {
	OutputDir string
	Archive   bool
	Run       bool
}

// Report describes what Process did with a package's download folder.
type Report struct {
	Source    string
	Path      string
	Installer string
	Archived  bool
	Ran       bool
	Kept      bool
}

// NewManager builds a Manager over the real filesystem, scanning downloadsDir.
func NewManager(cfg config.InstallersConfig, downloadsDir string, out io.Writer) *Manager {
	return &Manager{
		System:       RealSystem{},
		DownloadsDir: downloadsDir,
		Extensions:   cfg.Extensions,
		Launchers:    cfg.Launchers,
		Out:          out,
	}
}

// Process locates the newest download folder for packageID and applies opts to it.
// Failures are returned as *StageError naming the step that failed.
func (m *Manager) Process(ctx context.Context, packageID string, opts Options) (Report, error) {
	if m.System == nil {
		return Report{}, stageError(StageLocate, errors.New(messages.ArtifactSystemRequired))
	}
	found, err := m.Locate(packageID)
	if err != nil {
		return Report{}, stageError(StageLocate, err)
	}
	report := Report{Source: found.SourcePath, Path: found.SourcePath}

	relocated := false
	if opts.OutputDir != "" {
		dest, err := m.relocate(found.SourcePath, opts.OutputDir)
		if err != nil {
			return report, stageError(StageRelocate, err)
		}
		m.printf(messages.ArtifactMovedFmt, dest)
		report.Path = dest
		relocated = true
	}

	if opts.Archive {
		m.printf(messages.ArtifactArchivingFmt, report.Path)
		zipPath, err := m.archive(report.Path)
		if err != nil {
			return report, stageError(StageArchive, err)
		}
		m.printf(messages.ArtifactArchivedFmt, zipPath)
		report.Path = zipPath
		report.Archived = true
		return report, nil
	}

	if opts.Run {
		installer, ok, err := m.findInstaller(report.Path)
		if err != nil {
			return report, stageError(StageRun, err)
		}
		if !ok {
			m.printf(messages.ArtifactNoExecutableFmt, report.Path)
		} else {
			m.printf(messages.ArtifactRunningFmt, installer)
			if err := m.System.RunInstaller(ctx, m.installerCommand(installer)); err != nil {
				return report, stageError(StageRun, fmt.Errorf(messages.ArtifactRunFmt, installer, err))
			}
			report.Installer = installer
			report.Ran = true
		}
	}

	// A moved folder that was not run is the deliverable.
	if relocated && !opts.Run {
		report.Kept = true
		return report, nil
	}
	if err := m.System.RemoveAll(report.Path); err != nil {
		return report, stageError(StageCleanup, fmt.Errorf(messages.ArtifactCleanupFmt, report.Path, err))
	}
	return report, nil
}

func (m *Manager) printf(format string, args ...any) {
	if m.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(m.Out, format, args...)
}

// dirPerm is used for output directories created by the pipeline.
const dirPerm os.FileMode = 0o755
