// Package dispatch decides how a parsed weget command runs: attached for one package,
// as detached windows for several, or forwarded to the backend unchanged.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/conn-castle/weget/internal/artifact"
	"github.com/conn-castle/weget/internal/command"
	"github.com/conn-castle/weget/internal/messages"
)

// Backend runs the package-management executable.
type Backend interface {
	Run(ctx context.Context, args ...string) (int, error)
	Output(ctx context.Context, args ...string) (int, string, error)
	Argv(args ...string) []string
}

// Launcher starts a detached process without waiting for it.
type Launcher interface {
	Launch(argv []string) error
}

// Artifacts post-processes a completed download.
type Artifacts interface {
	Process(ctx context.Context, packageID string, opts artifact.Options) (artifact.Report, error)
}

// Dispatcher executes descriptors against a backend.
type Dispatcher struct {
	Backend   Backend
	Launcher  Launcher
	Artifacts Artifacts
	// UpgradeListArgs is the backend query whose table lists pending upgrades.
	UpgradeListArgs []string
	// SelfPath is the weget executable, re-invoked per package for batch downloads with post-processing.
	SelfPath string
	// SelfPathErr records why SelfPath could not be resolved.
	SelfPathErr error
	Out         io.Writer
	Err         io.Writer
}

// PackageResult is the outcome of an attached unit of work.
// PackageID is empty for a passthrough invocation.
type PackageResult struct {
	PackageID string
	ExitCode  int
	Stage     artifact.Stage
	Err       error
}

// Failed reports whether the unit did not succeed.
func (r PackageResult) Failed() bool {
	return r.ExitCode != 0 || r.Err != nil
}

// LaunchResult records whether a detached process for a package started.
type LaunchResult struct {
	PackageID string
	Err       error
}

// Summary collects every result of one Run.
type Summary struct {
	Packages []PackageResult
	Launches []LaunchResult
}

// ExitCode is 0 when every unit and launch succeeded and 1 otherwise.
func (s Summary) ExitCode() int {
	for _, result := range s.Packages {
		if result.Failed() {
			return 1
		}
	}
	for _, launch := range s.Launches {
		if launch.Err != nil {
			return 1
		}
	}
	return 0
}

// Run validates desc, resolves its package list, and executes it.
// Returned errors are usage or setup errors raised before any unit ran; unit failures are in the Summary.
func (d *Dispatcher) Run(ctx context.Context, desc command.Descriptor) (Summary, error) {
	if err := d.check(); err != nil {
		return Summary{}, err
	}
	if desc.OutputPath != "" && desc.Verb != command.VerbDownload {
		return Summary{}, fmt.Errorf("%w: %s", command.ErrUsage, messages.DispatchOutputDownloadOnly)
	}

	if desc.Verb == command.VerbUpgrade && desc.UpgradeAll {
		desc.Packages = d.pendingUpgrades(ctx)
		if len(desc.Packages) == 0 {
			d.printf(d.Out, "%s\n", messages.DispatchUpgradeNone)
			return Summary{}, nil
		}
		d.printf(d.Out, messages.DispatchUpgradeFoundFmt, len(desc.Packages))
	}

	if !desc.Verb.BatchCapable() || len(desc.Packages) == 0 {
		return d.passthrough(ctx, desc), nil
	}

	if desc.Verb == command.VerbDownload && desc.OutputPath != "" {
		abs, err := prepareOutputDir(desc.OutputPath)
		if err != nil {
			return Summary{}, err
		}
		desc.OutputPath = abs
	}

	if len(desc.Packages) == 1 {
		return Summary{Packages: []PackageResult{d.single(ctx, desc, desc.Packages[0])}}, nil
	}
	if desc.Verb == command.VerbDownload && desc.PostProcessing() && d.SelfPath == "" {
		if d.SelfPathErr != nil {
			return Summary{}, fmt.Errorf(messages.DispatchSelfPathFmt, d.SelfPathErr)
		}
		return Summary{}, errors.New(messages.DispatchSelfPathRequired)
	}
	return Summary{Launches: d.batch(desc)}, nil
}

func (d *Dispatcher) check() error {
	if d.Backend == nil {
		return errors.New(messages.DispatchBackendRequired)
	}
	if d.Launcher == nil {
		return errors.New(messages.DispatchLauncherRequired)
	}
	if d.Artifacts == nil {
		return errors.New(messages.DispatchArtifactsRequired)
	}
	return nil
}

// passthrough forwards desc as one attached backend invocation.
func (d *Dispatcher) passthrough(ctx context.Context, desc command.Descriptor) Summary {
	if desc.Verb == command.VerbDownload && (desc.Archive || desc.Run) {
		d.warn(messages.DispatchPostProcessingIgnored)
	}
	code, err := d.Backend.Run(ctx, desc.ForwardArgs()...)
	if err != nil {
		d.fail(fmt.Sprintf(messages.ErrorFmt, err))
	}
	return Summary{Packages: []PackageResult{{ExitCode: code, Stage: artifact.StageBackend, Err: err}}}
}

func (d *Dispatcher) printf(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, format, args...)
}
