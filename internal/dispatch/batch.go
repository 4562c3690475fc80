package dispatch

import (
	"fmt"

	"github.com/conn-castle/weget/internal/command"
	"github.com/conn-castle/weget/internal/messages"
)

// batch launches one detached window per package and records only whether each launch started.
func (d *Dispatcher) batch(desc command.Descriptor) []LaunchResult {
	total := len(desc.Packages)
	d.printf(d.Out, messages.DispatchBatchHeaderFmt, desc.Verb.Label(), total)

	results := make([]LaunchResult, 0, total)
	var failed []string
	for idx, packageID := range desc.Packages {
		d.printf(d.Out, messages.DispatchProgressFmt, idx+1, total, packageID)
		err := d.Launcher.Launch(d.launchArgv(desc, packageID))
		if err != nil {
			d.fail(fmt.Sprintf(messages.DispatchLaunchFailedFmt, packageID, err))
			failed = append(failed, packageID)
		}
		results = append(results, LaunchResult{PackageID: packageID, Err: err})
	}

	switch {
	case len(failed) == 0:
	case len(failed) == total:
		d.fail(fmt.Sprintf(messages.DispatchLaunchAllFailedFmt, total))
	default:
		d.fail(messages.DispatchLaunchFailedHeader)
		for _, packageID := range failed {
			d.printf(d.Err, messages.DispatchFailedListItemFmt, packageID)
		}
	}
	return results
}

// launchArgv builds the command one window runs for packageID.
// Downloads that need post-processing re-invoke weget so the window runs the whole pipeline.
func (d *Dispatcher) launchArgv(desc command.Descriptor, packageID string) []string {
	if desc.Verb == command.VerbDownload && desc.PostProcessing() {
		return append([]string{d.SelfPath}, desc.SingleArgs(packageID, desc.OutputPath)...)
	}
	return d.Backend.Argv(desc.PackageArgs(packageID)...)
}
