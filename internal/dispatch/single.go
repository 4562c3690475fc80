package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/conn-castle/weget/internal/artifact"
	"github.com/conn-castle/weget/internal/command"
	"github.com/conn-castle/weget/internal/messages"
)

// single runs the backend attached to the console for one package, then post-processes downloads.
func (d *Dispatcher) single(ctx context.Context, desc command.Descriptor, packageID string) PackageResult {
	result := PackageResult{PackageID: packageID, Stage: artifact.StageBackend}
	code, err := d.Backend.Run(ctx, desc.PackageArgs(packageID)...)
	if err != nil || code != 0 {
		result.ExitCode = code
		if result.ExitCode == 0 {
			result.ExitCode = 1
		}
		result.Err = err
		d.fail(fmt.Sprintf(messages.DispatchPackageFailedFmt, desc.Verb, packageID))
		return result
	}
	if desc.Verb != command.VerbDownload {
		return result
	}

	_, err = d.Artifacts.Process(ctx, packageID, artifact.Options{
		OutputDir: desc.OutputPath,
		Archive:   desc.Archive,
		Run:       desc.Run,
	})
	if err == nil {
		result.Stage = artifact.StageCleanup
		return result
	}
	result.ExitCode = 1
	result.Err = err
	cause := err
	var stageErr *artifact.StageError
	if errors.As(err, &stageErr) {
		result.Stage = stageErr.Stage
		cause = stageErr.Err
	}
	d.fail(fmt.Sprintf(messages.DispatchPackageStageFailedFmt, desc.Verb, packageID, result.Stage, cause))
	return result
}
