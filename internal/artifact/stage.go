package artifact

import (
	"fmt"

	"github.com/conn-castle/weget/internal/messages"
)

// Stage names a step of a package's processing, from the backend call through cleanup.
type Stage int

// Processing stages in execution order.
const (
	StageBackend Stage = iota
	StageLocate
	StageRelocate
	StageArchive
	StageRun
	StageCleanup
)

var stageLabels = [...]string{
	StageBackend:  "backend invocation",
	StageLocate:   "artifact locate",
	StageRelocate: "relocate",
	StageArchive:  "archive",
	StageRun:      "run",
	StageCleanup:  "cleanup",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageLabels) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageLabels[s]
}

// StageError reports the stage at which processing a package failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf(messages.ArtifactStageErrorFmt, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageError(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
